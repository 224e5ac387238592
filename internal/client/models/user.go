// Package models defines the client-side shapes exchanged with the backend
// and kept in the local session.
package models

import (
	"strings"
	"unicode"
)

const anonymousFirstName = "Student"

// User is the profile record returned by the backend.
type User struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	CareerGoal string `json:"careerGoal"`
}

// NewUser is the registration payload.
type NewUser struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	CareerGoal string `json:"careerGoal"`
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionUser is the identity persisted between runs. Validation tags are
// checked on every read from storage.
type SessionUser struct {
	ID         int64  `json:"id" validate:"required,gt=0"`
	Name       string `json:"name"`
	Email      string `json:"email" validate:"required,email"`
	CareerGoal string `json:"careerGoal"`
}

func (u User) Session() SessionUser {
	return SessionUser{ID: u.ID, Name: u.Name, Email: u.Email, CareerGoal: u.CareerGoal}
}

// FirstName returns the first word of the name, or "Student" when u is nil
// or the name is blank.
func (u *User) FirstName() string {
	if u == nil {
		return anonymousFirstName
	}
	return firstName(u.Name)
}

func (u *SessionUser) FirstName() string {
	if u == nil {
		return anonymousFirstName
	}
	return firstName(u.Name)
}

// Initials returns up to two upper-case initials for avatars.
func (u SessionUser) Initials() string {
	initials := make([]rune, 0, 2)
	for _, part := range strings.Fields(u.Name) {
		initials = append(initials, unicode.ToUpper([]rune(part)[0]))
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}

func firstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return anonymousFirstName
	}
	return fields[0]
}
