// Package models defines the backend's records. JSON tags match the shapes
// the client decodes.
package models

// User is an account. PasswordHash never leaves the server.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	CareerGoal   string `json:"careerGoal"`
}

// NewUser is a registration with the password still in clear text.
type NewUser struct {
	Name       string
	Email      string
	Password   string
	CareerGoal string
}
