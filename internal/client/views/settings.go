package views

import (
	"context"

	"github.com/dmitrijs2005/careerpath/internal/client/models"
)

// Profile is what the settings page shows about the signed-in user.
type Profile struct {
	Name       string
	Email      string
	CareerGoal string
	Initials   string
}

type Settings struct {
	base
	profile  Profile
	signedIn bool
}

func NewSettings(vc Context) *Settings {
	return &Settings{base: base{vc: vc}}
}

// Mount projects the stored session; it does not call the backend.
func (s *Settings) Mount(parent context.Context) error {
	ctx := s.begin(parent)
	u, ok := s.vc.Session.Get(ctx).Current()
	return s.apply(ctx, func() {
		s.signedIn = ok
		s.profile = Profile{}
		if ok {
			s.profile = projectProfile(*u)
		}
	})
}

// Profile returns the projection and whether anyone is signed in.
func (s *Settings) Profile() (Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile, s.signedIn
}

func projectProfile(u models.SessionUser) Profile {
	return Profile{Name: u.Name, Email: u.Email, CareerGoal: u.CareerGoal, Initials: u.Initials()}
}
