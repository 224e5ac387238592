package views

import (
	"context"

	"github.com/dmitrijs2005/careerpath/internal/client/models"
	"github.com/dmitrijs2005/careerpath/internal/client/ui"
)

// Shell is the frame around every dashboard page. It guards access and
// offers logout.
type Shell struct {
	base
	user *models.SessionUser
}

func NewShell(vc Context) *Shell {
	return &Shell{base: base{vc: vc}}
}

// Mount redirects to the login page when nobody is signed in and reports
// whether the protected page may render.
func (s *Shell) Mount(parent context.Context) bool {
	ctx := s.begin(parent)

	u, ok := s.vc.Session.Get(ctx).Current()
	_ = s.apply(ctx, func() { s.user = u })
	if !ok {
		s.vc.Nav.Navigate(ui.RouteLogin)
		return false
	}
	return true
}

// User is the session user captured at mount, nil when signed out.
func (s *Shell) User() *models.SessionUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Shell) Logout(ctx context.Context) error {
	if err := s.vc.Auth.Logout(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	return nil
}
