package views

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/careerpath/internal/client/session"
	"github.com/dmitrijs2005/careerpath/internal/client/ui"
)

func TestShell_RedirectsWithoutSession(t *testing.T) {
	e := newEnv(t)
	s := NewShell(e.vc)

	assert.False(t, s.Mount(context.Background()))
	assert.Equal(t, []ui.Route{ui.RouteLogin}, e.rec.Routes())
	assert.Nil(t, s.User())
}

func TestShell_InvalidSessionRedirects(t *testing.T) {
	e := newEnv(t)
	s := NewShell(e.vc)
	require.NoError(t, e.vc.Session.Set(context.Background(), anamika.Session()))
	anon := anamika.Session()
	anon.Email = ""
	require.NoError(t, e.vc.Session.Set(context.Background(), anon))

	assert.False(t, s.Mount(context.Background()))
	assert.Equal(t, ui.RouteLogin, e.rec.Last())
}

func TestShell_MountAndLogout(t *testing.T) {
	e := newEnv(t)
	e.signIn(t, anamika)
	s := NewShell(e.vc)

	require.True(t, s.Mount(context.Background()))
	require.NotNil(t, s.User())
	assert.Equal(t, "Anamika", s.User().FirstName())
	assert.Empty(t, e.rec.Routes())

	require.NoError(t, s.Logout(context.Background()))
	assert.Equal(t, ui.RouteHome, e.rec.Last())
	assert.Nil(t, s.User())
	assert.Equal(t, session.Absent, e.vc.Session.Get(context.Background()).State)
}

func TestJobs(t *testing.T) {
	j := NewJobs()
	assert.Len(t, j.Results(), 5)

	got := j.Search("react")
	require.Len(t, got, 2)
	assert.Equal(t, "Senior Full Stack Engineer", got[0].Title)
	assert.Equal(t, "Frontend Lead", got[1].Title)
	assert.Equal(t, "react", j.Query())

	assert.Empty(t, j.Search("cobol"))
	assert.Len(t, j.Search(""), 5)

	assert.False(t, j.AlertsEnabled())
	assert.True(t, j.ToggleAlerts())
	assert.False(t, j.ToggleAlerts())
}

func TestSettings(t *testing.T) {
	e := newEnv(t)
	s := NewSettings(e.vc)

	require.NoError(t, s.Mount(context.Background()))
	_, ok := s.Profile()
	assert.False(t, ok)

	e.signIn(t, anamika)
	require.NoError(t, s.Mount(context.Background()))
	p, ok := s.Profile()
	require.True(t, ok)
	assert.Equal(t, Profile{Name: "Anamika Singh", Email: "anamika@example.com", CareerGoal: "Full Stack Developer", Initials: "AS"}, p)
	assert.Empty(t, e.api.Calls(), "settings reads only the session")
}
