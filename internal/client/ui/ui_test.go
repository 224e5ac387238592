package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoute_Protected(t *testing.T) {
	assert.True(t, RouteDashboard.Protected())
	assert.True(t, RouteSkills.Protected())
	assert.True(t, RouteSettings.Protected())
	assert.False(t, RouteHome.Protected())
	assert.False(t, RouteLogin.Protected())
	assert.False(t, Route("/dashboardx").Protected())
}
