// Package ui declares the presentation hooks the view logic calls into:
// navigation between pages, blocking alerts and yes/no confirmation.
package ui

import "strings"

type Route string

const (
	RouteHome      Route = "/"
	RouteLogin     Route = "/login"
	RouteRegister  Route = "/register"
	RouteDashboard Route = "/dashboard"
	RouteSkills    Route = "/dashboard/skills"
	RouteRoadmap   Route = "/dashboard/roadmap"
	RouteJobs      Route = "/dashboard/jobs"
	RouteSettings  Route = "/dashboard/settings"
)

// Protected reports whether the route lives under the dashboard shell and
// therefore needs a session.
func (r Route) Protected() bool {
	return r == RouteDashboard || strings.HasPrefix(string(r), string(RouteDashboard)+"/")
}

type Navigator interface {
	Navigate(to Route)
}

// Alerter shows a message the user has to acknowledge.
type Alerter interface {
	Alert(msg string)
}

type Confirmer interface {
	Confirm(prompt string) bool
}

// Alert texts shown by more than one view.
const (
	MsgFillAllFields     = "Please fill in all fields"
	MsgBackendDown       = "Please check if the backend is running."
	MsgTryAgain          = "Please try again."
	MsgConfirmStepDelete = "Are you sure you want to delete this step?"
)
