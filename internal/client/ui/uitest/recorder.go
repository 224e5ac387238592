// Package uitest records navigation, alerts and confirmations for tests.
package uitest

import (
	"sync"

	"github.com/dmitrijs2005/careerpath/internal/client/ui"
)

// Recorder implements ui.Navigator, ui.Alerter and ui.Confirmer. Confirm
// answers with Answer.
type Recorder struct {
	Answer bool

	mu      sync.Mutex
	routes  []ui.Route
	alerts  []string
	prompts []string
}

func (r *Recorder) Navigate(to ui.Route) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, to)
}

func (r *Recorder) Alert(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, msg)
}

func (r *Recorder) Confirm(prompt string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prompts = append(r.prompts, prompt)
	return r.Answer
}

func (r *Recorder) Routes() []ui.Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ui.Route(nil), r.routes...)
}

func (r *Recorder) Alerts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.alerts...)
}

func (r *Recorder) Prompts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.prompts...)
}

// Last returns the most recent route, or "" if none.
func (r *Recorder) Last() ui.Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.routes) == 0 {
		return ""
	}
	return r.routes[len(r.routes)-1]
}

var (
	_ ui.Navigator = (*Recorder)(nil)
	_ ui.Alerter   = (*Recorder)(nil)
	_ ui.Confirmer = (*Recorder)(nil)
)
