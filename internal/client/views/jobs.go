package views

import (
	"sync"

	"github.com/dmitrijs2005/careerpath/internal/client/models"
)

// Jobs filters the built-in job catalog. It makes no remote calls.
type Jobs struct {
	mu      sync.Mutex
	catalog []models.Job
	query   string
	alerts  bool
}

func NewJobs() *Jobs {
	return &Jobs{catalog: models.Catalog()}
}

func (j *Jobs) Search(query string) []models.Job {
	j.mu.Lock()
	j.query = query
	j.mu.Unlock()
	return j.Results()
}

// Results lists the jobs matching the current query in catalog order.
func (j *Jobs) Results() []models.Job {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]models.Job, 0, len(j.catalog))
	for _, job := range j.catalog {
		if job.Matches(j.query) {
			out = append(out, job)
		}
	}
	return out
}

func (j *Jobs) Query() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.query
}

// ToggleAlerts flips job alert subscription and returns the new setting.
func (j *Jobs) ToggleAlerts() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.alerts = !j.alerts
	return j.alerts
}

func (j *Jobs) AlertsEnabled() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.alerts
}
