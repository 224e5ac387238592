package views

import (
	"math"

	"github.com/dmitrijs2005/careerpath/internal/client/models"
)

// Progress is the completed share of steps as a whole percentage, rounded
// half away from zero. An empty roadmap is 0%.
func Progress(steps []models.RoadmapStep) int {
	if len(steps) == 0 {
		return 0
	}
	done := 0
	for _, s := range steps {
		if s.Status == models.StatusCompleted {
			done++
		}
	}
	return int(math.Round(float64(done) * 100 / float64(len(steps))))
}

// CurrentFocus is the first in-progress step, else the first pending one.
func CurrentFocus(steps []models.RoadmapStep) (models.RoadmapStep, bool) {
	for _, s := range steps {
		if s.Status == models.StatusInProgress {
			return s, true
		}
	}
	for _, s := range steps {
		if s.Status == models.StatusPending {
			return s, true
		}
	}
	return models.RoadmapStep{}, false
}

// FocusAction selects what the focus panel offers.
type FocusAction int

const (
	// FocusCreateRoadmap: there are no steps yet.
	FocusCreateRoadmap FocusAction = iota
	// FocusContinue: a step is in progress or pending.
	FocusContinue
	// FocusAllDone: steps exist and none is open.
	FocusAllDone
)

func (a FocusAction) String() string {
	switch a {
	case FocusContinue:
		return "continue"
	case FocusAllDone:
		return "all-done"
	default:
		return "create-roadmap"
	}
}

func Focus(steps []models.RoadmapStep) (models.RoadmapStep, FocusAction) {
	if len(steps) == 0 {
		return models.RoadmapStep{}, FocusCreateRoadmap
	}
	if s, ok := CurrentFocus(steps); ok {
		return s, FocusContinue
	}
	return models.RoadmapStep{}, FocusAllDone
}

// StatusCounts counts steps by exact status; unknown values are not counted.
func StatusCounts(steps []models.RoadmapStep) map[models.StepStatus]int {
	out := make(map[models.StepStatus]int, len(models.Statuses))
	for _, st := range models.Statuses {
		out[st] = 0
	}
	for _, s := range steps {
		if s.Status.Valid() {
			out[s.Status]++
		}
	}
	return out
}

func LevelCounts(skills []models.Skill) map[models.SkillLevel]int {
	out := make(map[models.SkillLevel]int, len(models.Levels))
	for _, l := range models.Levels {
		out[l] = 0
	}
	for _, s := range skills {
		if s.Level.Valid() {
			out[s.Level]++
		}
	}
	return out
}

// LevelShare is the percentage of skills at level, as shown by the level
// bars. The denominator is never below one.
func LevelShare(skills []models.Skill, level models.SkillLevel) float64 {
	n := 0
	for _, s := range skills {
		if s.Level == level {
			n++
		}
	}
	return float64(n) / float64(max(len(skills), 1)) * 100
}

// StepActions lists the status shortcuts offered for a step.
func StepActions(s models.RoadmapStep) []models.StepStatus {
	var out []models.StepStatus
	if s.Status != models.StatusCompleted {
		out = append(out, models.StatusCompleted)
	}
	if s.Status == models.StatusPending {
		out = append(out, models.StatusInProgress)
	}
	return out
}
