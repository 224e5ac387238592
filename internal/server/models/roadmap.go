package models

import "slices"

const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

var Statuses = []string{StatusPending, StatusInProgress, StatusCompleted}

func ValidStatus(s string) bool { return slices.Contains(Statuses, s) }

type RoadmapStep struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"-"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Duration    string `json:"duration"`
	Topics      string `json:"topics"`
}

// StepPatch lists the fields of a step to change; nil means keep.
type StepPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Duration    *string `json:"duration"`
	Topics      *string `json:"topics"`
}

func (p StepPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil && p.Duration == nil && p.Topics == nil
}
