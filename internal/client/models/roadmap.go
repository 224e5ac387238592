package models

import (
	"errors"
	"strings"
)

var ErrUnknownStatus = errors.New("unknown step status")

type StepStatus string

const (
	StatusPending    StepStatus = "pending"
	StatusInProgress StepStatus = "in-progress"
	StatusCompleted  StepStatus = "completed"
)

var Statuses = []StepStatus{StatusPending, StatusInProgress, StatusCompleted}

func (s StepStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// OrPending maps an empty or unknown status to pending for display.
func (s StepStatus) OrPending() StepStatus {
	if s.Valid() {
		return s
	}
	return StatusPending
}

// Label is the human form, "in progress" rather than "in-progress".
func (s StepStatus) Label() string {
	return strings.Replace(string(s.OrPending()), "-", " ", 1)
}

func ParseStatus(s string) (StepStatus, error) {
	st := StepStatus(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", ErrUnknownStatus
	}
	return st, nil
}

// RoadmapStep is one ordered learning milestone.
type RoadmapStep struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      StepStatus `json:"status"`
	Duration    string     `json:"duration"`
	Topics      string     `json:"topics"`
}

// TopicList splits the comma-delimited topics for display. Blank entries are
// dropped; duplicates are kept.
func (s RoadmapStep) TopicList() []string {
	if strings.TrimSpace(s.Topics) == "" {
		return nil
	}
	parts := strings.Split(s.Topics, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// NewRoadmapStep is the creation payload.
type NewRoadmapStep struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      StepStatus `json:"status"`
	Duration    string     `json:"duration"`
	Topics      string     `json:"topics"`
}
