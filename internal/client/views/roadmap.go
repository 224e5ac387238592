package views

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/dmitrijs2005/careerpath/internal/client/models"
	"github.com/dmitrijs2005/careerpath/internal/client/ui"
)

var (
	ErrTitleRequired        = errors.New("step title is required")
	ErrUnknownStep          = errors.New("no such roadmap step")
	ErrTransitionNotOffered = errors.New("status change not offered for this step")
	ErrDeclined             = errors.New("declined by user")
)

type Roadmap struct {
	base

	loading bool
	user    *models.User
	steps   []models.RoadmapStep
}

func NewRoadmap(vc Context) *Roadmap {
	return &Roadmap{base: base{vc: vc}}
}

type RoadmapState struct {
	Loading      bool
	User         *models.User
	Steps        []models.RoadmapStep
	Progress     int
	StatusCounts map[models.StepStatus]int
	Focus        models.RoadmapStep
	FocusAction  FocusAction
}

func (r *Roadmap) Mount(parent context.Context) error {
	ctx := r.begin(parent)
	if err := r.apply(ctx, func() {
		r.loading = true
		r.user, r.steps = nil, nil
	}); err != nil {
		return err
	}

	user, ok := r.loadUser(ctx)
	if !ok {
		return r.apply(ctx, func() { r.loading = false })
	}

	res := r.vc.API.FetchRoadmap(ctx, user.ID)
	if res.IsFailed() {
		r.vc.Log.Warn(ctx, "roadmap fetch failed", "user_id", user.ID, "error", res.Err())
	}

	return r.apply(ctx, func() {
		r.user = user
		r.steps = res.Value()
		r.loading = false
	})
}

func (r *Roadmap) State() RoadmapState {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := RoadmapState{
		Loading:      r.loading,
		User:         r.user,
		Steps:        r.steps,
		Progress:     Progress(r.steps),
		StatusCounts: StatusCounts(r.steps),
	}
	st.Focus, st.FocusAction = Focus(r.steps)
	return st
}

// AddStep creates a step and appends the server's record. A blank status
// becomes pending.
func (r *Roadmap) AddStep(ns models.NewRoadmapStep) (models.RoadmapStep, error) {
	ctx, err := r.current()
	if err != nil {
		return models.RoadmapStep{}, err
	}

	ns.Title = strings.TrimSpace(ns.Title)
	if ns.Title == "" {
		return models.RoadmapStep{}, ErrTitleRequired
	}
	if ns.Status == "" {
		ns.Status = models.StatusPending
	}
	if !ns.Status.Valid() {
		return models.RoadmapStep{}, models.ErrUnknownStatus
	}

	user := r.owner()
	if user == nil {
		return models.RoadmapStep{}, ErrNoUser
	}

	added, err := outcome(ctx, r.vc, "add roadmap step", r.vc.API.AddRoadmapStep(ctx, user.ID, ns))
	if err != nil {
		return models.RoadmapStep{}, err
	}
	return added, r.apply(ctx, func() {
		r.steps = append(slices.Clip(r.steps), added)
	})
}

// UpdateStatus sets any status on a known step and replaces it with the
// server's record.
func (r *Roadmap) UpdateStatus(stepID int64, status models.StepStatus) (models.RoadmapStep, error) {
	ctx, err := r.current()
	if err != nil {
		return models.RoadmapStep{}, err
	}
	if !status.Valid() {
		return models.RoadmapStep{}, models.ErrUnknownStatus
	}
	if _, ok := r.step(stepID); !ok {
		return models.RoadmapStep{}, ErrUnknownStep
	}
	return r.sendStatus(ctx, stepID, status)
}

// Start moves a pending step to in-progress.
func (r *Roadmap) Start(stepID int64) (models.RoadmapStep, error) {
	return r.shortcut(stepID, models.StatusInProgress)
}

// Complete marks any open step completed.
func (r *Roadmap) Complete(stepID int64) (models.RoadmapStep, error) {
	return r.shortcut(stepID, models.StatusCompleted)
}

func (r *Roadmap) shortcut(stepID int64, to models.StepStatus) (models.RoadmapStep, error) {
	ctx, err := r.current()
	if err != nil {
		return models.RoadmapStep{}, err
	}
	s, ok := r.step(stepID)
	if !ok {
		return models.RoadmapStep{}, ErrUnknownStep
	}
	if !slices.Contains(StepActions(s), to) {
		return models.RoadmapStep{}, ErrTransitionNotOffered
	}
	return r.sendStatus(ctx, stepID, to)
}

func (r *Roadmap) sendStatus(ctx context.Context, stepID int64, status models.StepStatus) (models.RoadmapStep, error) {
	updated, err := outcome(ctx, r.vc, "update roadmap step", r.vc.API.UpdateRoadmapStepStatus(ctx, stepID, status))
	if err != nil {
		return models.RoadmapStep{}, err
	}
	return updated, r.apply(ctx, func() {
		r.steps = replaceByID(r.steps, stepID, updated, func(s models.RoadmapStep) int64 { return s.ID })
	})
}

// Delete asks for confirmation, then removes the step once the backend
// agrees. Declining sends nothing.
func (r *Roadmap) Delete(stepID int64) error {
	ctx, err := r.current()
	if err != nil {
		return err
	}
	if _, ok := r.step(stepID); !ok {
		return ErrUnknownStep
	}
	if !r.vc.Confirm.Confirm(ui.MsgConfirmStepDelete) {
		return ErrDeclined
	}

	deleted, err := outcome(ctx, r.vc, "delete roadmap step", r.vc.API.DeleteRoadmapStep(ctx, stepID))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEmptyResponse
	}
	return r.apply(ctx, func() {
		r.steps = removeByID(r.steps, stepID, func(s models.RoadmapStep) int64 { return s.ID })
	})
}

func (r *Roadmap) owner() *models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.user
}

func (r *Roadmap) step(id int64) (models.RoadmapStep, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := slices.IndexFunc(r.steps, func(s models.RoadmapStep) bool { return s.ID == id })
	if i < 0 {
		return models.RoadmapStep{}, false
	}
	return r.steps[i], true
}
