// Package clienttest provides an in-memory client.API for tests.
package clienttest

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/careerpath/internal/client/client"
	"github.com/dmitrijs2005/careerpath/internal/client/models"
)

// Fake answers every operation from its function fields. A nil field
// answers Empty (or a 200 with an empty body for auth calls). Calls are
// recorded by operation name.
type Fake struct {
	FetchUserFn        func(ctx context.Context, email string) client.Result[models.User]
	FetchSkillsFn      func(ctx context.Context, userID int64) client.Result[[]models.Skill]
	AddSkillFn         func(ctx context.Context, userID int64, s models.NewSkill) client.Result[models.Skill]
	UpdateSkillLevelFn func(ctx context.Context, skillID int64, level models.SkillLevel) client.Result[models.Skill]
	FetchRoadmapFn     func(ctx context.Context, userID int64) client.Result[[]models.RoadmapStep]
	AddRoadmapStepFn   func(ctx context.Context, userID int64, s models.NewRoadmapStep) client.Result[models.RoadmapStep]
	UpdateStepStatusFn func(ctx context.Context, stepID int64, st models.StepStatus) client.Result[models.RoadmapStep]
	DeleteStepFn       func(ctx context.Context, stepID int64) client.Result[bool]
	LoginFn            func(ctx context.Context, creds models.Credentials) (*client.Response, error)
	RegisterFn         func(ctx context.Context, u models.NewUser) (*client.Response, error)
	PingFn             func(ctx context.Context) error

	mu    sync.Mutex
	calls []string
}

func (f *Fake) record(op string) {
	f.mu.Lock()
	f.calls = append(f.calls, op)
	f.mu.Unlock()
}

// Calls returns the operation names in call order.
func (f *Fake) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// Count returns how many times op was called.
func (f *Fake) Count(op string) int {
	n := 0
	for _, c := range f.Calls() {
		if c == op {
			n++
		}
	}
	return n
}

func (f *Fake) FetchUser(ctx context.Context, email string) client.Result[models.User] {
	f.record("FetchUser")
	if f.FetchUserFn == nil {
		return client.Empty[models.User]()
	}
	return f.FetchUserFn(ctx, email)
}

func (f *Fake) FetchSkills(ctx context.Context, userID int64) client.Result[[]models.Skill] {
	f.record("FetchSkills")
	if f.FetchSkillsFn == nil {
		return client.Empty[[]models.Skill]()
	}
	return f.FetchSkillsFn(ctx, userID)
}

func (f *Fake) AddSkill(ctx context.Context, userID int64, s models.NewSkill) client.Result[models.Skill] {
	f.record("AddSkill")
	if f.AddSkillFn == nil {
		return client.Empty[models.Skill]()
	}
	return f.AddSkillFn(ctx, userID, s)
}

func (f *Fake) UpdateSkillLevel(ctx context.Context, skillID int64, level models.SkillLevel) client.Result[models.Skill] {
	f.record("UpdateSkillLevel")
	if f.UpdateSkillLevelFn == nil {
		return client.Empty[models.Skill]()
	}
	return f.UpdateSkillLevelFn(ctx, skillID, level)
}

func (f *Fake) FetchRoadmap(ctx context.Context, userID int64) client.Result[[]models.RoadmapStep] {
	f.record("FetchRoadmap")
	if f.FetchRoadmapFn == nil {
		return client.Empty[[]models.RoadmapStep]()
	}
	return f.FetchRoadmapFn(ctx, userID)
}

func (f *Fake) AddRoadmapStep(ctx context.Context, userID int64, s models.NewRoadmapStep) client.Result[models.RoadmapStep] {
	f.record("AddRoadmapStep")
	if f.AddRoadmapStepFn == nil {
		return client.Empty[models.RoadmapStep]()
	}
	return f.AddRoadmapStepFn(ctx, userID, s)
}

func (f *Fake) UpdateRoadmapStepStatus(ctx context.Context, stepID int64, st models.StepStatus) client.Result[models.RoadmapStep] {
	f.record("UpdateRoadmapStepStatus")
	if f.UpdateStepStatusFn == nil {
		return client.Empty[models.RoadmapStep]()
	}
	return f.UpdateStepStatusFn(ctx, stepID, st)
}

func (f *Fake) DeleteRoadmapStep(ctx context.Context, stepID int64) client.Result[bool] {
	f.record("DeleteRoadmapStep")
	if f.DeleteStepFn == nil {
		return client.Empty[bool]()
	}
	return f.DeleteStepFn(ctx, stepID)
}

func (f *Fake) Login(ctx context.Context, creds models.Credentials) (*client.Response, error) {
	f.record("Login")
	if f.LoginFn == nil {
		return &client.Response{StatusCode: 200}, nil
	}
	return f.LoginFn(ctx, creds)
}

func (f *Fake) Register(ctx context.Context, u models.NewUser) (*client.Response, error) {
	f.record("Register")
	if f.RegisterFn == nil {
		return &client.Response{StatusCode: 200}, nil
	}
	return f.RegisterFn(ctx, u)
}

func (f *Fake) Ping(ctx context.Context) error {
	f.record("Ping")
	if f.PingFn == nil {
		return nil
	}
	return f.PingFn(ctx)
}

// Rejected builds the Failed reason of a non-2xx answer.
func Rejected(op string, status int, body string) *client.RequestError {
	return &client.RequestError{Op: op, Kind: client.KindRejected, StatusCode: status, Body: body}
}

// Unavailable builds the Failed reason of a transport fault.
func Unavailable(op string) *client.RequestError {
	return &client.RequestError{Op: op, Kind: client.KindUnavailable, Err: client.ErrUnavailable}
}

var _ client.API = (*Fake)(nil)
