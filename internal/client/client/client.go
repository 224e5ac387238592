package client

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/careerpath/internal/client/models"
)

// API is the set of remote operations the views depend on.
type API interface {
	FetchUser(ctx context.Context, email string) Result[models.User]
	FetchSkills(ctx context.Context, userID int64) Result[[]models.Skill]
	AddSkill(ctx context.Context, userID int64, skill models.NewSkill) Result[models.Skill]
	UpdateSkillLevel(ctx context.Context, skillID int64, level models.SkillLevel) Result[models.Skill]
	FetchRoadmap(ctx context.Context, userID int64) Result[[]models.RoadmapStep]
	AddRoadmapStep(ctx context.Context, userID int64, step models.NewRoadmapStep) Result[models.RoadmapStep]
	UpdateRoadmapStepStatus(ctx context.Context, stepID int64, status models.StepStatus) Result[models.RoadmapStep]
	DeleteRoadmapStep(ctx context.Context, stepID int64) Result[bool]

	Login(ctx context.Context, creds models.Credentials) (*Response, error)
	Register(ctx context.Context, user models.NewUser) (*Response, error)
	Ping(ctx context.Context) error
}

// Response is a raw HTTP answer passed through to auth callers.
type Response struct {
	StatusCode int
	Body       []byte
}

func (r *Response) OK() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// Text is the body as trimmed text, the form the server uses for errors.
func (r *Response) Text() string {
	return strings.TrimSpace(string(r.Body))
}

func (r *Response) DecodeUser() (models.User, error) {
	var u models.User
	if err := json.Unmarshal(r.Body, &u); err != nil {
		return models.User{}, err
	}
	return u, nil
}
