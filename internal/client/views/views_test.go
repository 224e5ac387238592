package views

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/careerpath/internal/client/client"
	"github.com/dmitrijs2005/careerpath/internal/client/client/clienttest"
	"github.com/dmitrijs2005/careerpath/internal/client/models"
	"github.com/dmitrijs2005/careerpath/internal/client/services"
	"github.com/dmitrijs2005/careerpath/internal/client/session"
	"github.com/dmitrijs2005/careerpath/internal/client/ui/uitest"
	"github.com/dmitrijs2005/careerpath/internal/logging"
)

var anamika = models.User{ID: 1, Name: "Anamika Singh", Email: "anamika@example.com", CareerGoal: "Full Stack Developer"}

type env struct {
	vc  Context
	api *clienttest.Fake
	rec *uitest.Recorder
}

func newEnv(t *testing.T) *env {
	t.Helper()
	api := &clienttest.Fake{}
	rec := &uitest.Recorder{}
	store := session.NewStore(session.NewMemoryStorage())
	log := logging.NewDiscardLogger()
	return &env{
		api: api,
		rec: rec,
		vc: Context{
			Session: store,
			API:     api,
			Auth:    services.NewAuthService(api, store, rec, rec, log),
			Nav:     rec,
			Alerts:  rec,
			Confirm: rec,
			Log:     log,
		},
	}
}

// signIn stores a session and makes the backend know the user.
func (e *env) signIn(t *testing.T, u models.User) {
	t.Helper()
	require.NoError(t, e.vc.Session.Set(context.Background(), u.Session()))
	e.api.FetchUserFn = func(_ context.Context, email string) client.Result[models.User] {
		if email == u.Email {
			return client.Ok(u)
		}
		return client.Empty[models.User]()
	}
}

func (e *env) withSkills(skills ...models.Skill) {
	e.api.FetchSkillsFn = func(context.Context, int64) client.Result[[]models.Skill] {
		if len(skills) == 0 {
			return client.Empty[[]models.Skill]()
		}
		return client.Ok(skills)
	}
}

func (e *env) withSteps(steps ...models.RoadmapStep) {
	e.api.FetchRoadmapFn = func(context.Context, int64) client.Result[[]models.RoadmapStep] {
		if len(steps) == 0 {
			return client.Empty[[]models.RoadmapStep]()
		}
		return client.Ok(steps)
	}
}

func step(id int64, st models.StepStatus) models.RoadmapStep {
	return models.RoadmapStep{ID: id, Title: "step", Status: st}
}
