package views

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/careerpath/internal/client/client"
	"github.com/dmitrijs2005/careerpath/internal/client/client/clienttest"
	"github.com/dmitrijs2005/careerpath/internal/client/models"
)

func TestDashboard_SignedOut(t *testing.T) {
	e := newEnv(t)
	d := NewDashboard(e.vc)

	require.NoError(t, d.Mount(context.Background()))
	st := d.State()

	assert.False(t, st.Loading)
	assert.Nil(t, st.User)
	assert.Equal(t, "Student", st.FirstName)
	assert.Empty(t, e.api.Calls(), "nothing is fetched without a session")
}

func TestDashboard_UnknownUserSkipsDependentFetches(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, e.vc.Session.Set(context.Background(), anamika.Session()))
	e.api.FetchUserFn = func(context.Context, string) client.Result[models.User] {
		return client.Failed[models.User](clienttest.Unavailable("fetch user"))
	}

	d := NewDashboard(e.vc)
	require.NoError(t, d.Mount(context.Background()))

	assert.Equal(t, []string{"FetchUser"}, e.api.Calls())
	assert.Nil(t, d.State().User)
	assert.False(t, d.State().Loading)
}

func TestDashboard_LoadsInParallel(t *testing.T) {
	e := newEnv(t)
	e.signIn(t, anamika)

	started := make(chan string, 2)
	release := make(chan struct{})
	e.api.FetchSkillsFn = func(context.Context, int64) client.Result[[]models.Skill] {
		started <- "skills"
		<-release
		return client.Ok([]models.Skill{{ID: 1, Name: "Java", Level: models.LevelAdvanced}})
	}
	e.api.FetchRoadmapFn = func(context.Context, int64) client.Result[[]models.RoadmapStep] {
		started <- "roadmap"
		<-release
		return client.Ok(steps(
			models.StatusCompleted, models.StatusCompleted, models.StatusInProgress,
			models.StatusPending, models.StatusPending, models.StatusPending,
		))
	}

	d := NewDashboard(e.vc)
	done := make(chan error, 1)
	go func() { done <- d.Mount(context.Background()) }()

	got := map[string]bool{}
	for range 2 {
		select {
		case name := <-started:
			got[name] = true
		case <-time.After(2 * time.Second):
			t.Fatal("fetches were not issued concurrently")
		}
	}
	assert.True(t, d.State().Loading, "still loading while fetches are pending")
	close(release)
	require.NoError(t, <-done)

	st := d.State()
	assert.False(t, st.Loading)
	assert.Equal(t, "Anamika", st.FirstName)
	assert.Len(t, st.Skills, 1)
	assert.Len(t, st.Steps, 6)
	assert.Len(t, st.RecentSteps, 5)
	assert.Equal(t, 33, st.Progress)
	assert.Equal(t, 2, st.Completed)
	assert.Equal(t, FocusContinue, st.FocusAction)
	assert.Equal(t, int64(3), st.Focus.ID)
	assert.Equal(t, 1, st.LevelCounts[models.LevelAdvanced])
}

func TestDashboard_EmptyRoadmapOffersCreate(t *testing.T) {
	e := newEnv(t)
	e.signIn(t, anamika)
	e.withSkills()
	e.withSteps()

	d := NewDashboard(e.vc)
	require.NoError(t, d.Mount(context.Background()))

	st := d.State()
	assert.Empty(t, st.Steps)
	assert.Equal(t, 0, st.Progress)
	assert.Equal(t, FocusCreateRoadmap, st.FocusAction)
	assert.Equal(t, models.RoadmapStep{}, st.Focus)
}

func TestDashboard_FailedFetchShowsEmpty(t *testing.T) {
	e := newEnv(t)
	e.signIn(t, anamika)
	e.api.FetchSkillsFn = func(context.Context, int64) client.Result[[]models.Skill] {
		return client.Failed[[]models.Skill](clienttest.Rejected("fetch skills", 500, ""))
	}
	e.withSteps(step(1, models.StatusCompleted))

	d := NewDashboard(e.vc)
	require.NoError(t, d.Mount(context.Background()))

	st := d.State()
	assert.Empty(t, st.Skills)
	assert.Equal(t, 100, st.Progress)
	assert.Equal(t, FocusAllDone, st.FocusAction)
	assert.Empty(t, e.rec.Alerts(), "loading failures do not alert")
}

func TestDashboard_LateResultsDiscarded(t *testing.T) {
	e := newEnv(t)
	e.signIn(t, anamika)

	entered := make(chan struct{})
	e.api.FetchSkillsFn = func(ctx context.Context, _ int64) client.Result[[]models.Skill] {
		close(entered)
		<-ctx.Done()
		return client.Ok([]models.Skill{{ID: 99, Name: "late"}})
	}
	e.withSteps(step(1, models.StatusPending))

	d := NewDashboard(e.vc)
	done := make(chan error, 1)
	go func() { done <- d.Mount(context.Background()) }()

	<-entered
	d.Unmount()

	require.ErrorIs(t, <-done, ErrUnmounted)
	assert.Empty(t, d.State().Skills)
	assert.Empty(t, d.State().Steps)
	assert.False(t, d.Mounted())
}

func TestDashboard_ParentCancelEndsLifetime(t *testing.T) {
	e := newEnv(t)
	e.signIn(t, anamika)

	ctx, cancel := context.WithCancel(context.Background())
	d := NewDashboard(e.vc)
	require.NoError(t, d.Mount(ctx))
	assert.True(t, d.Mounted())

	cancel()
	assert.False(t, d.Mounted())
}
