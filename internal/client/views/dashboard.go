package views

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/careerpath/internal/client/models"
)

// recentSteps is how many roadmap steps the dashboard previews.
const recentSteps = 5

type Dashboard struct {
	base

	loading bool
	user    *models.User
	skills  []models.Skill
	steps   []models.RoadmapStep
}

func NewDashboard(vc Context) *Dashboard {
	return &Dashboard{base: base{vc: vc}}
}

// DashboardState is a read-only snapshot with the derived figures filled in.
type DashboardState struct {
	Loading     bool
	User        *models.User
	FirstName   string
	Skills      []models.Skill
	Steps       []models.RoadmapStep
	RecentSteps []models.RoadmapStep
	Progress    int
	Focus       models.RoadmapStep
	FocusAction FocusAction
	Completed   int
	LevelCounts map[models.SkillLevel]int
}

// Mount loads the user, then skills and roadmap in parallel. Loading ends
// only when both have settled. A failed fetch shows as an empty list.
func (d *Dashboard) Mount(parent context.Context) error {
	ctx := d.begin(parent)
	if err := d.apply(ctx, func() {
		d.loading = true
		d.user, d.skills, d.steps = nil, nil, nil
	}); err != nil {
		return err
	}

	user, ok := d.loadUser(ctx)
	if !ok {
		return d.apply(ctx, func() { d.loading = false })
	}

	var (
		skills []models.Skill
		steps  []models.RoadmapStep
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r := d.vc.API.FetchSkills(gctx, user.ID)
		if r.IsFailed() {
			d.vc.Log.Warn(gctx, "skills fetch failed", "user_id", user.ID, "error", r.Err())
		}
		skills = r.Value()
		return nil
	})
	g.Go(func() error {
		r := d.vc.API.FetchRoadmap(gctx, user.ID)
		if r.IsFailed() {
			d.vc.Log.Warn(gctx, "roadmap fetch failed", "user_id", user.ID, "error", r.Err())
		}
		steps = r.Value()
		return nil
	})
	_ = g.Wait()

	return d.apply(ctx, func() {
		d.user = user
		d.skills = skills
		d.steps = steps
		d.loading = false
	})
}

func (d *Dashboard) State() DashboardState {
	d.mu.Lock()
	defer d.mu.Unlock()

	st := DashboardState{
		Loading:     d.loading,
		User:        d.user,
		FirstName:   d.user.FirstName(),
		Skills:      d.skills,
		Steps:       d.steps,
		RecentSteps: d.steps[:min(len(d.steps), recentSteps)],
		Progress:    Progress(d.steps),
		LevelCounts: LevelCounts(d.skills),
		Completed:   StatusCounts(d.steps)[models.StatusCompleted],
	}
	st.Focus, st.FocusAction = Focus(d.steps)
	return st
}
