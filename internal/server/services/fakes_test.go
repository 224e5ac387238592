package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/careerpath/internal/common"
	"github.com/dmitrijs2005/careerpath/internal/dbx"
	"github.com/dmitrijs2005/careerpath/internal/server/models"
	"github.com/dmitrijs2005/careerpath/internal/server/repositories/roadmap"
	"github.com/dmitrijs2005/careerpath/internal/server/repositories/skills"
	"github.com/dmitrijs2005/careerpath/internal/server/repositories/users"
)

type fakeUsersRepo struct {
	byEmail   map[string]*models.User
	created   []*models.User
	createErr error
	getErr    error
	exists    bool
	existErr  error
	count     int64
	countErr  error
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = int64(len(f.created) + 1)
	f.created = append(f.created, u)
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeUsersRepo) Exists(context.Context, int64) (bool, error) { return f.exists, f.existErr }
func (f *fakeUsersRepo) Count(context.Context) (int64, error) { return f.count, f.countErr }

type fakeSkillsRepo struct {
	list      []models.Skill
	created   []models.Skill
	createErr error
	updated   *models.Skill
	updateErr error
}

func (f *fakeSkillsRepo) ListByUser(context.Context, int64) ([]models.Skill, error) {
	return f.list, nil
}

func (f *fakeSkillsRepo) Create(_ context.Context, s *models.Skill) (*models.Skill, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	s.ID = int64(len(f.created) + 1)
	f.created = append(f.created, *s)
	return s, nil
}

func (f *fakeSkillsRepo) UpdateLevel(_ context.Context, id int64, level string) (*models.Skill, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updated = &models.Skill{ID: id, Level: level}
	return f.updated, nil
}

type fakeRoadmapRepo struct {
	list      []models.RoadmapStep
	created   []models.RoadmapStep
	patch     *models.StepPatch
	updateErr error
	deleted   []int64
	deleteErr error
}

func (f *fakeRoadmapRepo) ListByUser(context.Context, int64) ([]models.RoadmapStep, error) {
	return f.list, nil
}

func (f *fakeRoadmapRepo) Create(_ context.Context, s *models.RoadmapStep) (*models.RoadmapStep, error) {
	s.ID = int64(len(f.created) + 1)
	f.created = append(f.created, *s)
	return s, nil
}

func (f *fakeRoadmapRepo) Update(_ context.Context, id int64, p models.StepPatch) (*models.RoadmapStep, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.patch = &p
	st := &models.RoadmapStep{ID: id}
	if p.Status != nil {
		st.Status = *p.Status
	}
	return st, nil
}

func (f *fakeRoadmapRepo) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeManager struct {
	users   *fakeUsersRepo
	skills  *fakeSkillsRepo
	roadmap *fakeRoadmapRepo
}

func newFakeManager() *fakeManager {
	return &fakeManager{
		users:   &fakeUsersRepo{byEmail: map[string]*models.User{}},
		skills:  &fakeSkillsRepo{},
		roadmap: &fakeRoadmapRepo{},
	}
}

func (m *fakeManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeManager) Users(dbx.DBTX) users.Repository { return m.users }
func (m *fakeManager) Skills(dbx.DBTX) skills.Repository { return m.skills }
func (m *fakeManager) Roadmap(dbx.DBTX) roadmap.Repository { return m.roadmap }
