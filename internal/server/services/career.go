package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/careerpath/internal/common"
	"github.com/dmitrijs2005/careerpath/internal/server/models"
	"github.com/dmitrijs2005/careerpath/internal/server/repositories/repomanager"
)

// CareerService owns a user's skills and roadmap steps.
type CareerService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCareerService(db *sql.DB, m repomanager.RepositoryManager) *CareerService {
	return &CareerService{db: db, repomanager: m}
}

func (s *CareerService) Skills(ctx context.Context, userID int64) ([]models.Skill, error) {
	return s.repomanager.Skills(s.db).ListByUser(ctx, userID)
}

// AddSkill attaches skill to the user. An unknown user yields
// common.ErrNotFound, an unknown level or category common.ErrValidation.
func (s *CareerService) AddSkill(ctx context.Context, userID int64, skill models.Skill) (*models.Skill, error) {
	skill.Name = strings.TrimSpace(skill.Name)
	switch {
	case skill.Name == "":
		return nil, fmt.Errorf("%w: name is required", common.ErrValidation)
	case !models.ValidCategory(skill.Category):
		return nil, fmt.Errorf("%w: unknown category %q", common.ErrValidation, skill.Category)
	case !models.ValidLevel(skill.Level):
		return nil, fmt.Errorf("%w: unknown level %q", common.ErrValidation, skill.Level)
	}

	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	skill.ID = 0
	skill.UserID = userID
	return s.repomanager.Skills(s.db).Create(ctx, &skill)
}

func (s *CareerService) UpdateSkillLevel(ctx context.Context, skillID int64, level string) (*models.Skill, error) {
	if !models.ValidLevel(level) {
		return nil, fmt.Errorf("%w: unknown level %q", common.ErrValidation, level)
	}
	return s.repomanager.Skills(s.db).UpdateLevel(ctx, skillID, level)
}

func (s *CareerService) Roadmap(ctx context.Context, userID int64) ([]models.RoadmapStep, error) {
	return s.repomanager.Roadmap(s.db).ListByUser(ctx, userID)
}

// AddStep appends step to the user's roadmap. A blank status means pending.
func (s *CareerService) AddStep(ctx context.Context, userID int64, step models.RoadmapStep) (*models.RoadmapStep, error) {
	step.Title = strings.TrimSpace(step.Title)
	if step.Title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrValidation)
	}
	if step.Status == "" {
		step.Status = models.StatusPending
	}
	if !models.ValidStatus(step.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", common.ErrValidation, step.Status)
	}

	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	step.ID = 0
	step.UserID = userID
	return s.repomanager.Roadmap(s.db).Create(ctx, &step)
}

// UpdateStep applies patch. Fields left nil keep their stored value.
func (s *CareerService) UpdateStep(ctx context.Context, stepID int64, patch models.StepPatch) (*models.RoadmapStep, error) {
	if patch.Status != nil && !models.ValidStatus(*patch.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", common.ErrValidation, *patch.Status)
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrValidation)
	}
	return s.repomanager.Roadmap(s.db).Update(ctx, stepID, patch)
}

func (s *CareerService) DeleteStep(ctx context.Context, stepID int64) error {
	return s.repomanager.Roadmap(s.db).Delete(ctx, stepID)
}

func (s *CareerService) requireUser(ctx context.Context, userID int64) error {
	ok, err := s.repomanager.Users(s.db).Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("user %d: %w", userID, common.ErrNotFound)
	}
	return nil
}
