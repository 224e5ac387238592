package roadmap

import (
	"context"

	"github.com/dmitrijs2005/careerpath/internal/server/models"
)

type Repository interface {
	ListByUser(ctx context.Context, userID int64) ([]models.RoadmapStep, error)
	Create(ctx context.Context, step *models.RoadmapStep) (*models.RoadmapStep, error)
	Update(ctx context.Context, id int64, patch models.StepPatch) (*models.RoadmapStep, error)
	Delete(ctx context.Context, id int64) error
}
