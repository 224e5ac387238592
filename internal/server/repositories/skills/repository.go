package skills

import (
	"context"

	"github.com/dmitrijs2005/careerpath/internal/server/models"
)

type Repository interface {
	ListByUser(ctx context.Context, userID int64) ([]models.Skill, error)
	Create(ctx context.Context, skill *models.Skill) (*models.Skill, error)
	UpdateLevel(ctx context.Context, id int64, level string) (*models.Skill, error)
}
