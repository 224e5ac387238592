package skills

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/careerpath/internal/common"
	"github.com/dmitrijs2005/careerpath/internal/dbx"
	"github.com/dmitrijs2005/careerpath/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListByUser returns the user's skills in creation order; never nil.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]models.Skill, error) {
	query :=
		`SELECT id, user_id, name, category, level FROM skills
		 WHERE user_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]models.Skill, 0)
	for rows.Next() {
		var s models.Skill
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Category, &s.Level); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Create(ctx context.Context, skill *models.Skill) (*models.Skill, error) {
	query :=
		`INSERT INTO skills (user_id, name, category, level)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		skill.UserID, skill.Name, skill.Category, skill.Level).Scan(&skill.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return skill, nil
}

// UpdateLevel sets the level and returns the stored record, or
// common.ErrNotFound for an unknown id.
func (r *PostgresRepository) UpdateLevel(ctx context.Context, id int64, level string) (*models.Skill, error) {
	query :=
		`UPDATE skills SET level = $2
		 WHERE id = $1
		 RETURNING id, user_id, name, category, level
		 `

	s := &models.Skill{}
	err := r.db.QueryRowContext(ctx, query, id, level).
		Scan(&s.ID, &s.UserID, &s.Name, &s.Category, &s.Level)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}
