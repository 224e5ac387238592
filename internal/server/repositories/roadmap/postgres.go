package roadmap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/careerpath/internal/common"
	"github.com/dmitrijs2005/careerpath/internal/dbx"
	"github.com/dmitrijs2005/careerpath/internal/server/models"
)

const stepColumns = `id, user_id, title, description, status, duration, topics`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStep(s scanner) (models.RoadmapStep, error) {
	var st models.RoadmapStep
	err := s.Scan(&st.ID, &st.UserID, &st.Title, &st.Description, &st.Status, &st.Duration, &st.Topics)
	return st, err
}

// ListByUser returns the user's steps in creation order; never nil.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]models.RoadmapStep, error) {
	query := `SELECT ` + stepColumns + ` FROM roadmap_steps WHERE user_id = $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]models.RoadmapStep, 0)
	for rows.Next() {
		st, err := scanStep(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Create(ctx context.Context, step *models.RoadmapStep) (*models.RoadmapStep, error) {
	query :=
		`INSERT INTO roadmap_steps (user_id, title, description, status, duration, topics)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		step.UserID, step.Title, step.Description, step.Status, step.Duration, step.Topics).Scan(&step.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return step, nil
}

// Update applies the non-nil fields of patch and returns the stored record.
func (r *PostgresRepository) Update(ctx context.Context, id int64, patch models.StepPatch) (*models.RoadmapStep, error) {
	query :=
		`UPDATE roadmap_steps SET
		   title       = COALESCE($2, title),
		   description = COALESCE($3, description),
		   status      = COALESCE($4, status),
		   duration    = COALESCE($5, duration),
		   topics      = COALESCE($6, topics)
		 WHERE id = $1
		 RETURNING ` + stepColumns

	st, err := scanStep(r.db.QueryRowContext(ctx, query, id,
		patch.Title, patch.Description, patch.Status, patch.Duration, patch.Topics))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &st, nil
}

// Delete removes the step; an unknown id yields common.ErrNotFound.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM roadmap_steps WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
