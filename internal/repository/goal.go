package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/templui/challenge/internal/model"
)

type GoalRepository interface {
	Create(ctx context.Context, goal *model.Goal) error
	Goals(ctx context.Context) ([]*model.Goal, error)
	CountByExercise(ctx context.Context, userID, exercise string) (int, error)
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(ctx context.Context, goal *model.Goal) error {
	query := `INSERT INTO goals (id, user_id, exercise, target, unit, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		goal.ID,
		goal.UserID,
		goal.Exercise,
		goal.Target,
		goal.Unit,
		goal.CreatedAt,
	)

	return err
}

func (r *goalRepository) Goals(ctx context.Context) ([]*model.Goal, error) {
	var goals []*model.Goal
	query := `SELECT id, user_id, exercise, target, unit, created_at FROM goals ORDER BY created_at ASC, id ASC`

	err := r.db.SelectContext(ctx, &goals, query)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) CountByExercise(ctx context.Context, userID, exercise string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM goals WHERE user_id = $1 AND exercise = $2`
	err := r.db.QueryRowContext(ctx, query, userID, exercise).Scan(&count)
	return count, err
}
