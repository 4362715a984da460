package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/templui/challenge/internal/model"
)

type AchievementRepository interface {
	Create(ctx context.Context, achievement *model.Achievement) error
	Achievements(ctx context.Context) ([]*model.Achievement, error)
}

type achievementRepository struct {
	db *sqlx.DB
}

func NewAchievementRepository(db *sqlx.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) Create(ctx context.Context, achievement *model.Achievement) error {
	query := `INSERT INTO achievements (id, user_id, exercise, value, achieved_on, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		achievement.ID,
		achievement.UserID,
		achievement.Exercise,
		achievement.Value,
		achievement.Date,
		achievement.CreatedAt,
	)

	return err
}

func (r *achievementRepository) Achievements(ctx context.Context) ([]*model.Achievement, error) {
	var achievements []*model.Achievement
	query := `SELECT id, user_id, exercise, value, achieved_on, created_at
	          FROM achievements ORDER BY achieved_on ASC, created_at ASC`

	err := r.db.SelectContext(ctx, &achievements, query)
	if err != nil {
		return nil, err
	}

	return achievements, nil
}
