package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/templui/challenge/internal/model"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

type UserRepository interface {
	Upsert(ctx context.Context, user *model.User) (*model.User, error)
	ByName(ctx context.Context, name string) (*model.User, error)
	Users(ctx context.Context) ([]*model.User, error)
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

// Upsert inserts user unless a user with the same name exists, then returns
// the stored row. Existing users are never overwritten.
func (r *userRepository) Upsert(ctx context.Context, user *model.User) (*model.User, error) {
	query := `INSERT INTO users (id, name, created_at) VALUES ($1, $2, $3)
	          ON CONFLICT (name) DO NOTHING`

	_, err := r.db.ExecContext(ctx, query, user.ID, user.Name, user.CreatedAt)
	if err != nil {
		return nil, err
	}

	return r.ByName(ctx, user.Name)
}

func (r *userRepository) ByName(ctx context.Context, name string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT id, name, created_at FROM users WHERE name = $1`

	err := r.db.GetContext(ctx, user, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) Users(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	query := `SELECT id, name, created_at FROM users ORDER BY name ASC`

	err := r.db.SelectContext(ctx, &users, query)
	if err != nil {
		return nil, err
	}

	return users, nil
}
