package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/templui/challenge/internal/model"
)

// RosterRepository assembles participants from users, goals and achievements.
type RosterRepository interface {
	UsersWithGoals(ctx context.Context) ([]model.Participant, error)
	UsersWithGoalsAndAchievements(ctx context.Context) ([]model.Participant, error)
}

type rosterRepository struct {
	users        UserRepository
	goals        GoalRepository
	achievements AchievementRepository
}

func NewRosterRepository(db *sqlx.DB) RosterRepository {
	return &rosterRepository{
		users:        NewUserRepository(db),
		goals:        NewGoalRepository(db),
		achievements: NewAchievementRepository(db),
	}
}

func (r *rosterRepository) UsersWithGoals(ctx context.Context) ([]model.Participant, error) {
	return r.roster(ctx, false)
}

func (r *rosterRepository) UsersWithGoalsAndAchievements(ctx context.Context) ([]model.Participant, error) {
	return r.roster(ctx, true)
}

func (r *rosterRepository) roster(ctx context.Context, withAchievements bool) ([]model.Participant, error) {
	users, err := r.users.Users(ctx)
	if err != nil {
		return nil, err
	}

	participants := make([]model.Participant, len(users))
	index := make(map[string]int, len(users))
	for i, u := range users {
		participants[i] = model.Participant{
			User:         *u,
			Goals:        []model.Goal{},
			Achievements: []model.Achievement{},
		}
		index[u.ID] = i
	}

	goals, err := r.goals.Goals(ctx)
	if err != nil {
		return nil, err
	}
	for _, g := range goals {
		if i, ok := index[g.UserID]; ok {
			participants[i].Goals = append(participants[i].Goals, *g)
		}
	}

	if !withAchievements {
		return participants, nil
	}

	achievements, err := r.achievements.Achievements(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range achievements {
		if i, ok := index[a.UserID]; ok {
			participants[i].Achievements = append(participants[i].Achievements, *a)
		}
	}

	return participants, nil
}
