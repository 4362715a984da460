package service

import (
	"context"
	"io"

	"github.com/templui/challenge/internal/model"
	"github.com/templui/challenge/internal/repository"
)

// ---------------------------------------------------------------------------
// Mock repositories (function-fields pattern)
// ---------------------------------------------------------------------------

type mockUserRepo struct {
	upsertFn func(ctx context.Context, user *model.User) (*model.User, error)
	byNameFn func(ctx context.Context, name string) (*model.User, error)
	usersFn  func(ctx context.Context) ([]*model.User, error)
}

func (m *mockUserRepo) Upsert(ctx context.Context, user *model.User) (*model.User, error) {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepo) ByName(ctx context.Context, name string) (*model.User, error) {
	if m.byNameFn != nil {
		return m.byNameFn(ctx, name)
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockUserRepo) Users(ctx context.Context) ([]*model.User, error) {
	if m.usersFn != nil {
		return m.usersFn(ctx)
	}
	return nil, nil
}

// memUserRepo upserts by name like the database does.
func memUserRepo() *mockUserRepo {
	byName := map[string]*model.User{}
	return &mockUserRepo{
		upsertFn: func(ctx context.Context, user *model.User) (*model.User, error) {
			if existing, ok := byName[user.Name]; ok {
				return existing, nil
			}
			stored := *user
			byName[user.Name] = &stored
			return &stored, nil
		},
		byNameFn: func(ctx context.Context, name string) (*model.User, error) {
			if u, ok := byName[name]; ok {
				return u, nil
			}
			return nil, repository.ErrUserNotFound
		},
	}
}

type mockGoalRepo struct {
	createFn func(ctx context.Context, goal *model.Goal) error
	goalsFn  func(ctx context.Context) ([]*model.Goal, error)
	countFn  func(ctx context.Context, userID, exercise string) (int, error)
	created  []*model.Goal
}

func (m *mockGoalRepo) Create(ctx context.Context, goal *model.Goal) error {
	if m.createFn != nil {
		if err := m.createFn(ctx, goal); err != nil {
			return err
		}
	}
	m.created = append(m.created, goal)
	return nil
}

func (m *mockGoalRepo) Goals(ctx context.Context) ([]*model.Goal, error) {
	if m.goalsFn != nil {
		return m.goalsFn(ctx)
	}
	return m.created, nil
}

func (m *mockGoalRepo) CountByExercise(ctx context.Context, userID, exercise string) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx, userID, exercise)
	}
	n := 0
	for _, g := range m.created {
		if g.UserID == userID && g.Exercise == exercise {
			n++
		}
	}
	return n, nil
}

type mockAchievementRepo struct {
	createFn func(ctx context.Context, achievement *model.Achievement) error
	created  []*model.Achievement
}

func (m *mockAchievementRepo) Create(ctx context.Context, achievement *model.Achievement) error {
	if m.createFn != nil {
		if err := m.createFn(ctx, achievement); err != nil {
			return err
		}
	}
	m.created = append(m.created, achievement)
	return nil
}

func (m *mockAchievementRepo) Achievements(ctx context.Context) ([]*model.Achievement, error) {
	return m.created, nil
}

type mockRosterRepo struct {
	withGoalsFn        func(ctx context.Context) ([]model.Participant, error)
	withAchievementsFn func(ctx context.Context) ([]model.Participant, error)
}

func (m *mockRosterRepo) UsersWithGoals(ctx context.Context) ([]model.Participant, error) {
	if m.withGoalsFn != nil {
		return m.withGoalsFn(ctx)
	}
	return []model.Participant{}, nil
}

func (m *mockRosterRepo) UsersWithGoalsAndAchievements(ctx context.Context) ([]model.Participant, error) {
	if m.withAchievementsFn != nil {
		return m.withAchievementsFn(ctx)
	}
	return []model.Participant{}, nil
}

// staticRoster returns a fresh copy of participants on every call.
func staticRoster(participants ...model.Participant) *mockRosterRepo {
	load := func(ctx context.Context) ([]model.Participant, error) {
		out := make([]model.Participant, len(participants))
		copy(out, participants)
		return out, nil
	}
	return &mockRosterRepo{withGoalsFn: load, withAchievementsFn: load}
}

type mockStorage struct {
	saveFn    func(ctx context.Context, key string, body io.ReadSeeker, contentType string) error
	deleteFn  func(ctx context.Context, key string) error
	presignFn func(ctx context.Context, key string) (string, error)
}

func (m *mockStorage) Save(ctx context.Context, key string, body io.ReadSeeker, contentType string) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, key, body, contentType)
	}
	return nil
}

func (m *mockStorage) Delete(ctx context.Context, key string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, key)
	}
	return nil
}

func (m *mockStorage) PresignedURL(ctx context.Context, key string) (string, error) {
	if m.presignFn != nil {
		return m.presignFn(ctx, key)
	}
	return "https://storage.example.com/" + key, nil
}
