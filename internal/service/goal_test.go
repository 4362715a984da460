package service

import (
	"context"
	"errors"
	"testing"

	"github.com/templui/challenge/internal/catalog"
	"github.com/templui/challenge/internal/model"
)

func newTestGoalService(t *testing.T, users *mockUserRepo, goals *mockGoalRepo, unique bool) *GoalService {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}
	return NewGoalService(users, goals, cat, unique)
}

func TestRegisterTierAnnualTargets(t *testing.T) {
	users := memUserRepo()
	goals := &mockGoalRepo{}
	svc := newTestGoalService(t, users, goals, false)
	ctx := context.Background()

	pushups, err := svc.RegisterTier(ctx, "Ana", "Pushups", catalog.TierM)
	if err != nil {
		t.Fatalf("register pushups: %v", err)
	}
	squats, err := svc.RegisterTier(ctx, "Ana", "Squats", catalog.TierL)
	if err != nil {
		t.Fatalf("register squats: %v", err)
	}

	if pushups.Target != 7200 || pushups.Unit != "reps" {
		t.Errorf("expected 7200 reps, got %v %s", pushups.Target, pushups.Unit)
	}
	if squats.Target != 10800 {
		t.Errorf("expected 10800, got %v", squats.Target)
	}
	if pushups.UserID != squats.UserID {
		t.Error("expected both goals to belong to the same user")
	}
	if len(goals.created) != 2 {
		t.Errorf("expected 2 goals, got %d", len(goals.created))
	}
}

func TestRegisterTwiceCreatesTwoGoals(t *testing.T) {
	goals := &mockGoalRepo{}
	svc := newTestGoalService(t, memUserRepo(), goals, false)
	ctx := context.Background()

	r := Registration{Name: "Ana", Exercise: "Pushups", Target: 7200, Unit: "reps"}
	first, err := svc.Register(ctx, r)
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Register(ctx, r)
	if err != nil {
		t.Fatal(err)
	}

	if first.ID == second.ID {
		t.Error("expected distinct goal ids")
	}
	if len(goals.created) != 2 {
		t.Errorf("expected 2 goals, got %d", len(goals.created))
	}
}

func TestRegisterUniquePerExercise(t *testing.T) {
	goals := &mockGoalRepo{}
	svc := newTestGoalService(t, memUserRepo(), goals, true)
	ctx := context.Background()

	r := Registration{Name: "Ana", Exercise: "Pushups", Target: 7200, Unit: "reps"}
	if _, err := svc.Register(ctx, r); err != nil {
		t.Fatal(err)
	}

	_, err := svc.Register(ctx, r)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if len(goals.created) != 1 {
		t.Errorf("expected 1 goal, got %d", len(goals.created))
	}

	// A different exercise is still allowed.
	r.Exercise = "Squats"
	if _, err := svc.Register(ctx, r); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name string
		r    Registration
	}{
		{"empty name", Registration{Name: "", Exercise: "Pushups", Target: 1, Unit: "reps"}},
		{"blank name", Registration{Name: "  ", Exercise: "Pushups", Target: 1, Unit: "reps"}},
		{"empty exercise", Registration{Name: "Ana", Exercise: "", Target: 1, Unit: "reps"}},
		{"empty unit", Registration{Name: "Ana", Exercise: "Pushups", Target: 1, Unit: ""}},
		{"zero target", Registration{Name: "Ana", Exercise: "Pushups", Target: 0, Unit: "reps"}},
		{"negative target", Registration{Name: "Ana", Exercise: "Pushups", Target: -5, Unit: "reps"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upserted := false
			users := &mockUserRepo{
				upsertFn: func(ctx context.Context, user *model.User) (*model.User, error) {
					upserted = true
					return user, nil
				},
			}
			svc := newTestGoalService(t, users, &mockGoalRepo{}, false)

			_, err := svc.Register(context.Background(), tt.r)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
			if upserted {
				t.Error("expected no write on invalid input")
			}
		})
	}
}

func TestRegisterTrimsInput(t *testing.T) {
	goals := &mockGoalRepo{}
	svc := newTestGoalService(t, memUserRepo(), goals, false)

	goal, err := svc.Register(context.Background(), Registration{Name: " Ana ", Exercise: " Pushups", Target: 12, Unit: "reps "})
	if err != nil {
		t.Fatal(err)
	}
	if goal.Exercise != "Pushups" || goal.Unit != "reps" {
		t.Errorf("expected trimmed values, got %q %q", goal.Exercise, goal.Unit)
	}
}

func TestRegisterTierUnknown(t *testing.T) {
	svc := newTestGoalService(t, memUserRepo(), &mockGoalRepo{}, false)

	_, err := svc.RegisterTier(context.Background(), "Ana", "Juggling", catalog.TierM)
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}

	_, err = svc.RegisterTier(context.Background(), "Ana", "Pushups", catalog.Tier("XXL"))
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestRegisterStorageError(t *testing.T) {
	dbErr := errors.New("database is locked")
	users := &mockUserRepo{
		upsertFn: func(ctx context.Context, user *model.User) (*model.User, error) {
			return nil, dbErr
		},
	}
	svc := newTestGoalService(t, users, &mockGoalRepo{}, false)

	_, err := svc.Register(context.Background(), Registration{Name: "Ana", Exercise: "Pushups", Target: 1, Unit: "reps"})

	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("expected StorageError, got %v", err)
	}
	if storageErr.Op != "upsert user" {
		t.Errorf("unexpected op %q", storageErr.Op)
	}
	if !errors.Is(err, dbErr) {
		t.Error("expected StorageError to unwrap to the driver error")
	}
}

func TestRegisterGoalCreateError(t *testing.T) {
	goals := &mockGoalRepo{
		createFn: func(ctx context.Context, goal *model.Goal) error {
			return errors.New("constraint failed")
		},
	}
	svc := newTestGoalService(t, memUserRepo(), goals, false)

	_, err := svc.Register(context.Background(), Registration{Name: "Ana", Exercise: "Pushups", Target: 1, Unit: "reps"})

	var storageErr *StorageError
	if !errors.As(err, &storageErr) || storageErr.Op != "create goal" {
		t.Errorf("expected create goal StorageError, got %v", err)
	}
}
