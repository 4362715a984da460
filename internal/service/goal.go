package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/templui/challenge/internal/catalog"
	"github.com/templui/challenge/internal/model"
	"github.com/templui/challenge/internal/repository"
	"github.com/templui/challenge/internal/validation"
)

// Registration is the input of Register. Target is on the annual scale.
type Registration struct {
	Name     string
	Exercise string
	Target   float64
	Unit     string
}

type GoalService struct {
	userRepository    repository.UserRepository
	goalRepository    repository.GoalRepository
	catalog           *catalog.Catalog
	uniquePerExercise bool
	now               func() time.Time
}

func NewGoalService(
	userRepository repository.UserRepository,
	goalRepository repository.GoalRepository,
	catalog *catalog.Catalog,
	uniquePerExercise bool,
) *GoalService {
	return &GoalService{
		userRepository:    userRepository,
		goalRepository:    goalRepository,
		catalog:           catalog,
		uniquePerExercise: uniquePerExercise,
		now:               time.Now,
	}
}

// Register ensures a user named r.Name exists and attaches a new goal to it.
// Registering the same name and exercise twice creates two goals unless
// uniqueness per exercise is enabled, in which case the second call fails
// with ErrConflict.
func (s *GoalService) Register(ctx context.Context, r Registration) (*model.Goal, error) {
	r.Name = strings.TrimSpace(r.Name)
	r.Exercise = strings.TrimSpace(r.Exercise)
	r.Unit = strings.TrimSpace(r.Unit)

	if err := validation.ValidateName(r.Name); err != nil {
		return nil, invalid(err)
	}
	if err := validation.ValidateExercise(r.Exercise); err != nil {
		return nil, invalid(err)
	}
	if err := validation.ValidateTarget(r.Target); err != nil {
		return nil, invalid(err)
	}
	if err := validation.ValidateUnit(r.Unit); err != nil {
		return nil, invalid(err)
	}

	now := s.now()
	user, err := s.userRepository.Upsert(ctx, &model.User{
		ID:        uuid.New().String(),
		Name:      r.Name,
		CreatedAt: now,
	})
	if err != nil {
		return nil, storageError("upsert user", err)
	}

	if s.uniquePerExercise {
		count, err := s.goalRepository.CountByExercise(ctx, user.ID, r.Exercise)
		if err != nil {
			return nil, storageError("count goals", err)
		}
		if count > 0 {
			return nil, fmt.Errorf("%w: %s already has a %s goal", ErrConflict, user.Name, r.Exercise)
		}
	}

	goal := &model.Goal{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Exercise:  r.Exercise,
		Target:    r.Target,
		Unit:      r.Unit,
		CreatedAt: now,
	}

	err = s.goalRepository.Create(ctx, goal)
	if err != nil {
		return nil, storageError("create goal", err)
	}

	slog.Info("goal registered",
		"user", user.Name,
		"exercise", goal.Exercise,
		"target", goal.Target,
		"unit", goal.Unit,
	)

	return goal, nil
}

// RegisterTier registers a goal whose unit and annual target come from the
// catalog entry for exercise at tier.
func (s *GoalService) RegisterTier(ctx context.Context, name, exercise string, tier catalog.Tier) (*model.Goal, error) {
	entry, err := s.catalog.Lookup(strings.TrimSpace(exercise))
	if err != nil {
		return nil, invalid(err)
	}

	target, err := entry.Annual(tier)
	if err != nil {
		return nil, invalid(err)
	}

	return s.Register(ctx, Registration{
		Name:     name,
		Exercise: entry.Exercise,
		Target:   target,
		Unit:     entry.Unit,
	})
}

// Catalog returns the exercise table used for tier registration.
func (s *GoalService) Catalog() []catalog.Entry {
	return s.catalog.Entries()
}
