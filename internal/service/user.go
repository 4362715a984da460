package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/templui/challenge/internal/model"
	"github.com/templui/challenge/internal/repository"
)

type UserService struct {
	userRepository   repository.UserRepository
	rosterRepository repository.RosterRepository
	order            NameOrder
}

func NewUserService(
	userRepository repository.UserRepository,
	rosterRepository repository.RosterRepository,
	order NameOrder,
) *UserService {
	return &UserService{
		userRepository:   userRepository,
		rosterRepository: rosterRepository,
		order:            order,
	}
}

// Users returns every user with their goals, ordered by name.
func (s *UserService) Users(ctx context.Context) ([]model.Participant, error) {
	participants, err := s.rosterRepository.UsersWithGoals(ctx)
	if err != nil {
		return nil, storageError("list users", err)
	}

	s.order.Sort(participants)
	return participants, nil
}

// Stats returns every user with goals and achievements, ordered by name.
func (s *UserService) Stats(ctx context.Context) ([]model.Participant, error) {
	participants, err := s.rosterRepository.UsersWithGoalsAndAchievements(ctx)
	if err != nil {
		return nil, storageError("list stats", err)
	}

	s.order.Sort(participants)
	return participants, nil
}

func (s *UserService) ByName(ctx context.Context, name string) (*model.User, error) {
	user, err := s.userRepository.ByName(ctx, strings.TrimSpace(name))
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("%w: user %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, storageError("get user", err)
	}

	return user, nil
}
