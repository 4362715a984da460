package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/templui/challenge/internal/model"
	"github.com/templui/challenge/internal/repository"
	"github.com/templui/challenge/internal/validation"
)

// Entry is the input of Log. An empty Date means today.
type Entry struct {
	UserName string
	Exercise string
	Value    *float64
	Date     string
}

type AchievementService struct {
	userRepository        repository.UserRepository
	achievementRepository repository.AchievementRepository
	location              *time.Location
	now                   func() time.Time
}

func NewAchievementService(
	userRepository repository.UserRepository,
	achievementRepository repository.AchievementRepository,
	location *time.Location,
) *AchievementService {
	return &AchievementService{
		userRepository:        userRepository,
		achievementRepository: achievementRepository,
		location:              location,
		now:                   time.Now,
	}
}

// Log appends one achievement for an existing user. The exercise is not
// checked against the user's goals, so entries for other exercises only
// count toward the global totals.
func (s *AchievementService) Log(ctx context.Context, e Entry) (*model.Achievement, error) {
	e.UserName = strings.TrimSpace(e.UserName)
	e.Exercise = strings.TrimSpace(e.Exercise)

	if err := validation.ValidateName(e.UserName); err != nil {
		return nil, invalid(err)
	}
	if err := validation.ValidateExercise(e.Exercise); err != nil {
		return nil, invalid(err)
	}
	if err := validation.ValidateValue(e.Value); err != nil {
		return nil, invalid(err)
	}

	now := s.now().In(s.location)
	date := model.CivilDate(now)
	if strings.TrimSpace(e.Date) != "" {
		parsed, err := validation.ParseDate(e.Date)
		if err != nil {
			return nil, invalid(err)
		}
		date = parsed
	}

	user, err := s.userRepository.ByName(ctx, e.UserName)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("%w: user %q", ErrNotFound, e.UserName)
	}
	if err != nil {
		return nil, storageError("get user", err)
	}

	achievement := &model.Achievement{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Exercise:  e.Exercise,
		Value:     *e.Value,
		Date:      date,
		CreatedAt: now,
	}

	err = s.achievementRepository.Create(ctx, achievement)
	if err != nil {
		return nil, storageError("create achievement", err)
	}

	slog.Info("achievement logged",
		"user", user.Name,
		"exercise", achievement.Exercise,
		"value", achievement.Value,
		"date", achievement.Day(),
	)

	return achievement, nil
}
