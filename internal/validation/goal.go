package validation

import (
	"errors"
	"math"
	"strings"
)

func ValidateExercise(exercise string) error {
	trimmed := strings.TrimSpace(exercise)

	if trimmed == "" {
		return errors.New("exercise is required")
	}

	if len(trimmed) > 100 {
		return errors.New("exercise is too long (max 100 characters)")
	}

	return nil
}

func ValidateUnit(unit string) error {
	trimmed := strings.TrimSpace(unit)

	if trimmed == "" {
		return errors.New("unit is required")
	}

	if len(trimmed) > 32 {
		return errors.New("unit is too long (max 32 characters)")
	}

	return nil
}

// ValidateTarget requires a positive, finite annual target
func ValidateTarget(target float64) error {
	if math.IsNaN(target) || math.IsInf(target, 0) {
		return errors.New("target must be a number")
	}

	if target <= 0 {
		return errors.New("target must be positive")
	}

	return nil
}
