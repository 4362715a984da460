package validation

import (
	"errors"
	"math"
	"strings"
	"time"
)

// ValidateValue accepts any finite number, including negative corrections
func ValidateValue(value *float64) error {
	if value == nil {
		return errors.New("value is required")
	}

	if math.IsNaN(*value) || math.IsInf(*value, 0) {
		return errors.New("value must be a number")
	}

	return nil
}

// ParseDate parses a YYYY-MM-DD calendar date into midnight UTC
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(date))
	if err != nil {
		return time.Time{}, errors.New("date must be formatted as YYYY-MM-DD")
	}
	return t, nil
}
