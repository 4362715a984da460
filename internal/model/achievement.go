package model

import (
	"time"
)

const DateLayout = "2006-01-02"

// Achievement is one logged training entry. Date is a civil date stored as
// midnight UTC; time of day is irrelevant.
type Achievement struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	Exercise  string    `db:"exercise" json:"exercise"`
	Value     float64   `db:"value" json:"value"`
	Date      time.Time `db:"achieved_on" json:"date"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Day returns the civil date as YYYY-MM-DD.
func (a *Achievement) Day() string {
	return a.Date.UTC().Format(DateLayout)
}

// CivilDate truncates t to its calendar date in t's location and returns
// that date as midnight UTC.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
