package model

import (
	"time"
)

// Goal is an annual exercise target. Goals are immutable once created.
type Goal struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	Exercise  string    `db:"exercise" json:"exercise"`
	Target    float64   `db:"target" json:"target"` // annual scale
	Unit      string    `db:"unit" json:"unit"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// MonthlyTarget is the annual target spread evenly over twelve months,
// independent of the calendar month length.
func (g *Goal) MonthlyTarget() float64 {
	return g.Target / 12
}
