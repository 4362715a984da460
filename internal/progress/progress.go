// Package progress computes challenge dashboards from the participant roster.
//
// Compute is a pure function of the roster and a reference instant: for every
// participant and goal it sums the matching achievements for the year and the
// current month, turns the sums into completion percentages capped at 100 and
// averages them into an overall figure. Alongside it reports two pacer values
// derived from the calendar alone and global per-exercise totals.
package progress

import (
	"math"
	"sort"
	"time"

	"github.com/templui/challenge/internal/model"
)

// PacerLabel names the pacer row in chart series.
const PacerLabel = "Push (Pacer)"

type Period string

const (
	PeriodYear  Period = "year"
	PeriodMonth Period = "month"
)

// ParsePeriod maps "month" to PeriodMonth and everything else to PeriodYear.
func ParsePeriod(s string) Period {
	if Period(s) == PeriodMonth {
		return PeriodMonth
	}
	return PeriodYear
}

type GoalProgress struct {
	GoalID   string  `json:"goalId"`
	Exercise string  `json:"exercise"`
	Unit     string  `json:"unit"`
	Sum      float64 `json:"sum"`
	Target   float64 `json:"target"`
	Percent  float64 `json:"percent"`
}

// Complete reports whether the goal reached its period target.
func (g GoalProgress) Complete() bool {
	return g.Percent >= 100
}

type PeriodProgress struct {
	Goals   []GoalProgress `json:"goals"`
	Overall float64        `json:"overall"`
}

type ParticipantProgress struct {
	UserID string         `json:"userId"`
	Name   string         `json:"name"`
	Year   PeriodProgress `json:"year"`
	Month  PeriodProgress `json:"month"`
}

// For returns the progress for period p.
func (p ParticipantProgress) For(period Period) PeriodProgress {
	if period == PeriodMonth {
		return p.Month
	}
	return p.Year
}

type ExerciseTotal struct {
	Exercise string  `json:"exercise"`
	Total    float64 `json:"total"`
}

type Pacer struct {
	Year  float64 `json:"year"`
	Month float64 `json:"month"`
}

// For returns the pacer value for period p.
func (p Pacer) For(period Period) float64 {
	if period == PeriodMonth {
		return p.Month
	}
	return p.Year
}

type ChartRow struct {
	Name     string  `json:"name"`
	Progress float64 `json:"progress"`
	Pacer    bool    `json:"pacer,omitempty"`
}

type Report struct {
	Now            time.Time             `json:"now"`
	Pacer          Pacer                 `json:"pacer"`
	Participants   []ParticipantProgress `json:"participants"`
	ExerciseTotals []ExerciseTotal       `json:"exerciseTotals"`
	// GoalExercises is the distinct set of exercises any participant has a goal for.
	GoalExercises []string `json:"goalExercises"`
}

// Compute builds the report for roster as seen at now.
func Compute(roster []model.Participant, now time.Time) *Report {
	r := &Report{
		Now: now,
		Pacer: Pacer{
			Year:  YearPacer(now),
			Month: MonthPacer(now),
		},
		Participants:  make([]ParticipantProgress, 0, len(roster)),
		GoalExercises: []string{},
	}

	totals := map[string]float64{}
	goalExercises := map[string]bool{}

	for _, p := range roster {
		r.Participants = append(r.Participants, ParticipantProgress{
			UserID: p.ID,
			Name:   p.Name,
			Year:   periodProgress(p, PeriodYear, now),
			Month:  periodProgress(p, PeriodMonth, now),
		})
		for _, a := range p.Achievements {
			totals[a.Exercise] += a.Value
		}
		for _, g := range p.Goals {
			if !goalExercises[g.Exercise] {
				goalExercises[g.Exercise] = true
				r.GoalExercises = append(r.GoalExercises, g.Exercise)
			}
		}
	}

	r.ExerciseTotals = make([]ExerciseTotal, 0, len(totals))
	for ex, total := range totals {
		r.ExerciseTotals = append(r.ExerciseTotals, ExerciseTotal{Exercise: ex, Total: total})
	}
	sort.Slice(r.ExerciseTotals, func(i, j int) bool {
		return r.ExerciseTotals[i].Exercise < r.ExerciseTotals[j].Exercise
	})
	sort.Strings(r.GoalExercises)

	return r
}

func periodProgress(p model.Participant, period Period, now time.Time) PeriodProgress {
	out := PeriodProgress{Goals: make([]GoalProgress, 0, len(p.Goals))}
	if len(p.Goals) == 0 {
		return out
	}

	var total float64
	for _, g := range p.Goals {
		target := PeriodTarget(g.Target, period)
		var sum float64
		for _, a := range p.Achievements {
			if a.Exercise != g.Exercise {
				continue
			}
			if period == PeriodMonth && !SameMonth(a.Date, now) {
				continue
			}
			sum += a.Value
		}
		pct := GoalPercent(sum, target)
		total += pct
		out.Goals = append(out.Goals, GoalProgress{
			GoalID:   g.ID,
			Exercise: g.Exercise,
			Unit:     g.Unit,
			Sum:      sum,
			Target:   target,
			Percent:  pct,
		})
	}
	out.Overall = total / float64(len(p.Goals))
	return out
}

// PeriodTarget scales an annual target to period.
func PeriodTarget(annual float64, period Period) float64 {
	if period == PeriodMonth {
		return annual / 12
	}
	return annual
}

// GoalPercent is 100*sum/target capped at 100. It is not floored at 0, so
// negative sums pass through. A non-positive target yields 0.
func GoalPercent(sum, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return math.Min(100, 100*sum/target)
}

// SameMonth reports whether the civil date d (stored as midnight UTC) falls in
// the calendar month and year of now, evaluated in now's location.
func SameMonth(d, now time.Time) bool {
	dy, dm, _ := d.UTC().Date()
	ny, nm, _ := now.Date()
	return dy == ny && dm == nm
}

// YearPacer is 100*dayOfYear/365 with a 1-based day of year. Leap years are
// not adjusted, so December 31st of a leap year is slightly above 100.
func YearPacer(now time.Time) float64 {
	return 100 * float64(now.YearDay()) / 365
}

// MonthPacer is 100*dayOfMonth/daysInMonth.
func MonthPacer(now time.Time) float64 {
	return 100 * float64(now.Day()) / float64(DaysInMonth(now))
}

// DaysInMonth returns the number of days of t's month.
func DaysInMonth(t time.Time) int {
	y, m, _ := t.Date()
	return time.Date(y, m+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// Chart returns one row per participant for period, preceded by the pacer
// row. Progress values are rounded to one decimal.
func (r *Report) Chart(period Period) []ChartRow {
	rows := make([]ChartRow, 0, len(r.Participants)+1)
	rows = append(rows, ChartRow{Name: PacerLabel, Progress: Round1(r.Pacer.For(period)), Pacer: true})
	for _, p := range r.Participants {
		rows = append(rows, ChartRow{Name: p.Name, Progress: Round1(p.For(period).Overall)})
	}
	return rows
}

// Participant finds a participant by name.
func (r *Report) Participant(name string) (ParticipantProgress, bool) {
	for _, p := range r.Participants {
		if p.Name == name {
			return p, true
		}
	}
	return ParticipantProgress{}, false
}

// ExerciseTotal returns the global total for exercise, 0 if nothing was logged.
func (r *Report) ExerciseTotal(exercise string) float64 {
	for _, t := range r.ExerciseTotals {
		if t.Exercise == exercise {
			return t.Total
		}
	}
	return 0
}

func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
