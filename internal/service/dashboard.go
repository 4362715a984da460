package service

import (
	"context"
	"strings"
	"time"

	"github.com/templui/challenge/internal/progress"
	"github.com/templui/challenge/internal/repository"
)

// PacerName selects the pacer detail instead of a participant.
const PacerName = "Push"

// PacerExercise is one row of the pacer detail: where a participant of any
// goal exercise should stand today.
type PacerExercise struct {
	Exercise string  `json:"exercise"`
	Progress float64 `json:"progress"`
}

// Dashboard bundles the engine report with the chart series and the detail
// for the selected participant.
type Dashboard struct {
	Period     progress.Period          `json:"period"`
	Report     *progress.Report         `json:"report"`
	YearChart  []progress.ChartRow      `json:"yearChart"`
	MonthChart []progress.ChartRow      `json:"monthChart"`
	Selected   string                   `json:"selected,omitempty"`
	Detail     *progress.PeriodProgress `json:"detail,omitempty"`
	Pacer      []PacerExercise          `json:"pacer,omitempty"`
}

type DashboardService struct {
	rosterRepository repository.RosterRepository
	order            NameOrder
	location         *time.Location
	now              func() time.Time
}

func NewDashboardService(
	rosterRepository repository.RosterRepository,
	order NameOrder,
	location *time.Location,
) *DashboardService {
	return &DashboardService{
		rosterRepository: rosterRepository,
		order:            order,
		location:         location,
		now:              time.Now,
	}
}

// Report runs the aggregation over the full roster as of now.
func (s *DashboardService) Report(ctx context.Context) (*progress.Report, error) {
	roster, err := s.rosterRepository.UsersWithGoalsAndAchievements(ctx)
	if err != nil {
		return nil, storageError("load roster", err)
	}

	s.order.Sort(roster)
	return progress.Compute(roster, s.now().In(s.location)), nil
}

// Dashboard returns the report for period. selected is the current
// participant; PacerName selects the pacer detail. An unknown name yields no
// detail.
func (s *DashboardService) Dashboard(ctx context.Context, selected string, period progress.Period) (*Dashboard, error) {
	report, err := s.Report(ctx)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{
		Period:     period,
		Report:     report,
		YearChart:  report.Chart(progress.PeriodYear),
		MonthChart: report.Chart(progress.PeriodMonth),
		Selected:   strings.TrimSpace(selected),
	}

	if d.Selected == "" {
		return d, nil
	}

	if p, ok := report.Participant(d.Selected); ok {
		detail := p.For(period)
		d.Detail = &detail
	}

	if d.Selected == PacerName {
		pacer := progress.Round1(report.Pacer.For(period))
		d.Pacer = make([]PacerExercise, 0, len(report.GoalExercises))
		for _, ex := range report.GoalExercises {
			d.Pacer = append(d.Pacer, PacerExercise{Exercise: ex, Progress: pacer})
		}
	}

	return d, nil
}
