package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/templui/challenge/internal/app"
	"github.com/templui/challenge/internal/progress"
	"github.com/templui/challenge/internal/service"
)

func StatsCmd() *cobra.Command {
	var (
		user   string
		period string
	)

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Print challenge progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app.App) error {
				dashboard, err := a.DashboardService.Dashboard(cmd.Context(), user, progress.ParsePeriod(period))
				if err != nil {
					return err
				}

				return printStats(cmd.OutOrStdout(), dashboard)
			})
		},
	}

	statsCmd.Flags().StringVar(&user, "user", "", "Show goal detail for a participant (or "+service.PacerName+" for the pacer)")
	statsCmd.Flags().StringVar(&period, "period", string(progress.PeriodYear), "year or month")

	return statsCmd
}

func printStats(w io.Writer, d *service.Dashboard) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	chart := d.YearChart
	if d.Period == progress.PeriodMonth {
		chart = d.MonthChart
	}

	fmt.Fprintf(tw, "%s progress as of %s\n\n", d.Period, d.Report.Now.Format("2006-01-02"))
	fmt.Fprintln(tw, "NAME\tPROGRESS")
	for _, row := range chart {
		fmt.Fprintf(tw, "%s\t%.1f%%\n", row.Name, row.Progress)
	}

	if d.Detail != nil {
		fmt.Fprintf(tw, "\n%s\n", d.Selected)
		fmt.Fprintln(tw, "EXERCISE\tDONE\tTARGET\tUNIT\tPERCENT")
		for _, g := range d.Detail.Goals {
			fmt.Fprintf(tw, "%s\t%g\t%g\t%s\t%.1f%%\n", g.Exercise, g.Sum, progress.Round1(g.Target), g.Unit, g.Percent)
		}
	}

	if d.Pacer != nil {
		fmt.Fprintf(tw, "\n%s\n", progress.PacerLabel)
		fmt.Fprintln(tw, "EXERCISE\tPROGRESS")
		for _, p := range d.Pacer {
			fmt.Fprintf(tw, "%s\t%.1f%%\n", p.Exercise, p.Progress)
		}
	}

	fmt.Fprintln(tw, "\nEXERCISE\tTOTAL")
	for _, t := range d.Report.ExerciseTotals {
		fmt.Fprintf(tw, "%s\t%g\n", t.Exercise, t.Total)
	}

	return tw.Flush()
}
