package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/templui/challenge/internal/app"
	"github.com/templui/challenge/internal/service"
)

func LogCmd() *cobra.Command {
	var (
		user     string
		exercise string
		value    float64
		date     string
	)

	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Log a training entry",
		Example: `  challenge log --user Ana --exercise Pushups --value 50
  challenge log --user Ana --exercise Pushups --value 50 --date 2026-03-15`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app.App) error {
				achievement, err := a.AchievementService.Log(cmd.Context(), service.Entry{
					UserName: user,
					Exercise: exercise,
					Value:    &value,
					Date:     date,
				})
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "logged %g %s for %s on %s\n",
					achievement.Value, achievement.Exercise, user, achievement.Day())
				return nil
			})
		},
	}

	logCmd.Flags().StringVar(&user, "user", "", "Participant name")
	logCmd.Flags().StringVar(&exercise, "exercise", "", "Exercise name")
	logCmd.Flags().Float64Var(&value, "value", 0, "Amount achieved")
	logCmd.Flags().StringVar(&date, "date", "", "Date as YYYY-MM-DD (default: today)")
	_ = logCmd.MarkFlagRequired("user")
	_ = logCmd.MarkFlagRequired("exercise")
	_ = logCmd.MarkFlagRequired("value")

	return logCmd
}
