package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/templui/challenge/internal/app"
	"github.com/templui/challenge/internal/catalog"
	"github.com/templui/challenge/internal/model"
	"github.com/templui/challenge/internal/service"
)

func RegisterCmd() *cobra.Command {
	var (
		name     string
		exercise string
		tier     string
		target   float64
		unit     string
	)

	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Register an annual goal for a participant",
		Example: `  challenge register --name Ana --exercise Pushups --tier M
  challenge register --name Ana --exercise Rowing --target 1200 --unit km`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tier == "" && !cmd.Flags().Changed("target") {
				return errors.New("either --tier or --target is required")
			}

			return withApp(cmd.Context(), func(a *app.App) error {
				var (
					goal *model.Goal
					err  error
				)

				if tier != "" {
					t, parseErr := catalog.ParseTier(tier)
					if parseErr != nil {
						return parseErr
					}
					goal, err = a.GoalService.RegisterTier(cmd.Context(), name, exercise, t)
				} else {
					goal, err = a.GoalService.Register(cmd.Context(), service.Registration{
						Name:     name,
						Exercise: exercise,
						Target:   target,
						Unit:     unit,
					})
				}
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "registered %s: %g %s per year (%g per month)\n",
					goal.Exercise, goal.Target, goal.Unit, goal.MonthlyTarget())
				return nil
			})
		},
	}

	registerCmd.Flags().StringVar(&name, "name", "", "Participant name")
	registerCmd.Flags().StringVar(&exercise, "exercise", "", "Exercise name")
	registerCmd.Flags().StringVar(&tier, "tier", "", "Catalog tier (S, M, L, XL)")
	registerCmd.Flags().Float64Var(&target, "target", 0, "Annual target, used without --tier")
	registerCmd.Flags().StringVar(&unit, "unit", "", "Unit, used without --tier")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("exercise")
	registerCmd.MarkFlagsMutuallyExclusive("tier", "target")
	registerCmd.MarkFlagsMutuallyExclusive("tier", "unit")

	return registerCmd
}
