package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/templui/challenge/cmd/challenge/cmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "challenge",
		Short:        "Manage the fitness challenge from the command line",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cmd.MigrateCmd())
	rootCmd.AddCommand(cmd.CatalogCmd())
	rootCmd.AddCommand(cmd.RegisterCmd())
	rootCmd.AddCommand(cmd.LogCmd())
	rootCmd.AddCommand(cmd.StatsCmd())
	rootCmd.AddCommand(cmd.ExportCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
