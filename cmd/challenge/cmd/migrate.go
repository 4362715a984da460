package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/templui/challenge/internal/db"
)

func MigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd, "up")
		},
	})
	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the latest migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd, "down")
		},
	})
	migrateCmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Print the current schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd, "status")
		},
	})

	return migrateCmd
}

func runMigrate(cmd *cobra.Command, direction string) error {
	cfg := loadConfig()
	ctx := cmd.Context()

	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return err
	}
	defer db.Close(database)

	switch direction {
	case "up":
		err = db.RunMigrations(ctx, database.DB, cfg.DBDriver)
	case "down":
		err = db.MigrateDown(ctx, database.DB, cfg.DBDriver)
	}
	if err != nil {
		return err
	}

	version, err := db.Version(ctx, database.DB, cfg.DBDriver)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", version)
	return nil
}
