package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/templui/challenge/internal/app"
	"github.com/templui/challenge/internal/config"
	"github.com/templui/challenge/internal/logger"
)

// loadConfig reads the environment and routes logs to stderr so command
// output on stdout stays clean.
func loadConfig() *config.Config {
	cfg := config.Load()

	logger.Init(logger.Options{
		Dev:        cfg.IsDevelopment(),
		Output:     os.Stderr,
		SentryDSN:  cfg.SentryDSN,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})

	return cfg
}

// withApp opens the application, runs fn and closes it again.
func withApp(ctx context.Context, fn func(a *app.App) error) error {
	a, err := app.New(ctx, loadConfig())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := a.Close(); closeErr != nil {
			slog.Error("failed to close app", "error", closeErr)
		}
	}()

	return fn(a)
}
