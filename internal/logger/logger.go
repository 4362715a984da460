package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
	"gopkg.in/lumberjack.v2"
)

// Options controls where log records go.
type Options struct {
	Dev        bool
	Output     io.Writer // console sink, defaults to os.Stdout
	SentryDSN  string
	File       string // rotated JSON log file, empty to disable
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Init installs the default slog logger based on environment
// Development: Text format with Debug level
// Production: JSON format with Info level
// Optionally writes a rotated log file and sends errors to Sentry
func Init(opts Options) {
	var level slog.Level
	var handlers []slog.Handler

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	// Base console handler (always enabled)
	if opts.Dev {
		level = slog.LevelDebug
		handlers = append(handlers, slog.NewTextHandler(out, &slog.HandlerOptions{
			Level: level,
		}))
	} else {
		level = slog.LevelInfo
		handlers = append(handlers, slog.NewJSONHandler(out, &slog.HandlerOptions{
			Level: level,
		}))
	}

	if opts.File != "" {
		handlers = append(handlers, slog.NewJSONHandler(&lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			LocalTime:  true,
		}, &slog.HandlerOptions{Level: level}))
	}

	// Optional Sentry handler (sends errors only)
	if opts.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              opts.SentryDSN,
			TracesSampleRate: 1.0,
		})
		if err == nil {
			handlers = append(handlers, slogsentry.Option{
				Level: slog.LevelError,
			}.NewSentryHandler())
		}
	}

	slog.SetDefault(slog.New(handler(handlers)))
}

// handler uses a fanout when there is more than one sink
func handler(handlers []slog.Handler) slog.Handler {
	if len(handlers) > 1 {
		return slogmulti.Fanout(handlers...)
	}
	return handlers[0]
}
