package ctxkeys

import (
	"context"

	"github.com/templui/challenge/internal/config"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	ConfigKey      contextKey = "config"
	ParticipantKey contextKey = "participant"
)

func Config(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(ConfigKey).(*config.Config)
	return cfg
}

func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, ConfigKey, cfg)
}

// Participant returns the selected participant name, "" if none.
func Participant(ctx context.Context) string {
	name, _ := ctx.Value(ParticipantKey).(string)
	return name
}

func WithParticipant(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, ParticipantKey, name)
}
