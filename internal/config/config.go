package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	Port    string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Participant selection cookie
	SessionSecret string
	SessionExpiry time.Duration

	// Challenge
	CatalogPath           string // Optional: YAML file overriding the embedded catalog
	Timezone              string // Location used for "today" and the month window
	Locale                string // BCP 47 tag used to order participant names
	GoalUniquePerExercise bool   // Reject a second goal for the same user and exercise

	// Rate limiting for register/log endpoints
	RateLimitWrites int
	RateLimitWindow time.Duration
	TrustProxy      bool // Key clients by X-Forwarded-For/X-Real-IP set by a reverse proxy

	// Logging
	LogFile       string // Optional: rotated log file in addition to stdout
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int

	// Observability (optional)
	SentryDSN string

	// Storage (optional, S3-compatible) for export archives
	S3Region        string
	S3Bucket        string
	S3AccessKey     string
	S3SecretKey     string
	S3Endpoint      string        // Optional: for S3-compatible services (MinIO, R2, etc.)
	S3PresignExpiry time.Duration // Expiry for archive download links
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "The Challenge"),
		AppEnv:  envString("APP_ENV", "development"),
		Port:    envString("PORT", "8090"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/challenge.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		// Participant cookie
		SessionSecret: envString("SESSION_SECRET", ""),
		SessionExpiry: envDuration("SESSION_EXPIRY", 365*24*time.Hour),

		// Challenge
		CatalogPath:           envString("CATALOG_PATH", ""),
		Timezone:              envString("CHALLENGE_TIMEZONE", "Local"),
		Locale:                envString("CHALLENGE_LOCALE", "de"),
		GoalUniquePerExercise: envBool("GOAL_UNIQUE_PER_EXERCISE", false),

		// Rate limiting
		RateLimitWrites: envInt("RATE_LIMIT_WRITES", 30),
		RateLimitWindow: envDuration("RATE_LIMIT_WINDOW", time.Minute),
		TrustProxy:      envBool("TRUST_PROXY", false),

		// Logging
		LogFile:       envString("LOG_FILE", ""),
		LogMaxSizeMB:  envInt("LOG_MAX_SIZE_MB", 100),
		LogMaxBackups: envInt("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: envInt("LOG_MAX_AGE_DAYS", 30),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),

		// Storage
		S3Region:        envString("S3_REGION", "us-east-1"),
		S3Bucket:        envString("S3_BUCKET", ""),
		S3AccessKey:     envString("S3_ACCESS_KEY", ""),
		S3SecretKey:     envString("S3_SECRET_KEY", ""),
		S3Endpoint:      envString("S3_ENDPOINT", ""),
		S3PresignExpiry: envDuration("S3_PRESIGN_EXPIRY", 1*time.Hour),
	}

	if cfg.IsProduction() {
		validateProduction(cfg)
	} else if cfg.SessionSecret == "" {
		cfg.SessionSecret = "development-only-secret"
	}

	return cfg
}

// validateProduction ensures secrets are configured for production deployments.
func validateProduction(cfg *Config) {
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = envRequired("SESSION_SECRET")
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// StorageEnabled reports whether an S3 bucket is configured for export archives.
func (c *Config) StorageEnabled() bool {
	return c.S3Bucket != ""
}

// Location resolves Timezone, falling back to time.Local for unknown names.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		slog.Warn("config invalid timezone, using local", "timezone", c.Timezone, "error", err)
		return time.Local
	}
	return loc
}

// Sanitized returns a copy of the config with only public/safe fields.
// Safe to expose in ctx and client-facing responses.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:               c.AppName,
		AppEnv:                c.AppEnv,
		Port:                  c.Port,
		Timezone:              c.Timezone,
		GoalUniquePerExercise: c.GoalUniquePerExercise,
		S3Bucket:              c.S3Bucket,
	}
}
