package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/templui/challenge/internal/catalog"
	"github.com/templui/challenge/internal/config"
	"github.com/templui/challenge/internal/db"
	"github.com/templui/challenge/internal/repository"
	"github.com/templui/challenge/internal/service"
	"github.com/templui/challenge/internal/storage"
)

type App struct {
	Cfg                *config.Config
	DB                 *sqlx.DB
	Catalog            *catalog.Catalog
	UserService        *service.UserService
	GoalService        *service.GoalService
	AchievementService *service.AchievementService
	DashboardService   *service.DashboardService
	ExportService      *service.ExportService
	SessionService     *service.SessionService
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Run database migrations
	err = db.RunMigrations(ctx, database.DB, cfg.DBDriver)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Catalog
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	// Storage (optional)
	var archiveStorage storage.Storage
	if cfg.StorageEnabled() {
		s3Storage, err := storage.New(ctx, cfg)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		archiveStorage = s3Storage
	} else {
		slog.Info("export archive disabled, S3_BUCKET not set")
	}

	return Wire(cfg, database, cat, archiveStorage), nil
}

// Wire builds repositories and services on an open, migrated database.
// archiveStorage may be nil.
func Wire(cfg *config.Config, database *sqlx.DB, cat *catalog.Catalog, archiveStorage storage.Storage) *App {
	// Repositories
	userRepository := repository.NewUserRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	achievementRepository := repository.NewAchievementRepository(database)
	rosterRepository := repository.NewRosterRepository(database)

	// Services
	location := cfg.Location()
	order := service.NewNameOrder(cfg.Locale)

	userService := service.NewUserService(userRepository, rosterRepository, order)
	goalService := service.NewGoalService(userRepository, goalRepository, cat, cfg.GoalUniquePerExercise)
	achievementService := service.NewAchievementService(userRepository, achievementRepository, location)
	dashboardService := service.NewDashboardService(rosterRepository, order, location)
	exportService := service.NewExportService(rosterRepository, order, archiveStorage)
	sessionService := service.NewSessionService(cfg.SessionSecret, cfg.SessionExpiry, cfg.IsProduction())

	return &App{
		Cfg:                cfg,
		DB:                 database,
		Catalog:            cat,
		UserService:        userService,
		GoalService:        goalService,
		AchievementService: achievementService,
		DashboardService:   dashboardService,
		ExportService:      exportService,
		SessionService:     sessionService,
	}
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
