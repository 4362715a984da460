package routes

import (
	"net/http"

	"github.com/templui/challenge/internal/app"
	"github.com/templui/challenge/internal/handler"
	"github.com/templui/challenge/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.DB)
	user := handler.NewUserHandler(app.UserService)
	goal := handler.NewGoalHandler(app.GoalService)
	achievement := handler.NewAchievementHandler(app.AchievementService)
	dashboard := handler.NewDashboardHandler(app.DashboardService)
	participant := handler.NewParticipantHandler(app.SessionService, app.UserService)
	export := handler.NewExportHandler(app.ExportService)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", health.Health)

	// ============================================================================
	// READ ROUTES
	// ============================================================================

	mux.HandleFunc("GET /api/catalog", goal.Catalog)
	mux.HandleFunc("GET /api/users", user.Users)
	mux.HandleFunc("GET /api/stats", user.Stats)
	mux.HandleFunc("GET /api/dashboard", dashboard.Dashboard)
	mux.HandleFunc("GET /api/export", export.Export)

	// ============================================================================
	// WRITE ROUTES (rate limited)
	// ============================================================================

	rateLimiter := middleware.RateLimitWrites(app.Cfg.RateLimitWrites, app.Cfg.RateLimitWindow, app.Cfg.TrustProxy)

	mux.HandleFunc("POST /api/register", rateLimiter(goal.Register))
	mux.HandleFunc("POST /api/achievements", rateLimiter(achievement.Log))
	mux.HandleFunc("POST /api/export/archive", rateLimiter(export.Archive))

	// Participant selection
	mux.HandleFunc("GET /api/participant", participant.Current)
	mux.HandleFunc("PUT /api/participant", participant.Select)
	mux.HandleFunc("DELETE /api/participant", participant.Clear)

	return middleware.Chain(mux,
		middleware.RequestLogging,
		middleware.Config(app.Cfg),
		middleware.Participant(app.SessionService),
	)
}
