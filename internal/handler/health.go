package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/templui/challenge/internal/ctxkeys"
)

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{
		db: db,
	}
}

// Health reports database reachability. App name and environment come from
// the config the Config middleware placed on the request.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	state := "ok"
	if err := h.db.PingContext(ctx); err != nil {
		slog.Error("health check failed", "error", err)
		status = http.StatusServiceUnavailable
		state = "unavailable"
	}

	body := map[string]string{"status": state}
	if cfg := ctxkeys.Config(r.Context()); cfg != nil {
		body["app"] = cfg.AppName
		body["env"] = cfg.AppEnv
	}

	writeJSON(w, status, body)
}
