package handler

import (
	"net/http"

	"github.com/templui/challenge/internal/ctxkeys"
	"github.com/templui/challenge/internal/progress"
	"github.com/templui/challenge/internal/service"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Dashboard renders the report for ?mode=year|month. The selected
// participant is ?user= or, if absent, the participant cookie.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	selected := query.Get("user")
	if selected == "" {
		selected = ctxkeys.Participant(r.Context())
	}

	dashboard, err := h.dashboardService.Dashboard(r.Context(), selected, progress.ParsePeriod(query.Get("mode")))
	if err != nil {
		writeServiceError(w, r, err, "Failed to load dashboard")
		return
	}

	writeJSON(w, http.StatusOK, dashboard)
}
