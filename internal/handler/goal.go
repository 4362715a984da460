package handler

import (
	"errors"
	"net/http"

	"github.com/templui/challenge/internal/catalog"
	"github.com/templui/challenge/internal/service"
)

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

var errTierWithTarget = errors.New("tier cannot be combined with target or unit")

type registerRequest struct {
	Name     string   `json:"name"`
	Exercise string   `json:"exercise"`
	Target   *float64 `json:"target,omitempty"`
	Unit     string   `json:"unit,omitempty"`
	Tier     string   `json:"tier,omitempty"`
}

func (h *GoalHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.goalService.Catalog())
}

// Register accepts either an explicit annual target and unit or a catalog
// tier, never both.
func (h *GoalHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if req.Tier != "" {
		if req.Target != nil || req.Unit != "" {
			writeError(w, http.StatusBadRequest, errTierWithTarget)
			return
		}

		tier, err := catalog.ParseTier(req.Tier)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		goal, err := h.goalService.RegisterTier(r.Context(), req.Name, req.Exercise, tier)
		if err != nil {
			writeServiceError(w, r, err, "Failed to register")
			return
		}

		writeJSON(w, http.StatusCreated, goal)
		return
	}

	var target float64
	if req.Target != nil {
		target = *req.Target
	}

	goal, err := h.goalService.Register(r.Context(), service.Registration{
		Name:     req.Name,
		Exercise: req.Exercise,
		Target:   target,
		Unit:     req.Unit,
	})
	if err != nil {
		writeServiceError(w, r, err, "Failed to register")
		return
	}

	writeJSON(w, http.StatusCreated, goal)
}
