package handler

import (
	"net/http"

	"github.com/templui/challenge/internal/service"
)

type AchievementHandler struct {
	achievementService *service.AchievementService
}

func NewAchievementHandler(achievementService *service.AchievementService) *AchievementHandler {
	return &AchievementHandler{
		achievementService: achievementService,
	}
}

type logRequest struct {
	UserName string   `json:"userName"`
	Exercise string   `json:"exercise"`
	Value    *float64 `json:"value"`
	Date     string   `json:"date,omitempty"`
}

func (h *AchievementHandler) Log(w http.ResponseWriter, r *http.Request) {
	var req logRequest
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	achievement, err := h.achievementService.Log(r.Context(), service.Entry{
		UserName: req.UserName,
		Exercise: req.Exercise,
		Value:    req.Value,
		Date:     req.Date,
	})
	if err != nil {
		writeServiceError(w, r, err, "Failed to log achievement")
		return
	}

	writeJSON(w, http.StatusCreated, achievement)
}
