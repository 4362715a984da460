package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/templui/challenge/internal/ctxkeys"
	"github.com/templui/challenge/internal/service"
)

type ParticipantHandler struct {
	sessionService *service.SessionService
	userService    *service.UserService
}

func NewParticipantHandler(sessionService *service.SessionService, userService *service.UserService) *ParticipantHandler {
	return &ParticipantHandler{
		sessionService: sessionService,
		userService:    userService,
	}
}

type participantRequest struct {
	Name string `json:"name"`
}

func (h *ParticipantHandler) Current(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"participant": ctxkeys.Participant(r.Context())})
}

// Select remembers name as the current participant. The name must belong to
// a registered user or be the pacer.
func (h *ParticipantHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req participantRequest
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		writeError(w, http.StatusBadRequest, errors.New("name is required"))
		return
	}

	if name != service.PacerName {
		user, err := h.userService.ByName(r.Context(), name)
		if err != nil {
			writeServiceError(w, r, err, "Failed to select participant")
			return
		}
		name = user.Name
	}

	if err := h.sessionService.SetCookie(w, name); err != nil {
		writeServiceError(w, r, err, "Failed to select participant")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"participant": name})
}

func (h *ParticipantHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.sessionService.ClearCookie(w)
	w.WriteHeader(http.StatusNoContent)
}
