package handler

import (
	"net/http"

	"github.com/templui/challenge/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Users lists every user with goals.
func (h *UserHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.Users(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to load users")
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// Stats lists every user with goals and achievements.
func (h *UserHandler) Stats(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.Stats(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to load stats")
		return
	}

	writeJSON(w, http.StatusOK, users)
}
