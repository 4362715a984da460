package middleware

import (
	"net/http"

	"github.com/templui/challenge/internal/ctxkeys"
	"github.com/templui/challenge/internal/service"
)

// Participant reads the participant cookie and adds the selected name to the
// context. A cookie that fails verification is cleared.
func Participant(sessions *service.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			name, err := sessions.Participant(r)
			if err != nil {
				sessions.ClearCookie(w)
				next.ServeHTTP(w, r)
				return
			}
			if name == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxkeys.WithParticipant(r.Context(), name)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
