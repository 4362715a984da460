package service

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ParticipantCookie holds the signed name of the current participant.
const ParticipantCookie = "participant"

var ErrInvalidParticipant = errors.New("invalid participant token")

// SessionService remembers which participant a client is looking at. It is
// a selection, not authentication.
type SessionService struct {
	secret       []byte
	expiry       time.Duration
	isProduction bool
	now          func() time.Time
}

func NewSessionService(secret string, expiry time.Duration, isProduction bool) *SessionService {
	return &SessionService{
		secret:       []byte(secret),
		expiry:       expiry,
		isProduction: isProduction,
		now:          time.Now,
	}
}

func (s *SessionService) Sign(name string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   name,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign participant token: %w", err)
	}

	return tokenString, nil
}

// Verify returns the participant name carried by tokenString.
func (s *SessionService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidParticipant, err)
	}

	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidParticipant
	}

	return claims.Subject, nil
}

// Participant reads the current participant from r. It returns "" and no
// error when the cookie is absent, and ErrInvalidParticipant when the cookie
// fails verification.
func (s *SessionService) Participant(r *http.Request) (string, error) {
	cookie, err := r.Cookie(ParticipantCookie)
	if err != nil || cookie.Value == "" {
		return "", nil
	}

	return s.Verify(cookie.Value)
}

func (s *SessionService) SetCookie(w http.ResponseWriter, name string) error {
	token, err := s.Sign(name)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     ParticipantCookie,
		Value:    token,
		Expires:  s.now().Add(s.expiry),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

func (s *SessionService) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     ParticipantCookie,
		Value:    "",
		Expires:  time.Unix(0, 0),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}
