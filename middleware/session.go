package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"

	"admindash/session"
)

// Define context keys
type contextKey string

const (
	SessionKey contextKey = "session"
	FlashKey   contextKey = "flash"
)

// Flasher queues and pops one-shot messages.
type Flasher interface {
	AddFlash(message string) error
	Flashes() []string
}

// SessionMiddleware attaches a *session.Session to every request. Requests
// carrying "Authorization: Bearer <token>" get a request-scoped session
// holding that token; everyone else gets the signed session cookie.
func SessionMiddleware(store sessions.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var (
				storage session.Storage
				flasher Flasher
			)

			if token := extractToken(r.Header.Get("Authorization")); token != "" {
				storage = session.NewTokenStorage(token)
				flasher = discardFlashes{}
			} else {
				cookie := session.NewCookieStorage(store, w, r)
				storage = cookie
				flasher = cookie
			}

			ctx := context.WithValue(r.Context(), SessionKey, session.New(storage))
			ctx = context.WithValue(ctx, FlashKey, flasher)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken gets the token from the Authorization header
func extractToken(authHeader string) string {
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, "Bearer ")
	if len(parts) != 2 {
		return ""
	}

	return parts[1]
}

// SessionFromContext returns the request's session. Outside the middleware
// it returns an empty in-memory session.
func SessionFromContext(r *http.Request) *session.Session {
	sess, ok := r.Context().Value(SessionKey).(*session.Session)
	if !ok {
		return session.New(session.NewMemoryStorage())
	}
	return sess
}

func FlasherFromContext(r *http.Request) Flasher {
	f, ok := r.Context().Value(FlashKey).(Flasher)
	if !ok {
		return discardFlashes{}
	}
	return f
}

type discardFlashes struct{}

func (discardFlashes) AddFlash(string) error { return nil }
func (discardFlashes) Flashes() []string     { return nil }
