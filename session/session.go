// Package session keeps the bearer token between requests. A Session wraps
// one Storage under a fixed key; the storage decides where the token lives.
package session

import (
	"go.uber.org/zap"
)

// TokenKey is the storage key holding the bearer token.
const TokenKey = "token"

// Storage is a small persistent string map.
type Storage interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// Session is the explicit session context passed to controllers. It has no
// notion of expiry: a token is valid until the backend says otherwise.
type Session struct {
	store Storage
}

func New(store Storage) *Session {
	return &Session{store: store}
}

func (s *Session) SetToken(token string) error {
	return s.store.Set(TokenKey, token)
}

// Token returns the stored token. Unreadable storage counts as no token.
func (s *Session) Token() (string, bool) {
	token, ok, err := s.store.Get(TokenKey)
	if err != nil {
		zap.S().Warnw("reading session token failed", "error", err)
		return "", false
	}
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

func (s *Session) Clear() error {
	return s.store.Delete(TokenKey)
}

func (s *Session) Authenticated() bool {
	_, ok := s.Token()
	return ok
}
