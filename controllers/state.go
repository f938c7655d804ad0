// Package controllers holds one controller per screen. Controllers own the
// screen's state, call the fetchers and decide what the user sees.
package controllers

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"admindash/apiclient"
	"admindash/session"
)

// Phase is the authentication-gated lifecycle of a screen.
type Phase int

const (
	PhaseUnauthenticated Phase = iota
	PhaseLoading
	PhaseReady
	PhaseError
	PhaseRedirect // terminal: send the user to the login screen
)

func (p Phase) String() string {
	switch p {
	case PhaseUnauthenticated:
		return "unauthenticated"
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseError:
		return "error"
	case PhaseRedirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// ViewState is the data a screen renders plus where it is in its lifecycle.
// Every fetch is stamped with a generation; only the latest one may land.
type ViewState[T any] struct {
	mu         sync.Mutex
	phase      Phase
	data       T
	message    string
	err        error
	generation uint64
}

func NewViewState[T any]() *ViewState[T] {
	return &ViewState[T]{phase: PhaseUnauthenticated}
}

func (s *ViewState[T]) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Data is the last successfully loaded value, or the zero value.
func (s *ViewState[T]) Data() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

// Message is the user-facing error text in PhaseError.
func (s *ViewState[T]) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

func (s *ViewState[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *ViewState[T]) Loading() bool    { return s.Phase() == PhaseLoading }
func (s *ViewState[T]) Ready() bool      { return s.Phase() == PhaseReady }
func (s *ViewState[T]) Failed() bool     { return s.Phase() == PhaseError }
func (s *ViewState[T]) Redirected() bool { return s.Phase() == PhaseRedirect }

// Begin enters PhaseLoading and returns the generation of the new fetch.
func (s *ViewState[T]) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.phase = PhaseLoading
	s.message = ""
	s.err = nil
	return s.generation
}

// Resolve lands the result of fetch generation gen. Results from superseded
// fetches are dropped and Resolve reports false.
func (s *ViewState[T]) Resolve(sess *session.Session, gen uint64, subject string, data T, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation || s.phase == PhaseRedirect {
		zap.S().Debugw("dropping stale response", "subject", subject, "generation", gen, "latest", s.generation)
		return false
	}

	var zero T
	switch {
	case err == nil:
		s.phase = PhaseReady
		s.data = data
	case apiclient.IsUnauthorized(err):
		clearSession(sess)
		s.phase = PhaseRedirect
		s.data = zero
		s.err = err
	default:
		s.phase = PhaseError
		s.data = zero
		s.err = err
		s.message = ErrorMessage(err, subject)
	}
	return true
}

// Redirect abandons the screen for the login page and drops any data.
func (s *ViewState[T]) Redirect() {
	s.redirect(nil)
}

func (s *ViewState[T]) redirect(cause error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	s.generation++
	s.phase = PhaseRedirect
	s.data = zero
	s.err = cause
}

// Expired reports a redirect caused by the backend rejecting the token, as
// opposed to there being no token at all.
func (s *ViewState[T]) Expired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase == PhaseRedirect && apiclient.IsUnauthorized(s.err)
}

// Load runs the authentication gate: no token redirects without a request,
// otherwise fetch runs and its result is resolved.
func (s *ViewState[T]) Load(ctx context.Context, sess *session.Session, subject string, fetch func(context.Context) (T, error)) Phase {
	if !sess.Authenticated() {
		s.Redirect()
		return PhaseRedirect
	}
	gen := s.Begin()
	data, err := fetch(ctx)
	s.Resolve(sess, gen, subject, data, err)
	return s.Phase()
}

func clearSession(sess *session.Session) {
	if err := sess.Clear(); err != nil {
		zap.S().Errorw("clearing session failed", "error", err)
	}
}

// mutationFailed applies the shared policy for a failed write: 401 clears the
// session and redirects. It reports whether the caller must redirect.
func mutationFailed[T any](sess *session.Session, state *ViewState[T], err error) bool {
	if apiclient.IsUnauthorized(err) {
		clearSession(sess)
		state.redirect(err)
		return true
	}
	return false
}
