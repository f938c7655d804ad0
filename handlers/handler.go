// Package handlers serves the dashboard screens. Each handler builds the
// screen's controller for the request's session and renders its state.
package handlers

import (
	"encoding/json"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"admindash/apiclient"
	"admindash/controllers"
	"admindash/middleware"
	"admindash/services"
	"admindash/session"
)

type Handler struct {
	client *apiclient.Client
	pages  map[string]*template.Template
}

func New(client *apiclient.Client) (*Handler, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, err
	}
	return &Handler{client: client, pages: pages}, nil
}

// scope binds the backend client to the request's session.
func (h *Handler) scope(r *http.Request) (*session.Session, *services.Services) {
	sess := middleware.SessionFromContext(r)
	return sess, services.New(h.client.WithTokens(sess))
}

func flash(r *http.Request, message string) {
	if message == "" {
		return
	}
	if err := middleware.FlasherFromContext(r).AddFlash(message); err != nil {
		zap.S().Warnw("queueing flash failed", "error", err)
	}
}

// toLogin sends the browser to the login screen, explaining why when the
// backend rejected the session.
func toLogin(w http.ResponseWriter, r *http.Request, expired bool) {
	if expired {
		flash(r, controllers.ErrorMessage(&apiclient.Error{Kind: apiclient.KindUnauthorized}, ""))
	}
	http.Redirect(w, r, controllers.LoginPath, http.StatusSeeOther)
}

// redirected finishes the request with a login redirect when the screen's
// gate asked for one.
func redirected[T any](w http.ResponseWriter, r *http.Request, state *controllers.ViewState[T]) bool {
	if !state.Redirected() {
		return false
	}
	toLogin(w, r, state.Expired())
	return true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.S().Warnw("writing JSON response failed", "error", err)
	}
}
