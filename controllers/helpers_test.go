package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"admindash/apiclient"
	"admindash/services"
	"admindash/session"
	"admindash/testutil"
)

const testEmail = "admin@example.com"

func servicesFor(t *testing.T, baseURL string, sess *session.Session) *services.Services {
	t.Helper()
	client, err := apiclient.New(baseURL, nil)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return services.New(client.WithTokens(sess))
}

// newLoggedIn returns a backend plus a session already holding a valid token.
func newLoggedIn(t *testing.T) (*testutil.Backend, *session.Session, *services.Services) {
	t.Helper()
	backend := testutil.NewBackend(t)
	sess := session.New(session.NewMemoryStorage())
	if err := sess.SetToken(backend.IssueToken(testEmail)); err != nil {
		t.Fatalf("Failed to store token: %v", err)
	}
	return backend, sess, servicesFor(t, backend.URL(), sess)
}

func newLoggedOut(t *testing.T) (*testutil.Backend, *session.Session, *services.Services) {
	t.Helper()
	backend := testutil.NewBackend(t)
	sess := session.New(session.NewMemoryStorage())
	return backend, sess, servicesFor(t, backend.URL(), sess)
}

// deadURL returns the address of a server that is no longer listening.
func deadURL() string {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()
	return url
}
