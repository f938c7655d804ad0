package handlers

import (
	"net/http"
	"testing"

	"admindash/apiclient"
	"admindash/middleware"
	"admindash/session"
	"admindash/testutil"
)

const testSecret = "handlers-test-secret-0123456789ab"

func newTestHandler(t *testing.T) (*Handler, *testutil.Backend) {
	t.Helper()
	backend := testutil.NewBackend(t)
	client, err := apiclient.New(backend.URL(), nil)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	h, err := New(client)
	if err != nil {
		t.Fatalf("Failed to create handler: %v", err)
	}
	return h, backend
}

// withSession runs fn behind the session middleware, as the server does.
func withSession(fn http.HandlerFunc) http.Handler {
	return middleware.SessionMiddleware(session.NewCookieStore(testSecret))(fn)
}
