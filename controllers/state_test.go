package controllers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"admindash/apiclient"
	"admindash/models"
	"admindash/session"
)

func TestLoadWithoutTokenRedirects(t *testing.T) {
	backend, sess, svc := newLoggedOut(t)
	list := NewProductList(sess, svc)

	if phase := list.Load(context.Background(), ""); phase != PhaseRedirect {
		t.Errorf("Expected PhaseRedirect, got %v", phase)
	}
	if n := len(backend.Requests()); n != 0 {
		t.Errorf("Expected no requests, got %d", n)
	}
	if list.State.Expired() {
		t.Error("Expected a missing token not to count as an expired session")
	}
}

func TestLoadSuccess(t *testing.T) {
	_, sess, svc := newLoggedIn(t)
	list := NewProductList(sess, svc)

	if phase := list.Load(context.Background(), ""); phase != PhaseReady {
		t.Fatalf("Expected PhaseReady, got %v (%s)", phase, list.State.Message())
	}
	if len(list.State.Data()) != 3 {
		t.Errorf("Expected 3 products, got %d", len(list.State.Data()))
	}
}

func TestUnauthorizedClearsSessionAndData(t *testing.T) {
	backend, sess, svc := newLoggedIn(t)
	list := NewProductList(sess, svc)
	ctx := context.Background()

	if phase := list.Load(ctx, ""); phase != PhaseReady {
		t.Fatalf("Expected PhaseReady, got %v", phase)
	}

	backend.RevokeTokens()
	if phase := list.Load(ctx, "tea"); phase != PhaseRedirect {
		t.Fatalf("Expected PhaseRedirect, got %v", phase)
	}
	if sess.Authenticated() {
		t.Error("Expected token to be cleared")
	}
	if list.State.Data() != nil {
		t.Errorf("Expected no residual data, got %+v", list.State.Data())
	}
	if !list.State.Expired() {
		t.Error("Expected the redirect to be marked as expired")
	}
}

func TestNetworkFailureKeepsToken(t *testing.T) {
	sess := session.New(session.NewMemoryStorage())
	sess.SetToken("abc")
	list := NewProductList(sess, servicesFor(t, deadURL(), sess))

	if phase := list.Load(context.Background(), ""); phase != PhaseError {
		t.Fatalf("Expected PhaseError, got %v", phase)
	}
	if apiclient.KindOf(list.State.Err()) != apiclient.KindNetworkUnavailable {
		t.Errorf("Expected NetworkUnavailable, got %v", list.State.Err())
	}
	if list.State.Message() != msgNetwork {
		t.Errorf("Expected network message, got %q", list.State.Message())
	}
	if !sess.Authenticated() {
		t.Error("Expected token to survive a network failure")
	}
}

func TestForbiddenShowsMessage(t *testing.T) {
	backend, sess, svc := newLoggedIn(t)
	backend.Fail(http.MethodGet, "/api/transactions/", http.StatusForbidden, `{"detail":"nope"}`)
	list := NewTransactionList(sess, svc)

	if phase := list.Load(context.Background(), models.TransactionFilter{}); phase != PhaseError {
		t.Fatalf("Expected PhaseError, got %v", phase)
	}
	if list.State.Message() != msgForbidden {
		t.Errorf("Expected forbidden message, got %q", list.State.Message())
	}
	if !sess.Authenticated() {
		t.Error("Expected token to survive a 403")
	}
}

func TestStaleResponseIsDropped(t *testing.T) {
	sess := session.New(session.NewMemoryStorage())
	sess.SetToken("abc")
	state := NewViewState[string]()

	slow := state.Begin()
	fast := state.Begin()

	if !state.Resolve(sess, fast, "Product", "newest", nil) {
		t.Fatal("Expected latest response to land")
	}
	if state.Resolve(sess, slow, "Product", "stale", nil) {
		t.Error("Expected stale response to be dropped")
	}
	if state.Data() != "newest" {
		t.Errorf("Expected 'newest', got %q", state.Data())
	}
	if state.Phase() != PhaseReady {
		t.Errorf("Expected PhaseReady, got %v", state.Phase())
	}
}

func TestStaleUnauthorizedDoesNotClear(t *testing.T) {
	sess := session.New(session.NewMemoryStorage())
	sess.SetToken("abc")
	state := NewViewState[int]()

	stale := state.Begin()
	latest := state.Begin()
	state.Resolve(sess, latest, "Product", 1, nil)
	state.Resolve(sess, stale, "Product", 0, &apiclient.Error{Kind: apiclient.KindUnauthorized, Status: 401})

	if !sess.Authenticated() {
		t.Error("Expected a dropped response to leave the session alone")
	}
}

func TestErrorMessage(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{"unauthorized", &apiclient.Error{Kind: apiclient.KindUnauthorized}, msgUnauthorized},
		{"forbidden", &apiclient.Error{Kind: apiclient.KindForbidden}, msgForbidden},
		{"not found", &apiclient.Error{Kind: apiclient.KindNotFound}, "Product not found."},
		{"network", &apiclient.Error{Kind: apiclient.KindNetworkUnavailable}, msgNetwork},
		{"rejected with detail", &apiclient.Error{Kind: apiclient.KindServerRejected, Status: 400, Body: []byte(`{"detail":"Bad input"}`)}, "An error occurred: Bad input"},
		{"rejected with fields", &apiclient.Error{Kind: apiclient.KindServerRejected, Status: 400, Body: []byte(`{"name":["Too long."]}`)}, "An error occurred: Too long."},
		{"rejected empty", &apiclient.Error{Kind: apiclient.KindServerRejected, Status: 500}, "An error occurred: 500 Internal Server Error"},
		{"validation", apiclient.ValidationError(map[string]string{"name": "This field is required."}), "name: This field is required."},
		{"plain", errors.New("boom"), "An error occurred: boom"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ErrorMessage(tc.err, "Product"); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}
