package apiclient

import (
	"errors"
	"fmt"
	"testing"
)

func TestDetail(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		expected string
	}{
		{"detail key", `{"detail":"No active account found"}`, "No active account found"},
		{"json string", `"plain message"`, "plain message"},
		{"plain text", "Internal Server Error\n", "Internal Server Error"},
		{"field errors only", `{"email":["Enter a valid email."]}`, ""},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := &Error{Kind: KindServerRejected, Body: []byte(tc.body)}
			if got := e.Detail(); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestFieldMessages(t *testing.T) {
	e := &Error{
		Kind: KindServerRejected,
		Body: []byte(`{"items":[{"quantity":["Ensure this value is greater than 0."]}],"notes":"too long"}`),
	}
	expected := "items: Ensure this value is greater than 0.\nnotes: too long"
	if got := e.FieldMessages(); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestFieldMessagesJoinsListsWithCommas(t *testing.T) {
	e := &Error{
		Kind: KindServerRejected,
		Body: []byte(`{"password":["This password is too short.","This password is too common."]}`),
	}
	expected := "password: This password is too short.,This password is too common."
	if got := e.FieldMessages(); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestFlatten(t *testing.T) {
	e := &Error{
		Kind: KindServerRejected,
		Body: []byte(`{"username":["A user with that username already exists."],"email":["Enter a valid email."]}`),
	}
	expected := "Enter a valid email. A user with that username already exists."
	if got := e.Flatten(); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestValidationErrorMessages(t *testing.T) {
	err := ValidationError(map[string]string{"quantity": "must be at least 1", "product": "is required"})
	if err.Kind != KindValidationFailed {
		t.Errorf("Expected KindValidationFailed, got %v", err.Kind)
	}
	expected := "product: is required\nquantity: must be at least 1"
	if got := err.FieldMessages(); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestKindOfWrapped(t *testing.T) {
	wrapped := fmt.Errorf("loading products: %w", &Error{Kind: KindForbidden, Status: 403})
	if KindOf(wrapped) != KindForbidden {
		t.Errorf("Expected KindForbidden, got %v", KindOf(wrapped))
	}
	if KindOf(errors.New("other")) != KindUnknown {
		t.Error("Expected KindUnknown for a plain error")
	}
	if IsUnauthorized(wrapped) {
		t.Error("Expected forbidden not to count as unauthorized")
	}
}
