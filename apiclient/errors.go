package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Kind classifies a failed request. Every screen maps each kind to its own message.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindNetworkUnavailable
	KindServerRejected
	KindValidationFailed
)

func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindNetworkUnavailable:
		return "network_unavailable"
	case KindServerRejected:
		return "server_rejected"
	case KindValidationFailed:
		return "validation_failed"
	default:
		return "unknown"
	}
}

// Error is returned by the client for every failed request.
type Error struct {
	Kind   Kind
	Status int               // 0 for transport and validation failures
	Method string            // empty for validation failures
	Path   string
	Body   []byte            // backend payload, verbatim
	Fields map[string]string // ValidationFailed only
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNetworkUnavailable:
		return fmt.Sprintf("%s %s: network unavailable: %v", e.Method, e.Path, e.Err)
	case KindValidationFailed:
		return "validation failed: " + e.FieldMessages()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %s (%d): %v", e.Method, e.Path, e.Kind, e.Status, e.Err)
	}
	return fmt.Sprintf("%s %s: %s (%d)", e.Method, e.Path, e.Kind, e.Status)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of err, or KindUnknown when err is not an *Error.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

// AsError extracts the *Error from err.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

// IsUnauthorized reports whether err requires clearing the session.
func IsUnauthorized(err error) bool {
	return KindOf(err) == KindUnauthorized
}

// ValidationError builds a client-side ValidationFailed error.
func ValidationError(fields map[string]string) *Error {
	return &Error{Kind: KindValidationFailed, Fields: fields}
}

func kindForStatus(status int) Kind {
	switch status {
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	default:
		return KindServerRejected
	}
}

// Detail returns the backend's "detail" message, or the body itself when it
// is a bare JSON string or plain text.
func (e *Error) Detail() string {
	if len(e.Body) == 0 {
		return ""
	}
	var asString string
	if json.Unmarshal(e.Body, &asString) == nil {
		return asString
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(e.Body, &payload); err != nil {
		if json.Valid(e.Body) {
			return ""
		}
		return strings.TrimSpace(string(e.Body))
	}
	if raw, ok := payload["detail"]; ok {
		var detail string
		if json.Unmarshal(raw, &detail) == nil {
			return detail
		}
	}
	return ""
}

// FieldMessages renders per-field errors as "field: message" lines sorted by
// field name. Backend payloads like {"items": ["This field is required."]}
// and client-side ValidationFailed fields are both handled.
func (e *Error) FieldMessages() string {
	fields := e.fieldMap()
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %s", k, fields[k].join(",")))
	}
	return strings.Join(lines, "\n")
}

// Flatten joins every message in the payload with spaces, in field order.
func (e *Error) Flatten() string {
	fields := e.fieldMap()
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fields[k].join(" "))
	}
	return strings.Join(parts, " ")
}

// messages holds the leaf strings found under one field.
type messages []string

func (m messages) join(sep string) string {
	return strings.Join(m, sep)
}

func (e *Error) fieldMap() map[string]messages {
	if e.Kind == KindValidationFailed {
		fields := make(map[string]messages, len(e.Fields))
		for k, v := range e.Fields {
			fields[k] = messages{v}
		}
		return fields
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(e.Body, &payload); err != nil {
		return map[string]messages{}
	}
	fields := make(map[string]messages, len(payload))
	for k, raw := range payload {
		fields[k] = flattenJSON(raw)
	}
	return fields
}

func flattenJSON(raw json.RawMessage) messages {
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return messages{s}
	}
	var list []json.RawMessage
	if json.Unmarshal(raw, &list) == nil {
		var out messages
		for _, item := range list {
			out = append(out, flattenJSON(item)...)
		}
		return out
	}
	var obj map[string]json.RawMessage
	if json.Unmarshal(raw, &obj) == nil {
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var out messages
		for _, k := range keys {
			out = append(out, flattenJSON(obj[k])...)
		}
		return out
	}
	return messages{strings.TrimSpace(string(raw))}
}
