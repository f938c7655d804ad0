package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultTimeout = 15 * time.Second

// TokenSource yields the current bearer token, if any.
type TokenSource interface {
	Token() (string, bool)
}

// Client talks to the REST backend. A Client is safe for concurrent use;
// WithTokens returns a copy bound to one session.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	tokens     TokenSource
}

// Request describes one call. Path is relative to the base URL.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   interface{}
	Auth   bool
}

// New creates a client for the backend at baseURL. A nil httpClient gets a
// default one with a 15 second timeout.
func New(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API base URL %q: scheme and host are required", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{baseURL: u, httpClient: httpClient}, nil
}

// WithTokens returns a copy of the client that authenticates with tokens.
func (c *Client) WithTokens(tokens TokenSource) *Client {
	clone := *c
	clone.tokens = tokens
	return &clone
}

// BaseURL returns the backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) token() (string, bool) {
	if c.tokens == nil {
		return "", false
	}
	return c.tokens.Token()
}

// Do issues the request and decodes a 2xx JSON response into out (which may be nil).
// Failures are returned as *Error.
func (c *Client) Do(ctx context.Context, req Request, out interface{}) error {
	token, hasToken := c.token()
	if req.Auth && !hasToken {
		return &Error{Kind: KindUnauthorized, Method: req.Method, Path: req.Path}
	}

	endpoint := c.resolve(req.Path, req.Query)

	var body io.Reader
	if req.Body != nil {
		buf, err := json.Marshal(req.Body)
		if err != nil {
			return fmt.Errorf("error encoding request body: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, endpoint, body)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	requestID := uuid.NewString()
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if hasToken {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		zap.S().Warnw("backend request failed",
			"method", req.Method, "path", req.Path, "request_id", requestID, "error", err)
		return &Error{Kind: KindNetworkUnavailable, Method: req.Method, Path: req.Path, Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNetworkUnavailable, Method: req.Method, Path: req.Path, Err: err}
	}

	zap.S().Debugw("backend request",
		"method", req.Method, "path", req.Path, "status", resp.StatusCode,
		"request_id", requestID, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{
			Kind:   kindForStatus(resp.StatusCode),
			Status: resp.StatusCode,
			Method: req.Method,
			Path:   req.Path,
			Body:   payload,
		}
	}

	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return &Error{
			Kind:   KindServerRejected,
			Status: resp.StatusCode,
			Method: req.Method,
			Path:   req.Path,
			Body:   payload,
			Err:    fmt.Errorf("error decoding response: %w", err),
		}
	}
	return nil
}

func (c *Client) resolve(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(c.baseURL.Path, "/") + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}
