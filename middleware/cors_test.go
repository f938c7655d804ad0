package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsAllowedOrigin(t *testing.T) {
	allowedOrigins := []string{
		"https://example.com",
		"http://localhost:5173",
	}

	testCases := []struct {
		name     string
		origin   string
		expected bool
	}{
		{"Allowed origin", "https://example.com", true},
		{"Another allowed origin", "http://localhost:5173", true},
		{"Disallowed origin", "https://evil.com", false},
		{"Empty origin", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := isAllowedOrigin(tc.origin, allowedOrigins)
			if result != tc.expected {
				t.Errorf("Expected %v, got %v for origin %s", tc.expected, result, tc.origin)
			}
		})
	}
}

func TestEnableCORS(t *testing.T) {
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	allowed := []string{"https://shop.example"}

	testCases := []struct {
		name           string
		development    bool
		method         string
		origin         string
		expectedStatus int
		expectedOrigin string
	}{
		{"allowed origin", false, "GET", "https://shop.example", http.StatusTeapot, "https://shop.example"},
		{"preflight", false, "OPTIONS", "https://shop.example", http.StatusOK, "https://shop.example"},
		{"foreign origin in production", false, "GET", "https://evil.example", http.StatusTeapot, "https://shop.example"},
		{"foreign origin in development", true, "GET", "http://localhost:9999", http.StatusTeapot, "http://localhost:9999"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := EnableCORS(allowed, tc.development)(testHandler)
			req := httptest.NewRequest(tc.method, "/dashboard/charts.json", nil)
			req.Header.Set("Origin", tc.origin)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Errorf("Expected status %d, got %d", tc.expectedStatus, rr.Code)
			}
			if got := rr.Header().Get("Access-Control-Allow-Origin"); got != tc.expectedOrigin {
				t.Errorf("Expected origin %q, got %q", tc.expectedOrigin, got)
			}
			if rr.Header().Get("Access-Control-Allow-Methods") == "" {
				t.Error("Expected Access-Control-Allow-Methods header to be set")
			}
		})
	}
}
