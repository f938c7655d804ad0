package config

import (
	"testing"
	"time"
)

func TestFromViperDefaults(t *testing.T) {
	v := New()
	v.Set("API_URL", "http://backend:8000/")

	cfg, err := FromViper(v)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.APIURL != "http://backend:8000" {
		t.Errorf("Expected trailing slash trimmed, got %q", cfg.APIURL)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Expected :8080, got %q", cfg.Addr())
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("Expected 15s timeout, got %v", cfg.HTTPTimeout)
	}
	if cfg.Log.Mode != "development" {
		t.Errorf("Expected development log mode, got %q", cfg.Log.Mode)
	}
	if !cfg.Development() {
		t.Error("Expected development environment by default")
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("Expected 2 default CORS origins, got %v", cfg.CORSOrigins)
	}
}

func TestCORSOriginsList(t *testing.T) {
	v := New()
	v.Set("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	v.Set("APP_ENV", "production")

	cfg, err := FromViper(v)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[0] != "https://a.example" || cfg.CORSOrigins[1] != "https://b.example" {
		t.Errorf("Unexpected origins %v", cfg.CORSOrigins)
	}
	if cfg.Development() {
		t.Error("Expected production environment")
	}
}

func TestFromViperEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("LOG_MODE", "production")

	cfg, err := FromViper(New())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Addr() != ":9090" {
		t.Errorf("Expected :9090, got %q", cfg.Addr())
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Errorf("Expected 3s timeout, got %v", cfg.HTTPTimeout)
	}
	if cfg.Log.Mode != "production" {
		t.Errorf("Expected production log mode, got %q", cfg.Log.Mode)
	}
}

func TestFromViperRejectsInvalid(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{"empty api url", "API_URL", ""},
		{"zero timeout", "HTTP_TIMEOUT", "0s"},
		{"bad log mode", "LOG_MODE", "verbose"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := New()
			v.Set(tc.key, tc.value)
			if _, err := FromViper(v); err == nil {
				t.Errorf("Expected error for %s=%q", tc.key, tc.value)
			}
		})
	}
}

func TestApplyLocation(t *testing.T) {
	original := time.Local
	defer func() { time.Local = original }()

	if err := (Config{Location: "Asia/Jakarta"}).ApplyLocation(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if time.Local.String() != "Asia/Jakarta" {
		t.Errorf("Expected Asia/Jakarta, got %s", time.Local)
	}
	if err := (Config{Location: "Nowhere/City"}).ApplyLocation(); err == nil {
		t.Error("Expected error for unknown location")
	}
}
