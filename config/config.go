package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type LogConfig struct {
	Mode string // "development" or "production"
	File string // rotated log file, empty for stdout only
}

type Config struct {
	Env           string
	APIURL        string
	Port          string
	SessionSecret string
	EncryptionKey string
	StateDB       string
	HTTPTimeout   time.Duration
	Location      string
	CORSOrigins   []string
	Log           LogConfig
}

// Addr is the listen address for the web dashboard.
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// New returns a viper instance with every key bound to its environment
// variable and defaulted.
func New() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")
	v.SetDefault("API_URL", "http://localhost:8000")
	v.SetDefault("PORT", "8080")
	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("ENCRYPTION_KEY", "")
	v.SetDefault("STATE_DB", defaultStateDB())
	v.SetDefault("HTTP_TIMEOUT", "15s")
	v.SetDefault("DATE_LOCATION", "Local")
	v.SetDefault("LOG_MODE", "development")
	v.SetDefault("LOG_FILE", "")
	return v
}

// Load reads an optional .env file and the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromViper(New())
}

// FromViper builds a Config from v, validating the values.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Env:           v.GetString("APP_ENV"),
		APIURL:        strings.TrimRight(v.GetString("API_URL"), "/"),
		Port:          v.GetString("PORT"),
		SessionSecret: v.GetString("SESSION_SECRET"),
		EncryptionKey: v.GetString("ENCRYPTION_KEY"),
		StateDB:       v.GetString("STATE_DB"),
		HTTPTimeout:   v.GetDuration("HTTP_TIMEOUT"),
		Location:      v.GetString("DATE_LOCATION"),
		CORSOrigins:   splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		Log: LogConfig{
			Mode: v.GetString("LOG_MODE"),
			File: v.GetString("LOG_FILE"),
		},
	}

	if cfg.APIURL == "" {
		return cfg, errors.New("API_URL must not be empty")
	}
	if cfg.HTTPTimeout <= 0 {
		return cfg, errors.Errorf("HTTP_TIMEOUT must be positive, got %q", v.GetString("HTTP_TIMEOUT"))
	}
	if cfg.Log.Mode != "development" && cfg.Log.Mode != "production" {
		return cfg, errors.Errorf("LOG_MODE must be development or production, got %q", cfg.Log.Mode)
	}
	return cfg, nil
}

// Development reports whether the process runs outside production.
func (c Config) Development() bool {
	return c.Env == "" || c.Env == "development" || c.Env == "dev"
}

// ApplyLocation sets time.Local to the configured zone so dates render in
// the operator's calendar.
func (c Config) ApplyLocation() error {
	if c.Location == "" || c.Location == "Local" {
		return nil
	}
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return errors.Wrapf(err, "invalid DATE_LOCATION %q", c.Location)
	}
	time.Local = loc
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func defaultStateDB() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "./admindash.db"
	}
	return filepath.Join(dir, "admindash", "state.db")
}
