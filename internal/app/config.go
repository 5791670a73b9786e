package app

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8000"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`
	AppRateLimit      int           `envconfig:"APP_RATE_LIMIT" default:"600"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	SQLitePath string `envconfig:"SQLITE_PATH" default:"shop.db"`

	// SearchPGDSN enables /search/products when set.
	SearchPGDSN      string `envconfig:"SEARCH_PG_DSN"`
	SearchPGMaxConns int32  `envconfig:"SEARCH_PG_MAX_CONNS" default:"4"`
}

// LoadConfig reads configuration from environment variables. Files listed
// in envFiles are loaded first when they exist; variables already set in
// the environment win.
func LoadConfig(envFiles ...string) (*Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.SQLitePath) == "" {
		return errors.New("sqlite path must be provided")
	}
	switch c.LogFormat {
	case "pretty", "json":
	default:
		return fmt.Errorf("unsupported log format %q", c.LogFormat)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.AppRateLimit < 0 {
		return errors.New("rate limit must not be negative")
	}
	if c.SearchPGMaxConns < 0 {
		return errors.New("search max conns must not be negative")
	}
	return nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

// SearchEnabled reports whether a PostgreSQL search store is configured.
func (c *Config) SearchEnabled() bool {
	return c != nil && c.SearchPGDSN != ""
}

func parseLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return 0, fmt.Errorf("unsupported log level %q", raw)
	}
	return level, nil
}
