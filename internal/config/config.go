// Package config loads the editor's settings from the environment
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/grimdank-editor/internal/errors"
)

// Config holds everything the CLI needs to reach the backend and the
// draft store
type Config struct {
	BackendURL     string        `env:"GRIMDANK_BACKEND_URL"     envDefault:"http://localhost:8080/api/v1"`
	RequestTimeout time.Duration `env:"GRIMDANK_REQUEST_TIMEOUT" envDefault:"10s"`

	RedisAddrs    []string `env:"GRIMDANK_REDIS_ADDRS"    envSeparator:"," envDefault:"localhost:6379"`
	RedisPassword string   `env:"GRIMDANK_REDIS_PASSWORD"`
	RedisDB       int      `env:"GRIMDANK_REDIS_DB"       envDefault:"0"`
	RedisTLS      bool     `env:"GRIMDANK_REDIS_TLS"`

	DraftTTL time.Duration `env:"GRIMDANK_DRAFT_TTL" envDefault:"24h"`

	SelectorDebounce time.Duration `env:"GRIMDANK_SELECTOR_DEBOUNCE"  envDefault:"300ms"`
	PageSize         int           `env:"GRIMDANK_PAGE_SIZE"          envDefault:"10"`
	RosterFetches    int           `env:"GRIMDANK_ROSTER_CONCURRENCY" envDefault:"4"`

	LogLevel string `env:"GRIMDANK_LOG_LEVEL" envDefault:"info"`
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Load parses the process environment
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given variables instead of the process environment
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("BackendURL", c.BackendURL, vb)
	if c.BackendURL != "" && !strings.HasPrefix(c.BackendURL, "http://") && !strings.HasPrefix(c.BackendURL, "https://") {
		vb.InvalidField("BackendURL", "must be an http or https URL")
	}
	errors.ValidatePositive("RequestTimeout", int64(c.RequestTimeout), vb)
	if len(c.RedisAddrs) == 0 {
		vb.RequiredField("RedisAddrs")
	}
	errors.ValidateRange("RedisDB", c.RedisDB, 0, 15, vb)
	errors.ValidatePositive("DraftTTL", int64(c.DraftTTL), vb)
	errors.ValidatePositive("SelectorDebounce", int64(c.SelectorDebounce), vb)
	errors.ValidateRange("PageSize", c.PageSize, 1, 100, vb)
	errors.ValidatePositive("RosterFetches", int64(c.RosterFetches), vb)
	errors.ValidateEnum("LogLevel", strings.ToLower(c.LogLevel), logLevels, vb)
	return vb.Build()
}

// SlogLevel returns the configured log level
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
