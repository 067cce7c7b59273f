// Package config loads service configuration from an optional YAML file and
// environment variables. Environment variables win over the file, the file
// wins over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "EDZIENNIK_"

type ServiceConfig struct {
	Name    string `koanf:"name"`
	Version string `koanf:"version"`
	Env     string `koanf:"env"`
	Port    string `koanf:"port"`
	// ShutdownTimeout and ReadinessDrainDelay are Go duration strings.
	ShutdownTimeout     string `koanf:"shutdown_timeout"`
	ReadinessDrainDelay string `koanf:"readiness_drain_delay"`
}

type DatabaseConfig struct {
	URL string `koanf:"url"`
}

type JWTConfig struct {
	Secret string `koanf:"secret"`
	// DefaultTTL and RememberTTL are Go duration strings. The session cookie
	// max-age is derived from the same value, so the two can never drift.
	DefaultTTL  string `koanf:"default_ttl"`
	RememberTTL string `koanf:"remember_ttl"`
}

type CookieConfig struct {
	Secure   bool   `koanf:"secure"`
	Domain   string `koanf:"domain"`
	SameSite string `koanf:"same_site"`
}

type LoggingConfig struct {
	Level string `koanf:"level"`
}

type TracingConfig struct {
	Enabled    bool    `koanf:"enabled"`
	Endpoint   string  `koanf:"endpoint"`
	SampleRate float64 `koanf:"sample_rate"`
}

type ProfilingConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Endpoint string `koanf:"endpoint"`
}

// Config is the immutable process-wide configuration. It is populated once in
// Load and passed by reference; nothing mutates it after startup.
type Config struct {
	Service   ServiceConfig   `koanf:"service"`
	Database  DatabaseConfig  `koanf:"database"`
	JWT       JWTConfig       `koanf:"jwt"`
	Cookie    CookieConfig    `koanf:"cookie"`
	Logging   LoggingConfig   `koanf:"logging"`
	Tracing   TracingConfig   `koanf:"tracing"`
	Profiling ProfilingConfig `koanf:"profiling"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"service.name":                  "school-backend",
		"service.version":               "0.1.0",
		"service.env":                   "development",
		"service.port":                  "8000",
		"service.shutdown_timeout":      "10s",
		"service.readiness_drain_delay": "0s",
		"jwt.default_ttl":               "72h",
		"jwt.remember_ttl":              "720h",
		"cookie.secure":                 true,
		"cookie.same_site":              "lax",
		"logging.level":                 "info",
		"tracing.enabled":               false,
		"tracing.sample_rate":           1.0,
		"profiling.enabled":             false,
	}
}

// Load reads configuration from defaults, an optional YAML file
// (CONFIG_PATH or ./config.yaml) and EDZIENNIK_* environment variables.
// A .env file in the working directory is honored if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// EDZIENNIK_JWT_SECRET -> jwt.secret, EDZIENNIK_DATABASE_URL -> database.url
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".", 1)
	}), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Bare variables kept for deployment compatibility.
	if v := os.Getenv("SECRET_KEY"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("DOMAIN"); v != "" {
		cfg.Cookie.Domain = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Service.Port = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	return &cfg, nil
}

// Validate checks the conditions that make startup pointless. A missing
// signing secret is fatal here rather than a per-request error.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("jwt.secret (SECRET_KEY) is required")
	}
	if c.Database.URL == "" {
		return errors.New("database.url (DATABASE_URL) is required")
	}
	if _, err := time.ParseDuration(c.JWT.DefaultTTL); err != nil {
		return fmt.Errorf("jwt.default_ttl: %w", err)
	}
	if _, err := time.ParseDuration(c.JWT.RememberTTL); err != nil {
		return fmt.Errorf("jwt.remember_ttl: %w", err)
	}
	return nil
}

func parseDurationOr(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

// GetDefaultTokenTTL returns the token lifetime for a plain login.
func (c *Config) GetDefaultTokenTTL() time.Duration {
	return parseDurationOr(c.JWT.DefaultTTL, 72*time.Hour)
}

// GetRememberTokenTTL returns the token lifetime when remember_me is set.
func (c *Config) GetRememberTokenTTL() time.Duration {
	return parseDurationOr(c.JWT.RememberTTL, 720*time.Hour)
}

// GetShutdownTimeoutDuration returns the graceful-shutdown budget.
func (c *Config) GetShutdownTimeoutDuration() time.Duration {
	return parseDurationOr(c.Service.ShutdownTimeout, 10*time.Second)
}

// GetReadinessDrainDelayDuration returns how long /ready should fail before
// the HTTP server starts shutting down.
func (c *Config) GetReadinessDrainDelayDuration() time.Duration {
	return parseDurationOr(c.Service.ReadinessDrainDelay, 0)
}
