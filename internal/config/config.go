// Package config loads CLI configuration from gestloyer.yaml and the
// environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Validation errors.
var (
	ErrMissingBaseURL = errors.New("config: api.base_url est obligatoire")
	ErrInvalidBaseURL = errors.New("config: api.base_url invalide")
)

// Config holds all CLI configuration.
type Config struct {
	API     APIConfig
	Auth    AuthConfig
	Log     LogConfig
	Metrics MetricsConfig
}

// APIConfig holds the target server settings.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// AuthConfig holds the login credentials. Either the admin email/password
// pair or a tenant phone/password pair, depending on the mode.
type AuthConfig struct {
	Email    string
	Password string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// MetricsConfig holds the optional Prometheus endpoint settings.
type MetricsConfig struct {
	Enabled bool
	Addr    string
}

// Load reads configuration in priority order:
// 1. Environment variables with GESTLOYER_ prefix (e.g. GESTLOYER_AUTH_PASSWORD)
// 2. gestloyer.yaml in the working directory or $HOME/.gestloyer
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("gestloyer")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.gestloyer")

	// The server mounts everything under /api; the base URL includes it.
	v.SetDefault("api.base_url", "http://localhost:3000/api")
	v.SetDefault("api.timeout", 30*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stderr")
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.addr", "127.0.0.1:9090")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: reading config file: %w", err)
		}
		// No config file is fine, env vars and defaults apply.
	}

	v.SetEnvPrefix("GESTLOYER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		API: APIConfig{
			BaseURL: v.GetString("api.base_url"),
			Timeout: v.GetDuration("api.timeout"),
		},
		Auth: AuthConfig{
			Email:    v.GetString("auth.email"),
			Password: v.GetString("auth.password"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("metrics.enabled"),
			Addr:    v.GetString("metrics.addr"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return ErrMissingBaseURL
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.API.BaseURL)
	}
	if c.API.Timeout <= 0 {
		c.API.Timeout = 30 * time.Second
	}
	return nil
}
