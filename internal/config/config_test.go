package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/api", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GESTLOYER_API_BASE_URL", "https://loyer.example.sn")
	t.Setenv("GESTLOYER_AUTH_EMAIL", "admin@example.sn")
	t.Setenv("GESTLOYER_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://loyer.example.sn", cfg.API.BaseURL)
	assert.Equal(t, "admin@example.sn", cfg.Auth.Email)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestValidateRejectsBadBaseURL(t *testing.T) {
	cfg := &Config{API: APIConfig{BaseURL: "not a url"}}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidBaseURL)

	cfg = &Config{}
	assert.ErrorIs(t, cfg.Validate(), ErrMissingBaseURL)
}
