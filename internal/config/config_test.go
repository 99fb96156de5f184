package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "https://subriff.com", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.ParseTimeout())
	assert.Equal(t, []string{"medium-small", "medium", "large", "xlarge"}, cfg.Blend.SizeFilters)
	assert.Equal(t, []string{"daily", "weekly"}, cfg.Blend.SortPeriods)
	assert.Equal(t, 20, cfg.Blend.ResultsPerQuery)
	assert.Equal(t, 5, cfg.Blend.TopPerCategory)
	assert.Equal(t, 30, cfg.Blend.FinalLimit)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("api:\n  base_url: http://localhost:9999\nblend:\n  final_limit: 10\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999", cfg.API.BaseURL)
	assert.Equal(t, 10, cfg.Blend.FinalLimit)
	// Untouched fields keep their defaults.
	assert.Equal(t, 5, cfg.Blend.TopPerCategory)
	assert.Equal(t, []string{"daily", "weekly"}, cfg.Blend.SortPeriods)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SUBRADAR_API_URL", "http://127.0.0.1:8000")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.API.BaseURL)
}

func TestParseTimeout_Invalid(t *testing.T) {
	assert.Equal(t, 30*time.Second, APIConfig{Timeout: "soon"}.ParseTimeout())
	assert.Equal(t, 30*time.Second, APIConfig{}.ParseTimeout())
	assert.Equal(t, 10*time.Second, APIConfig{Timeout: "10s"}.ParseTimeout())
}
