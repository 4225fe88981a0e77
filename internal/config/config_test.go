package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GOALVERSE_DIR", t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, "en.sahih", cfg.TranslationEdition)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 1, cfg.InitialResults)
	assert.Equal(t, 3, cfg.MoreResults)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GOALVERSE_DIR", dir)

	content := `
[api]
base_url = "http://localhost:9090/v1/"
language = "fr"

[guidance]
cache_ttl_seconds = 60
more_results = 5

[logging]
level = "debug"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	// Trailing slash is normalized away
	assert.Equal(t, "http://localhost:9090/v1", cfg.APIBaseURL)
	assert.Equal(t, "fr", cfg.Language)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
	assert.Equal(t, 5, cfg.MoreResults)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Untouched keys keep defaults
	assert.Equal(t, 1, cfg.InitialResults)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GOALVERSE_DIR", dir)

	content := `
[api]
base_url = "http://from-file:8080"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644))
	t.Setenv("GOALVERSE_API_BASE_URL", "http://from-env:8080")
	t.Setenv("GOALVERSE_CACHE_TTL_SECONDS", "120")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://from-env:8080", cfg.APIBaseURL)
	assert.Equal(t, 2*time.Minute, cfg.CacheTTL)
}

func TestValidateRejectsBadConfig(t *testing.T) {
	t.Setenv("GOALVERSE_DIR", t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	cfg.APIBaseURL = "  "
	assert.Error(t, cfg.Validate())

	cfg, err = LoadConfig()
	require.NoError(t, err)
	cfg.CacheTTL = 0
	assert.Error(t, cfg.Validate())
}
