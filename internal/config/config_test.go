package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfigFile(t, `{
		"api_key": "gem-key",
		"jobs_api_key": "rapid-key",
		"region": "Remote",
		"jobs_timeout_seconds": 10
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "gem-key", cfg.APIKey)
	assert.Equal(t, "rapid-key", cfg.JobsAPIKey)
	assert.Equal(t, "Remote", cfg.Region)
	assert.Equal(t, 10, cfg.JobsTimeoutSeconds)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, "not json")
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{JobsTimeoutSeconds: 10}
	assert.NoError(t, cfg.Validate())

	// Missing credentials are fine; the session degrades instead.
	empty := &Config{}
	assert.NoError(t, empty.Validate())

	bad := &Config{JobsTimeoutSeconds: 999}
	assert.Error(t, bad.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{APIKey: "mine"}
	merged := cfg.MergeWithDefaults(Config{
		APIKey:             "default-key",
		Region:             "India",
		JobsTimeoutSeconds: 8,
	})

	assert.Equal(t, "mine", merged.APIKey)
	assert.Equal(t, "India", merged.Region)
	assert.Equal(t, 8, merged.JobsTimeoutSeconds)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-gem")
	t.Setenv("RAPIDAPI_KEY", "env-rapid")

	cfg := Config{}
	cfg.FromEnv()
	assert.Equal(t, "env-gem", cfg.APIKey)
	assert.Equal(t, "env-rapid", cfg.JobsAPIKey)

	// Explicit values are not overwritten by the environment.
	cfg = Config{APIKey: "explicit"}
	cfg.FromEnv()
	assert.Equal(t, "explicit", cfg.APIKey)
}
