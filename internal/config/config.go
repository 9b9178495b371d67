// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or come from CLI flags
// and environment variables.
type Config struct {
	// Credentials
	APIKey     string `json:"api_key,omitempty"`      // Gemini API key (GEMINI_API_KEY)
	JobsAPIKey string `json:"jobs_api_key,omitempty"` // RapidAPI key for JSearch (RAPIDAPI_KEY)

	// Behavior
	Model   string `json:"model,omitempty"`   // Override for the standard-tier model
	Region  string `json:"region,omitempty"`  // Job search region appended to the query
	Verbose bool   `json:"verbose,omitempty"` // Debug-level logging

	// Limits
	JobsTimeoutSeconds int `json:"jobs_timeout_seconds,omitempty" validate:"gte=0,lte=120"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Missing
// credentials are not an error here; the session degrades gracefully
// without them.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.JobsAPIKey == "" {
		result.JobsAPIKey = defaults.JobsAPIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Region == "" {
		result.Region = defaults.Region
	}
	if result.JobsTimeoutSeconds == 0 {
		result.JobsTimeoutSeconds = defaults.JobsTimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// FromEnv fills missing credentials from the environment.
func (c *Config) FromEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.JobsAPIKey == "" {
		c.JobsAPIKey = os.Getenv("RAPIDAPI_KEY")
	}
}
