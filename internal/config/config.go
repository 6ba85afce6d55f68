// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values fall back to environment
// variables and then to built-in defaults.
type Config struct {
	APIBaseURL     string `json:"api_base_url,omitempty"`    // Backend base URL
	SessionPath    string `json:"session_path,omitempty"`    // Local session file
	TokenPath      string `json:"token_path,omitempty"`      // Auth token file
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"` // HTTP timeout
}

// Default returns the configuration derived from the environment, with
// files placed under ~/.resume-builder.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	dir := filepath.Join(home, ".resume-builder")

	baseURL := os.Getenv("RESUME_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return Config{
		APIBaseURL:     baseURL,
		SessionPath:    filepath.Join(dir, "session.json"),
		TokenPath:      filepath.Join(dir, "token"),
		TimeoutSeconds: 30,
	}
}

// Load loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	if c.APIBaseURL != "" && !strings.HasPrefix(c.APIBaseURL, "http://") && !strings.HasPrefix(c.APIBaseURL, "https://") {
		return fmt.Errorf("config error: 'api_base_url' must start with http:// or https://")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIBaseURL == "" {
		result.APIBaseURL = defaults.APIBaseURL
	}
	if result.SessionPath == "" {
		result.SessionPath = defaults.SessionPath
	}
	if result.TokenPath == "" {
		result.TokenPath = defaults.TokenPath
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}

	return result
}

// Timeout returns the HTTP timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
