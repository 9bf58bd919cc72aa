// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/job-matcher/internal/backend"
)

// Defaults applied by MergeWithDefaults when a field is left unset.
const (
	DefaultTopN        = 6
	DefaultConcurrency = 4
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Scoring
	TopN        int `json:"top_n,omitempty" validate:"gte=0"`       // Number of top matches to report
	Concurrency int `json:"concurrency,omitempty" validate:"gte=0"` // Scoring goroutines (1 = sequential, 0 = default)

	// Backends: "available" (default) or "unavailable"
	TextSimilarity string `json:"text_similarity,omitempty" validate:"omitempty,oneof=available unavailable"`
	ViSegmenter    string `json:"vi_segmenter,omitempty" validate:"omitempty,oneof=available unavailable"`
	EnSegmenter    string `json:"en_segmenter,omitempty" validate:"omitempty,oneof=available unavailable"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Log degradation diagnostics
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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.TextSimilarity == "" {
		result.TextSimilarity = defaults.TextSimilarity
	}
	if result.ViSegmenter == "" {
		result.ViSegmenter = defaults.ViSegmenter
	}
	if result.EnSegmenter == "" {
		result.EnSegmenter = defaults.EnSegmenter
	}

	// Int fields: use default if zero
	if result.TopN == 0 {
		result.TopN = defaults.TopN
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Defaults returns the built-in defaults, with DATABASE_URL taken from the environment.
func Defaults() Config {
	return Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		TopN:        DefaultTopN,
		Concurrency: DefaultConcurrency,
	}
}

// Settings converts the backend fields to backend.Settings.
func (c *Config) Settings() (backend.Settings, error) {
	var s backend.Settings
	var err error
	if s.TextSimilarity, err = backend.ParseAvailability(c.TextSimilarity); err != nil {
		return s, fmt.Errorf("text_similarity: %w", err)
	}
	if s.ViSegmenter, err = backend.ParseAvailability(c.ViSegmenter); err != nil {
		return s, fmt.Errorf("vi_segmenter: %w", err)
	}
	if s.EnSegmenter, err = backend.ParseAvailability(c.EnSegmenter); err != nil {
		return s, fmt.Errorf("en_segmenter: %w", err)
	}
	return s, nil
}

// Flags builds backend flags from the configuration.
func (c *Config) Flags() (*backend.Flags, error) {
	s, err := c.Settings()
	if err != nil {
		return nil, err
	}
	return backend.New(s), nil
}
