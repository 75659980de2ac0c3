// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	File      string `json:"file,omitempty"`       // Path to the CV document (PDF or Word)
	InputDir  string `json:"input_dir,omitempty"`  // Directory of CV documents for batch runs
	OutputDir string `json:"output_dir,omitempty"` // Directory for extracted JSON output

	// Services
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for the LLM fallback parser
	MatcherURL  string `json:"matcher_url,omitempty"`  // Base URL of the job-matching service
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for run persistence

	// Behavior
	TopK        int  `json:"top_k,omitempty"`        // Number of job matches to request
	LLMFallback bool `json:"llm_fallback,omitempty"` // Use the LLM parser when heuristics come up empty
	Verbose     bool `json:"verbose,omitempty"`      // Print detailed debug information
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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.File != "" && c.InputDir != "" {
		return fmt.Errorf("config error: 'file' and 'input_dir' are mutually exclusive")
	}

	// Validate numeric ranges
	if c.TopK < 0 {
		return fmt.Errorf("config error: 'top_k' must be non-negative")
	}
	if c.TopK > 100 {
		return fmt.Errorf("config error: 'top_k' must be at most 100")
	}

	// Validate file paths exist (if specified)
	if c.File != "" {
		if _, err := os.Stat(c.File); os.IsNotExist(err) {
			return fmt.Errorf("config error: CV file not found: %s", c.File)
		}
	}

	if c.InputDir != "" {
		info, err := os.Stat(c.InputDir)
		if os.IsNotExist(err) {
			return fmt.Errorf("config error: input directory not found: %s", c.InputDir)
		}
		if err == nil && !info.IsDir() {
			return fmt.Errorf("config error: 'input_dir' is not a directory: %s", c.InputDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.File == "" {
		result.File = defaults.File
	}
	if result.InputDir == "" {
		result.InputDir = defaults.InputDir
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.MatcherURL == "" {
		result.MatcherURL = defaults.MatcherURL
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.TopK == 0 {
		if defaults.TopK > 0 {
			result.TopK = defaults.TopK
		} else {
			result.TopK = 10 // Matcher service default
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
