package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration

	// ParseLimit bounds the expensive parse and match endpoints separately
	// from ordinary reads.
	ParseLimit  int
	ParseWindow time.Duration
	ParseBurst  int
}

// parsePrefixes marks the endpoints that run document conversion.
var parsePrefixes = []string{"/api/v1/parse", "/api/v1/match"}

// DefaultConfig returns the built-in rate limiting defaults.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		ParseLimit:      60,
		ParseWindow:     time.Minute,
		ParseBurst:      10,
	}
}

// LoadConfig loads rate limiting configuration from environment variables,
// falling back to defaults.
func LoadConfig() *Config {
	cfg := DefaultConfig()

	cfg.Enabled = getEnvBool("RATE_LIMIT_ENABLED", cfg.Enabled)
	if !cfg.Enabled {
		return cfg
	}

	cfg.DefaultLimit = getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", cfg.DefaultLimit)
	cfg.DefaultWindow = getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", cfg.DefaultWindow)
	cfg.CleanupInterval = getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", cfg.CleanupInterval)
	cfg.ParseLimit = getEnvInt("RATE_LIMIT_PARSE_LIMIT", cfg.ParseLimit)
	cfg.ParseWindow = getEnvDuration("RATE_LIMIT_PARSE_WINDOW", cfg.ParseWindow)
	cfg.ParseBurst = getEnvInt("RATE_LIMIT_PARSE_BURST", cfg.ParseBurst)

	return cfg
}

// budgetFor returns the limit, window, and burst for an endpoint. Health
// checks are unlimited.
func (c *Config) budgetFor(endpoint string) (int, time.Duration, int) {
	if endpoint == "/health" {
		return 0, 0, 0
	}
	for _, prefix := range parsePrefixes {
		if strings.HasPrefix(endpoint, prefix) {
			return c.ParseLimit, c.ParseWindow, c.ParseBurst
		}
	}
	return c.DefaultLimit, c.DefaultWindow, c.DefaultLimit
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
