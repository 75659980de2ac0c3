package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"matcher_url": "http://localhost:8000",
		"api_key": "test-key",
		"top_k": 5,
		"llm_fallback": true,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "http://localhost:8000", cfg.MatcherURL)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, 5, cfg.TopK)
	assert.True(t, cfg.LLMFallback)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_MutuallyExclusive(t *testing.T) {
	cfg := &Config{
		File:     "cv.pdf",
		InputDir: "cvs/",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_NegativeValues(t *testing.T) {
	cfg := &Config{
		TopK: -1,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "top_k")
}

func TestValidate_TopKTooLarge(t *testing.T) {
	cfg := &Config{
		TopK: 500,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "top_k")
}

func TestValidate_MissingFile(t *testing.T) {
	cfg := &Config{
		File: filepath.Join(t.TempDir(), "missing.pdf"),
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "CV file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		MatcherURL: "http://localhost:8000",
		TopK:       10,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		MatcherURL: "http://localhost:8000",
		APIKey:     "default-key",
		OutputDir:  "out/",
		TopK:       25,
	}

	partial := Config{
		APIKey: "custom-key",
		File:   "cv.pdf",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "custom-key", merged.APIKey)
	assert.Equal(t, "cv.pdf", merged.File)

	// Default values should fill in empty fields
	assert.Equal(t, "http://localhost:8000", merged.MatcherURL)
	assert.Equal(t, "out/", merged.OutputDir)
	assert.Equal(t, 25, merged.TopK)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		File: "cv.pdf",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "cv.pdf", merged.File)
	assert.Equal(t, 10, merged.TopK)
}
