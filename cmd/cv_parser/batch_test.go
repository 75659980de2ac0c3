package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchCommand_MissingInputDir(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("DATABASE_URL", "")

	err := executeCommand(t, "batch")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--in-dir is required")
}

func TestBatchCommand_MissingInputDirOnDisk(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("DATABASE_URL", "")

	err := executeCommand(t, "batch", "--in-dir", "/nonexistent/cvs")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading input directory")
}
