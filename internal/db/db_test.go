package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArtifactStepConstants(t *testing.T) {
	// Verify step constants are defined
	steps := []string{
		StepRawText,
		StepDocument,
		StepMatches,
		StepLLMOutput,
	}

	for _, step := range steps {
		assert.NotEmpty(t, step, "step constant should not be empty")
	}
}

func TestParserConstants(t *testing.T) {
	assert.Equal(t, "heuristic", ParserHeuristic)
	assert.Equal(t, "llm", ParserLLM)
	assert.NotEqual(t, ParserHeuristic, ParserLLM)
}

func TestRunType(t *testing.T) {
	// Verify Run struct can be instantiated
	run := Run{
		SourceFile: "cv.pdf",
		Parser:     ParserHeuristic,
		Status:     "running",
	}

	assert.Equal(t, "cv.pdf", run.SourceFile)
	assert.Equal(t, ParserHeuristic, run.Parser)
	assert.Equal(t, "running", run.Status)
	assert.Nil(t, run.CompletedAt)
}
