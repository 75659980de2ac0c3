package db

import (
	"time"

	"github.com/google/uuid"
)

// Run represents one parse run record: a single document through the
// conversion and extraction pipeline.
type Run struct {
	ID          uuid.UUID  `json:"id"`
	SourceFile  string     `json:"source_file"`
	Parser      string     `json:"parser"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Parser constants record which extraction path produced a run's document.
const (
	ParserHeuristic = "heuristic"
	ParserLLM       = "llm"
)

// ArtifactStep constants for known artifact types
const (
	StepRawText   = "raw_text"
	StepDocument  = "document"
	StepMatches   = "matches"
	StepLLMOutput = "llm_output"
)
