package server

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/cv-parser/internal/convert"
	"github.com/jonathan/cv-parser/internal/db"
	"github.com/jonathan/cv-parser/internal/extract"
	"github.com/jonathan/cv-parser/internal/llm"
	"github.com/jonathan/cv-parser/internal/types"
)

// parseResponse is the body returned by the parse and match endpoints.
type parseResponse struct {
	SourceFile string                   `json:"source_file"`
	Parser     string                   `json:"parser"`
	Document   *types.ExtractedDocument `json:"document"`
}

// handleParse accepts a multipart CV upload and returns the extracted
// document as JSON.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	resp, ok := s.parseUpload(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleMatch parses an uploaded CV and forwards the document to the job
// matcher service.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	if s.matcherClient == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "no matcher service configured")
		return
	}

	resp, ok := s.parseUpload(w, r)
	if !ok {
		return
	}

	topK := 0
	if v := r.URL.Query().Get("top_k"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "top_k must be an integer")
			return
		}
		topK = n
	}

	matches, err := s.matcherClient.Match(r.Context(), resp.Document, topK)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, fmt.Sprintf("matcher request failed: %v", err))
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"source_file": resp.SourceFile,
		"parser":      resp.Parser,
		"document":    resp.Document,
		"matches":     matches,
	})
}

// parseUpload runs the conversion and extraction pipeline on the uploaded
// file. On failure it writes the error response and returns ok=false.
func (s *Server) parseUpload(w http.ResponseWriter, r *http.Request) (*parseResponse, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "expected multipart form with a 'file' field")
		return nil, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing 'file' field")
		return nil, false
	}
	defer func() { _ = file.Close() }()

	// The conversion layer dispatches on file extension, so the upload is
	// staged to a temp file that keeps the original one.
	tmp, err := os.CreateTemp("", "cv-upload-*"+filepath.Ext(header.Filename))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to stage upload")
		return nil, false
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := io.Copy(tmp, file); err != nil {
		_ = tmp.Close()
		s.errorResponse(w, http.StatusInternalServerError, "failed to stage upload")
		return nil, false
	}
	if err := tmp.Close(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to stage upload")
		return nil, false
	}

	rawText, err := convert.FromFile(tmp.Name())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return nil, false
	}

	doc := extract.Parse(rawText)
	parser := db.ParserHeuristic

	if s.llmClient != nil && doc.Name == types.NameNotFound && len(doc.Skills) == 0 {
		llmDoc, err := llm.ParseCV(r.Context(), s.llmClient, rawText)
		if err != nil {
			log.Printf("Warning: LLM fallback failed for %s: %v", header.Filename, err)
		} else {
			doc = llmDoc
			parser = db.ParserLLM
		}
	}

	s.persistRun(r, header.Filename, parser, rawText, doc)

	return &parseResponse{
		SourceFile: header.Filename,
		Parser:     parser,
		Document:   doc,
	}, true
}

// persistRun records the parse in the database when one is configured.
// Persistence failures are logged, never surfaced to the client.
func (s *Server) persistRun(r *http.Request, sourceFile, parser, rawText string, doc *types.ExtractedDocument) {
	if s.db == nil {
		return
	}

	ctx := r.Context()
	runID, err := s.db.CreateRun(ctx, sourceFile, parser)
	if err != nil {
		log.Printf("Warning: failed to create run for %s: %v", sourceFile, err)
		return
	}
	_ = s.db.SaveTextArtifact(ctx, runID, db.StepRawText, rawText)
	_ = s.db.SaveArtifact(ctx, runID, db.StepDocument, doc)
	_ = s.db.CompleteRun(ctx, runID, "completed")
}

// handleListRuns returns the most recent parse runs
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "no database configured")
		return
	}

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 500 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be between 1 and 500")
			return
		}
		limit = n
	}

	runs, err := s.db.ListRuns(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list runs")
		return
	}
	if runs == nil {
		runs = []db.Run{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"runs": runs})
}

// handleGetRun returns a single parse run by ID
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "no database configured")
		return
	}

	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid run ID")
		return
	}

	run, err := s.db.GetRun(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to get run")
		return
	}
	if run == nil {
		s.errorResponse(w, http.StatusNotFound, "run not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, run)
}

// handleGetArtifact returns a stored artifact for a run
func (s *Server) handleGetArtifact(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "no database configured")
		return
	}

	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid run ID")
		return
	}
	step := r.PathValue("step")

	if step == db.StepRawText {
		text, err := s.db.GetTextArtifact(r.Context(), runID, step)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "failed to get artifact")
			return
		}
		if text == "" {
			s.errorResponse(w, http.StatusNotFound, "artifact not found")
			return
		}
		s.jsonResponse(w, http.StatusOK, map[string]string{"text": text})
		return
	}

	content, err := s.db.GetArtifact(r.Context(), runID, step)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to get artifact")
		return
	}
	if content == nil {
		s.errorResponse(w, http.StatusNotFound, "artifact not found")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}
