// Package pipeline provides the high-level orchestration for parsing a CV
// document: conversion, heuristic extraction, optional LLM fallback, and
// optional job matching.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-parser/internal/convert"
	"github.com/jonathan/cv-parser/internal/db"
	"github.com/jonathan/cv-parser/internal/extract"
	"github.com/jonathan/cv-parser/internal/llm"
	"github.com/jonathan/cv-parser/internal/matcher"
	"github.com/jonathan/cv-parser/internal/observability"
	"github.com/jonathan/cv-parser/internal/types"
)

// batchConcurrency limits how many documents are parsed at once in batch mode.
const batchConcurrency = 4

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	File        string
	Verbose     bool
	LLMFallback bool
	APIKey      string
	MatcherURL  string
	TopK        int
	DatabaseURL string

	// LLMClient and MatcherClient allow injection for testing. When nil they
	// are constructed from APIKey and MatcherURL as needed.
	LLMClient     llm.Client
	MatcherClient *matcher.Client
}

// Result holds the outputs of a single pipeline run
type Result struct {
	SourceFile string                   `json:"source_file"`
	Parser     string                   `json:"parser"`
	Document   *types.ExtractedDocument `json:"document"`
	Matches    *matcher.PredictResponse `json:"matches,omitempty"`
}

// BatchItem pairs one input file with its result or error
type BatchItem struct {
	File   string
	Result *Result
	Err    error
}

// needsFallback reports whether the heuristic pass produced too little to be
// useful. Scanned PDFs with a thin text layer land here.
func needsFallback(doc *types.ExtractedDocument) bool {
	return doc.Name == types.NameNotFound && len(doc.Skills) == 0
}

// Run orchestrates the full parse pipeline for a single document
func Run(ctx context.Context, opts RunOptions) (*Result, error) {

	// Initialize observability printer for verbose output
	printer := observability.NewPrinter(os.Stdout)

	// Initialize database connection if configured
	var database *db.DB
	var runID uuid.UUID
	if opts.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: Failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without database persistence...\n")
		} else {
			defer database.Close()
			if opts.Verbose {
				fmt.Printf("[VERBOSE] Connected to database\n")
			}
		}
	}

	// Step 1: Convert the document to plain text
	fmt.Printf("Step 1/4: Converting %s to text...\n", opts.File)
	rawText, err := convert.FromFile(opts.File)
	if err != nil {
		return nil, fmt.Errorf("document conversion failed: %w", err)
	}
	if opts.Verbose {
		fmt.Printf("[VERBOSE] Recovered %d characters of text\n", len(rawText))
	}

	// Step 2: Heuristic extraction
	fmt.Printf("Step 2/4: Extracting structured fields...\n")
	doc := extract.Parse(rawText)
	parser := db.ParserHeuristic

	// Save to database
	if database != nil {
		runID, err = database.CreateRun(ctx, filepath.Base(opts.File), parser)
		if err != nil {
			fmt.Printf("Warning: Failed to create database run: %v\n", err)
		} else {
			if opts.Verbose {
				fmt.Printf("[VERBOSE] Created database run: %s\n", runID)
			}
			_ = database.SaveTextArtifact(ctx, runID, db.StepRawText, rawText)
			_ = database.SaveArtifact(ctx, runID, db.StepDocument, doc)
		}
	}

	// Step 3: LLM fallback when heuristics recovered too little
	if opts.LLMFallback && needsFallback(doc) {
		fmt.Printf("Step 3/4: Heuristics found no name or skills, falling back to LLM...\n")
		llmDoc, err := runLLMFallback(ctx, opts, rawText)
		if err != nil {
			fmt.Printf("Warning: LLM fallback failed: %v. Keeping heuristic output.\n", err)
		} else {
			doc = llmDoc
			parser = db.ParserLLM
			if database != nil && runID != uuid.Nil {
				_ = database.SaveArtifact(ctx, runID, db.StepLLMOutput, doc)
			}
		}
	} else {
		fmt.Printf("Step 3/4: LLM fallback not needed.\n")
	}
	if opts.Verbose {
		printer.PrintDocument(doc)
	}

	result := &Result{
		SourceFile: opts.File,
		Parser:     parser,
		Document:   doc,
	}

	// Step 4: Job matching if a matcher service is configured
	if opts.MatcherURL != "" || opts.MatcherClient != nil {
		fmt.Printf("Step 4/4: Requesting job matches...\n")
		client := opts.MatcherClient
		if client == nil {
			client = matcher.NewClient(opts.MatcherURL)
		}
		matches, err := client.Match(ctx, doc, opts.TopK)
		if err != nil {
			fmt.Printf("Warning: Job matching failed: %v\n", err)
		} else {
			result.Matches = matches
			if opts.Verbose {
				printer.PrintMatches(matches)
			}
			if database != nil && runID != uuid.Nil {
				_ = database.SaveArtifact(ctx, runID, db.StepMatches, matches)
			}
		}
	} else {
		fmt.Printf("Step 4/4: No matcher configured, skipping job matching.\n")
	}

	// Mark run as completed
	if database != nil && runID != uuid.Nil {
		_ = database.CompleteRun(ctx, runID, "completed")
	}

	return result, nil
}

// runLLMFallback re-parses the raw text with the LLM extractor
func runLLMFallback(ctx context.Context, opts RunOptions, rawText string) (*types.ExtractedDocument, error) {
	client := opts.LLMClient
	if client == nil {
		var err error
		client, err = llm.NewClient(ctx, llm.DefaultConfig(), opts.APIKey)
		if err != nil {
			return nil, fmt.Errorf("initializing LLM client: %w", err)
		}
	}
	return llm.ParseCV(ctx, client, rawText)
}

// RunBatch parses every supported document in a directory. Files are
// processed concurrently; a failure on one file does not stop the others.
func RunBatch(ctx context.Context, dir string, opts RunOptions) ([]BatchItem, error) {
	files, err := listDocuments(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no supported documents found in %s", dir)
	}

	fmt.Printf("Parsing %d documents from %s...\n", len(files), dir)

	items := make([]BatchItem, len(files))
	var mu sync.Mutex

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for i, file := range files {
		g.Go(func() error {
			fileOpts := opts
			fileOpts.File = file
			result, err := Run(gCtx, fileOpts)

			mu.Lock()
			items[i] = BatchItem{File: file, Result: result, Err: err}
			mu.Unlock()

			if err != nil {
				fmt.Printf("Warning: %s failed: %v\n", file, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

// listDocuments returns the paths of supported CV documents in dir, sorted
// for deterministic batch ordering.
func listDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".pdf", ".docx", ".doc":
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
