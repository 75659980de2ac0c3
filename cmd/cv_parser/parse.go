package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-parser/internal/config"
	"github.com/jonathan/cv-parser/internal/pipeline"
	"github.com/jonathan/cv-parser/internal/schemas"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a CV document into structured JSON",
	Long: `Converts a PDF or Word CV into plain text and extracts structured fields
(name, contact, skills, education, experience, projects, languages, and
certifications) using heuristics, with an optional LLM fallback for
documents the heuristics cannot read.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runParse,
}

var (
	parseConfigPath  string
	parseFile        string
	parseOutputDir   string
	parseAPIKey      string
	parseDatabaseURL string
	parseLLMFallback bool
	parseVerbose     bool
	parseValidate    bool
)

func init() {
	parseCmd.Flags().StringVar(&parseConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	parseCmd.Flags().StringVarP(&parseFile, "file", "f", "", "Path to the CV document (.pdf, .docx, or .doc)")
	parseCmd.Flags().StringVarP(&parseOutputDir, "out-dir", "o", "", "Directory to write the extracted JSON to (default: stdout)")
	parseCmd.Flags().BoolVar(&parseLLMFallback, "llm-fallback", false, "Re-parse with the LLM when heuristics recover nothing")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print detailed debug information")
	parseCmd.Flags().BoolVar(&parseValidate, "validate", false, "Validate the output against the document schema")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	parseCmd.Flags().StringVar(&parseAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for run persistence
	parseCmd.Flags().StringVar(&parseDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, _ []string) error {
	cfg, err := loadParseConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.File == "" {
		return fmt.Errorf("--file is required (via flag or config)")
	}
	if cfg.LLMFallback && cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required with --llm-fallback")
	}

	ctx := context.Background()
	result, err := pipeline.Run(ctx, pipeline.RunOptions{
		File:        cfg.File,
		Verbose:     cfg.Verbose,
		LLMFallback: cfg.LLMFallback,
		APIKey:      cfg.APIKey,
		DatabaseURL: cfg.DatabaseURL,
	})
	if err != nil {
		return err
	}

	jsonBytes, err := json.MarshalIndent(result.Document, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if parseValidate {
		if err := validateDocument(jsonBytes); err != nil {
			return err
		}
	}

	if cfg.OutputDir == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}

	outPath := outputPath(cfg.OutputDir, cfg.File)
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outPath, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Printf("Output: %s\n", outPath)
	return nil
}

// loadParseConfig merges the config file, CLI overrides, env vars, and
// defaults for the parse command.
func loadParseConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if parseConfigPath != "" {
		loadedCfg, err := config.LoadConfig(parseConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loadedCfg
		if parseVerbose {
			fmt.Printf("Loaded config from: %s\n", parseConfigPath)
		}
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("file") {
		cfg.File = parseFile
	}
	if cmd.Flags().Changed("out-dir") {
		cfg.OutputDir = parseOutputDir
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = parseAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = parseDatabaseURL
	}
	if cmd.Flags().Changed("llm-fallback") {
		cfg.LLMFallback = parseLLMFallback
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = parseVerbose
	}

	cfg = cfg.MergeWithDefaults(config.Config{})

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	return cfg, nil
}

// outputPath derives the JSON output path from the source document name.
func outputPath(outDir, sourceFile string) string {
	base := filepath.Base(sourceFile)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outDir, name+".json")
}

// validateDocument checks the marshaled document against the repository
// schema. A missing schema file is a warning, not a failure.
func validateDocument(jsonBytes []byte) error {
	schemaPath := schemas.ResolveSchemaPath(schemas.ExtractedDocumentSchema)
	if schemaPath == "" {
		fmt.Fprintf(os.Stderr, "Warning: document schema not found, skipping validation\n")
		return nil
	}

	schemaContent, err := os.ReadFile(schemaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not read document schema: %v\n", err)
		return nil
	}

	if err := schemas.ValidateJSONString(string(schemaContent), string(jsonBytes)); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("extracted document does not validate against schema: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Warning: could not validate output against schema: %v\n", err)
	}
	return nil
}
