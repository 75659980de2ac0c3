package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-parser/internal/config"
	"github.com/jonathan/cv-parser/internal/pipeline"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Parse every CV document in a directory",
	Long: `Parses all PDF and Word documents found in the input directory
concurrently and writes one JSON file per document to the output directory.
A document that fails to parse is reported and skipped; the rest of the
batch still completes.`,
	RunE: runBatch,
}

var (
	batchConfigPath  string
	batchInputDir    string
	batchOutputDir   string
	batchAPIKey      string
	batchDatabaseURL string
	batchLLMFallback bool
	batchVerbose     bool
)

func init() {
	batchCmd.Flags().StringVar(&batchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	batchCmd.Flags().StringVarP(&batchInputDir, "in-dir", "i", "", "Directory containing CV documents")
	batchCmd.Flags().StringVarP(&batchOutputDir, "out-dir", "o", "parsed", "Directory to write extracted JSON files to")
	batchCmd.Flags().BoolVar(&batchLLMFallback, "llm-fallback", false, "Re-parse with the LLM when heuristics recover nothing")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print detailed debug information")
	batchCmd.Flags().StringVar(&batchAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	batchCmd.Flags().StringVar(&batchDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	var cfg config.Config
	if batchConfigPath != "" {
		loadedCfg, err := config.LoadConfig(batchConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	if cmd.Flags().Changed("in-dir") {
		cfg.InputDir = batchInputDir
	}
	if cmd.Flags().Changed("out-dir") || cfg.OutputDir == "" {
		cfg.OutputDir = batchOutputDir
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = batchAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = batchDatabaseURL
	}
	if cmd.Flags().Changed("llm-fallback") {
		cfg.LLMFallback = batchLLMFallback
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = batchVerbose
	}

	if cfg.InputDir == "" {
		return fmt.Errorf("--in-dir is required (via flag or config)")
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.LLMFallback && cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required with --llm-fallback")
	}

	ctx := context.Background()
	items, err := pipeline.RunBatch(ctx, cfg.InputDir, pipeline.RunOptions{
		Verbose:     cfg.Verbose,
		LLMFallback: cfg.LLMFallback,
		APIKey:      cfg.APIKey,
		DatabaseURL: cfg.DatabaseURL,
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var failed int
	for _, item := range items {
		if item.Err != nil {
			failed++
			continue
		}

		jsonBytes, err := json.MarshalIndent(item.Result.Document, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON for %s: %w", item.File, err)
		}

		base := filepath.Base(item.File)
		name := strings.TrimSuffix(base, filepath.Ext(base))
		outPath := filepath.Join(cfg.OutputDir, name+".json")
		if err := os.WriteFile(outPath, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outPath, err)
		}
	}

	fmt.Printf("Done: %d parsed, %d failed. Output in %s\n", len(items)-failed, failed, cfg.OutputDir)
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed to parse", failed, len(items))
	}
	return nil
}
