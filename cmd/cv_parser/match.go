package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-parser/internal/config"
	"github.com/jonathan/cv-parser/internal/pipeline"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Parse a CV and rank job matches from the prediction service",
	Long: `Parses a CV document and sends the extracted fields to the job matcher
service, printing the top scored job matches as JSON.`,
	RunE: runMatch,
}

var (
	matchConfigPath  string
	matchFile        string
	matchMatcherURL  string
	matchTopK        int
	matchAPIKey      string
	matchDatabaseURL string
	matchLLMFallback bool
	matchVerbose     bool
)

func init() {
	matchCmd.Flags().StringVar(&matchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	matchCmd.Flags().StringVarP(&matchFile, "file", "f", "", "Path to the CV document (.pdf, .docx, or .doc)")
	matchCmd.Flags().StringVar(&matchMatcherURL, "matcher-url", "", "Job matcher service URL (defaults to MATCHER_URL env var)")
	matchCmd.Flags().IntVarP(&matchTopK, "top-k", "k", 0, "Number of matches to request (default 10, max 100)")
	matchCmd.Flags().BoolVar(&matchLLMFallback, "llm-fallback", false, "Re-parse with the LLM when heuristics recover nothing")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print detailed debug information")
	matchCmd.Flags().StringVar(&matchAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	matchCmd.Flags().StringVar(&matchDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	var cfg config.Config
	if matchConfigPath != "" {
		loadedCfg, err := config.LoadConfig(matchConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	if cmd.Flags().Changed("file") {
		cfg.File = matchFile
	}
	if cmd.Flags().Changed("matcher-url") {
		cfg.MatcherURL = matchMatcherURL
	}
	if cmd.Flags().Changed("top-k") {
		cfg.TopK = matchTopK
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = matchAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = matchDatabaseURL
	}
	if cmd.Flags().Changed("llm-fallback") {
		cfg.LLMFallback = matchLLMFallback
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = matchVerbose
	}

	if cfg.File == "" {
		return fmt.Errorf("--file is required (via flag or config)")
	}
	if cfg.MatcherURL == "" {
		cfg.MatcherURL = os.Getenv("MATCHER_URL")
	}
	if cfg.MatcherURL == "" {
		return fmt.Errorf("MATCHER_URL environment variable or --matcher-url flag is required")
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
	result, err := pipeline.Run(ctx, pipeline.RunOptions{
		File:        cfg.File,
		Verbose:     cfg.Verbose,
		LLMFallback: cfg.LLMFallback,
		APIKey:      cfg.APIKey,
		MatcherURL:  cfg.MatcherURL,
		TopK:        cfg.TopK,
		DatabaseURL: cfg.DatabaseURL,
	})
	if err != nil {
		return err
	}

	if result.Matches == nil {
		return fmt.Errorf("matcher returned no response")
	}

	jsonBytes, err := json.MarshalIndent(result.Matches, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(jsonBytes))

	return nil
}
