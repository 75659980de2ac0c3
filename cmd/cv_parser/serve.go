package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-parser/internal/server"
)

var (
	servePort        int
	serveLLMFallback bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that accepts CV uploads on /api/v1/parse and
returns extracted documents as JSON. Job matching and run history endpoints
are enabled when MATCHER_URL and DATABASE_URL are set.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().BoolVar(&serveLLMFallback, "llm-fallback", false, "Re-parse uploads with the LLM when heuristics recover nothing")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if serveLLMFallback && apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required with --llm-fallback")
	}

	cfg := server.Config{
		Port:        servePort,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		MatcherURL:  os.Getenv("MATCHER_URL"),
		APIKey:      apiKey,
		LLMFallback: serveLLMFallback,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
