// Package main provides the entry point for the CV parser CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_parser",
	Short: "CV parsing and job matching toolkit",
	Long:  "cv_parser recovers structured candidate data (name, contact, skills, education, experience, projects) from PDF and Word CVs using layout-aware heuristics, with an optional LLM fallback and job matching against a prediction service.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
