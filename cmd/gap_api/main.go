// Package main provides the entry point for the gap analysis HTTP API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gap_api",
	Short: "Candidate-vacancy gap analysis service",
	Long:  "Compares a candidate profile against a job vacancy, scores compatibility, ranks the gaps and builds a time-phased action plan.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
