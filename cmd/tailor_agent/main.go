// Package main provides the entry point for the resume tailoring agent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tailor_agent",
	Short: "Retrieval-augmented resume tailoring agent",
	Long:  "tailor_agent rewrites a candidate's accomplishments against a target job posting, validating every generated bullet for length, skill grounding, and fabricated claims before accepting it.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
