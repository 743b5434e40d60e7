// Package main provides the internmatch CLI: the HTTP API server and offline
// recommendation and skill-gap commands.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "internmatch",
	Short: "Internship recommendation engine",
	Long:  "internmatch ranks internship postings for a candidate by skills, distance, education and equity priority, and serves the candidate and recruiter REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
