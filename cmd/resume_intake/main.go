// Package main provides the entry point for the resume intake service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_intake",
	Short: "Resume intake and parsing service",
	Long:  "Resume intake extracts text from uploaded resumes (PDF, Word, images with OCR fallback) and parses it into structured candidate records, served over a REST API or as a one-shot CLI.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
