package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-intake/internal/logger"
	"github.com/jonathan/resume-intake/internal/validation"
)

var (
	parseConfigPath string
	parseVerbose    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a resume file and print the structured record",
	Long: `Parse a single resume file (PDF, DOCX, or image) and print the extracted
candidate record as JSON to stdout. Scanned PDFs and images require a
configured OCR engine.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseConfigPath, "config", "", "Path to config.json file")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(parseConfigPath)
	if err != nil {
		return err
	}
	if parseVerbose {
		cfg.Verbose = true
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	filename := filepath.Base(path)
	if err := validation.ValidateFilename(filename); err != nil {
		return err
	}

	ctx := context.Background()
	parser, cleanup, err := buildParser(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	record, err := parser.Parse(ctx, content, filename)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(record)
}
