package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-intake/internal/config"
	"github.com/jonathan/resume-intake/internal/llm"
	"github.com/jonathan/resume-intake/internal/ner"
	"github.com/jonathan/resume-intake/internal/ocr"
	"github.com/jonathan/resume-intake/internal/resume"
)

// buildParser wires the OCR engines and optional entity recognizer into a
// resume parser. The returned cleanup releases the LLM client when one was
// created.
func buildParser(ctx context.Context, cfg config.Config, log *zap.Logger) (*resume.Parser, func(), error) {
	engines := ocr.DetectEngines(ocr.Capabilities{
		PaddleEndpoint:    cfg.OCREndpoint,
		PaddleTimeout:     time.Duration(cfg.OCRTimeoutSeconds) * time.Second,
		EnableTesseract:   cfg.EnableTesseract,
		TesseractLanguage: cfg.TesseractLanguage,
	}, log)

	params := resume.DefaultParams()
	if cfg.MaxUploadBytes > 0 {
		params.MaxInputBytes = int(cfg.MaxUploadBytes)
	}

	opts := []resume.Option{resume.WithLogger(log)}
	cleanup := func() {}

	if cfg.APIKey != "" {
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		opts = append(opts, resume.WithRecognizer(ner.NewGeminiRecognizer(client, log)))
		cleanup = func() { _ = client.Close() }
	} else {
		log.Info("no API key configured; entity recognition uses pattern fallbacks")
	}

	return resume.New(params, engines, opts...), cleanup, nil
}

// loadConfig merges the optional config file, environment variables, and
// defaults. Environment values win over the file.
func loadConfig(configPath string) (config.Config, error) {
	fileCfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		fileCfg = *loaded
	}

	envCfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}

	cfg := envCfg.MergeWithDefaults(fileCfg)
	cfg = cfg.MergeWithDefaults(config.DefaultConfig())
	if !cfg.EnableTesseract {
		cfg.EnableTesseract = fileCfg.EnableTesseract
	}
	if !cfg.JSONLogs {
		cfg.JSONLogs = fileCfg.JSONLogs
	}
	if !cfg.Verbose {
		cfg.Verbose = fileCfg.Verbose
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
