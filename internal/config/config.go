// Package config provides configuration loading and validation for the service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the service configuration. Values can be loaded from a
// JSON file and overridden by environment variables; missing values fall back
// to defaults.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Extraction
	APIKey            string `json:"api_key,omitempty"`            // Gemini API key for entity recognition
	OCREndpoint       string `json:"ocr_endpoint,omitempty"`       // PaddleOCR sidecar URL (empty disables it)
	OCRTimeoutSeconds int    `json:"ocr_timeout_seconds,omitempty"` // Sidecar request timeout
	EnableTesseract   bool   `json:"enable_tesseract,omitempty"`   // Use the local tesseract engine as fallback
	TesseractLanguage string `json:"tesseract_language,omitempty"` // Tesseract language code

	// Limits
	MaxUploadBytes int64 `json:"max_upload_bytes,omitempty"` // Maximum accepted upload size

	// Behavior
	JSONLogs bool `json:"json_logs,omitempty"` // Emit JSON-encoded logs
	Verbose  bool `json:"verbose,omitempty"`   // Print detailed debug information
}

// DefaultConfig returns the configuration defaults used when neither the
// config file nor the environment supplies a value.
func DefaultConfig() Config {
	return Config{
		Port:              8080,
		OCRTimeoutSeconds: 30,
		TesseractLanguage: "eng",
		MaxUploadBytes:    10 << 20,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables. Unset
// variables leave the corresponding field at its zero value.
func FromEnv() (*Config, error) {
	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		APIKey:            os.Getenv("GEMINI_API_KEY"),
		OCREndpoint:       os.Getenv("OCR_ENDPOINT"),
		TesseractLanguage: os.Getenv("TESSERACT_LANGUAGE"),
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("OCR_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid OCR_TIMEOUT_SECONDS: %v", err)
		}
		cfg.OCRTimeoutSeconds = secs
	}
	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_UPLOAD_BYTES: %v", err)
		}
		cfg.MaxUploadBytes = n
	}
	if v := os.Getenv("ENABLE_TESSERACT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ENABLE_TESSERACT: %v", err)
		}
		cfg.EnableTesseract = b
	}
	if v := os.Getenv("JSON_LOGS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid JSON_LOGS: %v", err)
		}
		cfg.JSONLogs = b
	}

	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.OCRTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'ocr_timeout_seconds' must be non-negative")
	}
	if c.MaxUploadBytes < 0 {
		return fmt.Errorf("config error: 'max_upload_bytes' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
// This is used to apply config file values as defaults for environment overrides.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.OCREndpoint == "" {
		result.OCREndpoint = defaults.OCREndpoint
	}
	if result.OCRTimeoutSeconds == 0 {
		result.OCRTimeoutSeconds = defaults.OCRTimeoutSeconds
	}
	if result.TesseractLanguage == "" {
		result.TesseractLanguage = defaults.TesseractLanguage
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = defaults.MaxUploadBytes
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (environment overrides should always win for bools)

	return result
}
