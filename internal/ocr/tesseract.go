package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// TesseractEngine is the legacy fallback tier. It returns the raw
// recognized text as a single full-confidence region so the recognizer's
// confidence filter never discards it.
type TesseractEngine struct {
	language string
}

// NewTesseractEngine creates a Tesseract-backed engine. An empty language
// defaults to English.
func NewTesseractEngine(language string) *TesseractEngine {
	if language == "" {
		language = "eng"
	}
	return &TesseractEngine{language: language}
}

// Name implements Engine.
func (t *TesseractEngine) Name() string { return "tesseract" }

// Recognize implements Engine. A fresh client per call: gosseract clients
// are not safe for concurrent use.
func (t *TesseractEngine) Recognize(ctx context.Context, img image.Image) ([]Region, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var encoded bytes.Buffer
	if err := png.Encode(&encoded, img); err != nil {
		return nil, fmt.Errorf("failed to encode page image: %w", err)
	}

	client := gosseract.NewClient()
	defer func() { _ = client.Close() }()

	if err := client.SetLanguage(t.language); err != nil {
		return nil, fmt.Errorf("failed to set tesseract language: %w", err)
	}
	if err := client.SetImageFromBytes(encoded.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to load image into tesseract: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("tesseract recognition failed: %w", err)
	}

	return []Region{{Text: strings.TrimSpace(text), Confidence: 1.0}}, nil
}
