// Package extract turns heterogeneous resume documents into plain text,
// falling back to optical recognition when direct decoding comes up short.
package extract

import (
	"context"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-intake/internal/ocr"
)

// Default extraction thresholds.
const (
	// DefaultPDFTextThreshold is the minimum count of non-whitespace
	// characters for a PDF text layer to be considered sufficient.
	DefaultPDFTextThreshold = 100
	// DefaultPDFRenderDPI is the rasterization resolution for the OCR
	// fallback path.
	DefaultPDFRenderDPI = 200
)

// Extractor extracts plain text from raw document bytes, dispatching on
// the filename suffix.
type Extractor struct {
	recognizer       *ocr.Recognizer
	pdfTextThreshold int
	pdfRenderDPI     float64
	log              *zap.Logger
}

// Option customizes an Extractor.
type Option func(*Extractor)

// WithPDFTextThreshold overrides the PDF text-layer sufficiency threshold.
func WithPDFTextThreshold(chars int) Option {
	return func(e *Extractor) { e.pdfTextThreshold = chars }
}

// WithPDFRenderDPI overrides the rasterization resolution.
func WithPDFRenderDPI(dpi float64) Option {
	return func(e *Extractor) { e.pdfRenderDPI = dpi }
}

// WithLogger attaches a logger for best-effort diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(e *Extractor) { e.log = log }
}

// New creates an Extractor using the given OCR recognizer for image-based
// tiers.
func New(recognizer *ocr.Recognizer, opts ...Option) *Extractor {
	e := &Extractor{
		recognizer:       recognizer,
		pdfTextThreshold: DefaultPDFTextThreshold,
		pdfRenderDPI:     DefaultPDFRenderDPI,
		log:              zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract produces a single plain-text string from raw bytes. Decoding
// failures degrade to partial or empty text; the only error ever returned
// is *UnsupportedFileTypeError for an unrecognized suffix.
func (e *Extractor) Extract(ctx context.Context, data []byte, filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return e.extractPDF(ctx, data), nil
	case ".docx", ".doc":
		return e.extractWordDocument(data), nil
	case ".png", ".jpg", ".jpeg", ".tiff", ".bmp":
		return e.extractImage(ctx, data), nil
	default:
		return "", &UnsupportedFileTypeError{Filename: filename}
	}
}

// countNonWhitespace returns the number of non-whitespace runes in s.
func countNonWhitespace(s string) int {
	n := 0
	for _, r := range s {
		if !isSpace(r) {
			n++
		}
	}
	return n
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
