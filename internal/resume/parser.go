// Package resume assembles the extraction pipeline behind a single parse
// entry point.
package resume

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-intake/internal/extract"
	"github.com/jonathan/resume-intake/internal/fields"
	"github.com/jonathan/resume-intake/internal/ner"
	"github.com/jonathan/resume-intake/internal/ocr"
	"github.com/jonathan/resume-intake/internal/types"
)

// Params carries the pipeline thresholds. Defaults are behavioral
// contract; see DefaultParams.
type Params struct {
	// Fields holds the field-inference thresholds.
	Fields fields.Config
	// PDFTextThreshold is the non-whitespace character count above which
	// a PDF text layer is considered sufficient.
	PDFTextThreshold int
	// PDFRenderDPI is the rasterization resolution for the OCR fallback.
	PDFRenderDPI float64
	// OCRMinConfidence drops scored OCR regions at or below this value.
	OCRMinConfidence float64
	// MaxInputBytes rejects oversized uploads before extraction.
	// Zero disables the ceiling.
	MaxInputBytes int
}

// DefaultParams returns the canonical pipeline thresholds.
func DefaultParams() Params {
	return Params{
		Fields:           fields.DefaultConfig(),
		PDFTextThreshold: extract.DefaultPDFTextThreshold,
		PDFRenderDPI:     extract.DefaultPDFRenderDPI,
		OCRMinConfidence: 0.5,
		MaxInputBytes:    10 << 20,
	}
}

// Parser orchestrates text extraction, optical recognition, and field
// inference. All engine and model handles are owned by the Parser and
// constructed once in New; a Parser is safe for concurrent use and keeps
// no per-call state.
type Parser struct {
	params     Params
	extractor  *extract.Extractor
	fields     *fields.Extractor
	recognizer ner.Recognizer
	log        *zap.Logger
}

// Option customizes a Parser.
type Option func(*Parser)

// WithRecognizer attaches a named-entity recognizer. Without one the
// name and location extractors use their pattern fallbacks only.
func WithRecognizer(recognizer ner.Recognizer) Option {
	return func(p *Parser) { p.recognizer = recognizer }
}

// WithLogger attaches a logger for best-effort diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(p *Parser) { p.log = log }
}

// New constructs the pipeline over an explicit ordered list of OCR
// engines (see ocr.DetectEngines).
func New(params Params, engines []ocr.Engine, opts ...Option) *Parser {
	p := &Parser{
		params: params,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	recognizer := ocr.NewRecognizer(engines, params.OCRMinConfidence, p.log)
	p.extractor = extract.New(recognizer,
		extract.WithPDFTextThreshold(params.PDFTextThreshold),
		extract.WithPDFRenderDPI(params.PDFRenderDPI),
		extract.WithLogger(p.log),
	)
	p.fields = fields.New(params.Fields)
	return p
}

// Parse turns raw document bytes into a fully-populated ResumeRecord.
// The only failures are *extract.UnsupportedFileTypeError and
// *EmptyInputError; every other condition degrades to empty or sentinel
// field values.
func (p *Parser) Parse(ctx context.Context, data []byte, filename string) (*types.ResumeRecord, error) {
	if strings.TrimSpace(filename) == "" {
		return nil, &EmptyInputError{Reason: "filename is required"}
	}
	if len(data) == 0 {
		return nil, &EmptyInputError{Reason: "file content is empty"}
	}
	if p.params.MaxInputBytes > 0 && len(data) > p.params.MaxInputBytes {
		return nil, &EmptyInputError{Reason: "file content exceeds size ceiling"}
	}

	p.log.Info("parsing resume", zap.String("filename", filename), zap.Int("bytes", len(data)))

	text, err := p.extractor.Extract(ctx, data, filename)
	if err != nil {
		return nil, err
	}

	record := p.ParseText(ctx, text)
	p.log.Info("parsed resume", zap.String("filename", filename), zap.String("name", record.Name))
	return record, nil
}

// ParseText runs field inference over already-extracted text. It never
// fails; undetected fields hold their empty or sentinel values.
func (p *Parser) ParseText(ctx context.Context, text string) *types.ResumeRecord {
	cleaned := fields.CleanText(text)

	nameEntities := p.entities(ctx, truncateRunes(cleaned, p.params.Fields.NameScanRunes))
	locationEntities := p.entities(ctx, truncateRunes(cleaned, p.params.Fields.LocationScanRunes))

	record := &types.ResumeRecord{
		Name:            p.fields.Name(cleaned, nameEntities),
		Email:           p.fields.Email(cleaned),
		Phone:           p.fields.Phone(cleaned),
		Title:           p.fields.Title(cleaned),
		Summary:         p.fields.Summary(cleaned),
		Skills:          p.fields.Skills(cleaned),
		Experience:      p.fields.Experience(cleaned),
		Education:       p.fields.Education(cleaned),
		Location:        p.fields.Location(cleaned, locationEntities),
		LinkedInURL:     p.fields.LinkedInURL(cleaned),
		GitHubURL:       p.fields.GitHubURL(cleaned),
		YearsExperience: p.fields.YearsExperience(cleaned),
	}
	if record.Experience == nil {
		record.Experience = []types.WorkExperience{}
	}
	return record
}

// entities runs the recognizer when one is configured. Tagging failures
// degrade to no annotations.
func (p *Parser) entities(ctx context.Context, text string) []ner.Entity {
	if p.recognizer == nil || text == "" {
		return nil
	}
	entities, err := p.recognizer.Entities(ctx, text)
	if err != nil {
		p.log.Warn("entity recognition failed, using pattern fallbacks", zap.Error(err))
		return nil
	}
	return entities
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
