// Package ocr adapts interchangeable optical-character-recognition engines
// behind a single text-recognition entry point.
package ocr

import (
	"context"
	"image"
	"strings"

	"go.uber.org/zap"
)

// Region is one recognized text span with the engine's confidence in it,
// in reading order.
type Region struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// Engine produces text regions from a single document-page image.
// Engines that do not score their output (the legacy tier) report full
// confidence so no region is dropped.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, img image.Image) ([]Region, error)
}

// Recognizer tries an explicit ordered list of engines and keeps the first
// successful result. The zero engine list is the designed worst case:
// Recognize then always returns "".
type Recognizer struct {
	engines       []Engine
	minConfidence float64
	log           *zap.Logger
}

// NewRecognizer builds a Recognizer over the given engine preference order.
// Regions scored at or below minConfidence are discarded.
func NewRecognizer(engines []Engine, minConfidence float64, log *zap.Logger) *Recognizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Recognizer{
		engines:       engines,
		minConfidence: minConfidence,
		log:           log,
	}
}

// Recognize converts a page image to text. Engine failures fall through to
// the next engine; with no engine left the result is "" and never an error.
func (r *Recognizer) Recognize(ctx context.Context, img image.Image) string {
	for _, engine := range r.engines {
		regions, err := engine.Recognize(ctx, img)
		if err != nil {
			r.log.Warn("ocr engine failed, trying next",
				zap.String("engine", engine.Name()),
				zap.Error(err))
			continue
		}
		if len(regions) == 0 {
			r.log.Debug("ocr engine returned no regions",
				zap.String("engine", engine.Name()))
			continue
		}

		kept := make([]string, 0, len(regions))
		for _, region := range regions {
			if region.Confidence > r.minConfidence {
				kept = append(kept, region.Text)
			}
		}
		return strings.TrimSpace(strings.Join(kept, " "))
	}

	if len(r.engines) == 0 {
		r.log.Debug("no ocr engine available")
	}
	return ""
}

// Engines returns the names of the configured engines in preference order.
func (r *Recognizer) Engines() []string {
	names := make([]string, len(r.engines))
	for i, engine := range r.engines {
		names[i] = engine.Name()
	}
	return names
}
