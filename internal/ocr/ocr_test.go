package ocr

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubEngine returns canned regions or a canned error.
type stubEngine struct {
	name    string
	regions []Region
	err     error
	calls   int
}

func (s *stubEngine) Name() string { return s.name }

func (s *stubEngine) Recognize(_ context.Context, _ image.Image) ([]Region, error) {
	s.calls++
	return s.regions, s.err
}

func testImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 4, 4))
}

func TestRecognizer_FirstEngineWins(t *testing.T) {
	primary := &stubEngine{name: "primary", regions: []Region{
		{Text: "Jane", Confidence: 0.9},
		{Text: "Public", Confidence: 0.8},
	}}
	fallback := &stubEngine{name: "fallback", regions: []Region{{Text: "unused", Confidence: 1.0}}}

	r := NewRecognizer([]Engine{primary, fallback}, 0.5, nil)
	got := r.Recognize(context.Background(), testImage())

	assert.Equal(t, "Jane Public", got)
	assert.Equal(t, 0, fallback.calls)
}

func TestRecognizer_ConfidenceFilter(t *testing.T) {
	engine := &stubEngine{name: "primary", regions: []Region{
		{Text: "keep", Confidence: 0.9},
		{Text: "drop", Confidence: 0.3},
		{Text: "boundary", Confidence: 0.5}, // not strictly above the threshold
	}}

	r := NewRecognizer([]Engine{engine}, 0.5, nil)
	assert.Equal(t, "keep", r.Recognize(context.Background(), testImage()))
}

func TestRecognizer_FallbackOnError(t *testing.T) {
	broken := &stubEngine{name: "primary", err: errors.New("model unavailable")}
	fallback := &stubEngine{name: "fallback", regions: []Region{{Text: "recovered text", Confidence: 1.0}}}

	r := NewRecognizer([]Engine{broken, fallback}, 0.5, nil)
	assert.Equal(t, "recovered text", r.Recognize(context.Background(), testImage()))
}

func TestRecognizer_FallbackOnEmptyRegions(t *testing.T) {
	empty := &stubEngine{name: "primary"}
	fallback := &stubEngine{name: "fallback", regions: []Region{{Text: "recovered", Confidence: 1.0}}}

	r := NewRecognizer([]Engine{empty, fallback}, 0.5, nil)
	assert.Equal(t, "recovered", r.Recognize(context.Background(), testImage()))
}

func TestRecognizer_NoEngines(t *testing.T) {
	r := NewRecognizer(nil, 0.5, nil)
	assert.Equal(t, "", r.Recognize(context.Background(), testImage()))
}

func TestRecognizer_AllRegionsFiltered(t *testing.T) {
	// An engine that produced regions, all below threshold, still wins the
	// engine selection; the result is empty rather than the next engine's.
	low := &stubEngine{name: "primary", regions: []Region{{Text: "noise", Confidence: 0.1}}}
	fallback := &stubEngine{name: "fallback", regions: []Region{{Text: "unused", Confidence: 1.0}}}

	r := NewRecognizer([]Engine{low, fallback}, 0.5, nil)
	assert.Equal(t, "", r.Recognize(context.Background(), testImage()))
	assert.Equal(t, 0, fallback.calls)
}

func TestRecognizer_Engines(t *testing.T) {
	r := NewRecognizer([]Engine{
		&stubEngine{name: "paddleocr"},
		&stubEngine{name: "tesseract"},
	}, 0.5, nil)
	assert.Equal(t, []string{"paddleocr", "tesseract"}, r.Engines())
}
