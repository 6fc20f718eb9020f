package ocr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDetectEngines(t *testing.T) {
	tests := []struct {
		name     string
		caps     Capabilities
		expected []string
	}{
		{
			name: "both engines",
			caps: Capabilities{
				PaddleEndpoint:    "http://localhost:8866/predict",
				PaddleTimeout:     time.Second,
				EnableTesseract:   true,
				TesseractLanguage: "eng",
			},
			expected: []string{"paddleocr", "tesseract"},
		},
		{
			name:     "paddle only",
			caps:     Capabilities{PaddleEndpoint: "http://localhost:8866/predict"},
			expected: []string{"paddleocr"},
		},
		{
			name:     "tesseract only",
			caps:     Capabilities{EnableTesseract: true},
			expected: []string{"tesseract"},
		},
		{
			name:     "nothing configured",
			caps:     Capabilities{},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engines := DetectEngines(tt.caps, nil)
			names := make([]string, 0, len(engines))
			for _, engine := range engines {
				names = append(names, engine.Name())
			}
			if tt.expected == nil {
				assert.Empty(t, names)
				return
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}
