package ocr

import (
	"time"

	"go.uber.org/zap"
)

// Capabilities describes which engines a deployment can use. It is
// resolved once at startup; the recognizer iterates the resulting list
// instead of probing availability per call.
type Capabilities struct {
	// PaddleEndpoint is the PaddleOCR serving URL. Empty disables the
	// primary engine.
	PaddleEndpoint string
	// PaddleTimeout bounds a single serving call.
	PaddleTimeout time.Duration
	// EnableTesseract toggles the legacy fallback tier. Deployments built
	// without libtesseract set this to false.
	EnableTesseract bool
	// TesseractLanguage selects the recognition language, default "eng".
	TesseractLanguage string
}

// DetectEngines builds the ordered engine list for the given capabilities:
// the deep-learning engine first, then the legacy fallback. An empty list
// is valid and downgrades recognition to the empty string.
func DetectEngines(caps Capabilities, log *zap.Logger) []Engine {
	if log == nil {
		log = zap.NewNop()
	}

	var engines []Engine
	if caps.PaddleEndpoint != "" {
		engines = append(engines, NewPaddleEngine(caps.PaddleEndpoint, caps.PaddleTimeout))
	}
	if caps.EnableTesseract {
		engines = append(engines, NewTesseractEngine(caps.TesseractLanguage))
	}

	if len(engines) == 0 {
		log.Warn("no ocr engine configured; image recognition disabled")
	} else {
		names := make([]string, len(engines))
		for i, engine := range engines {
			names[i] = engine.Name()
		}
		log.Info("ocr engines detected", zap.Strings("engines", names))
	}
	return engines
}
