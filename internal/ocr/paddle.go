package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"time"
)

// PaddleEngine calls a PaddleOCR serving sidecar over HTTP. The sidecar
// returns scored text regions in reading order, which lets the recognizer
// apply its confidence filter.
type PaddleEngine struct {
	endpoint string
	client   *http.Client
}

// NewPaddleEngine creates an engine backed by the serving endpoint.
func NewPaddleEngine(endpoint string, timeout time.Duration) *PaddleEngine {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &PaddleEngine{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Name implements Engine.
func (p *PaddleEngine) Name() string { return "paddleocr" }

type paddleRequest struct {
	Image string `json:"image"` // base64-encoded PNG
}

type paddleResponse struct {
	Regions []Region `json:"regions"`
}

// Recognize implements Engine.
func (p *PaddleEngine) Recognize(ctx context.Context, img image.Image) ([]Region, error) {
	var encoded bytes.Buffer
	if err := png.Encode(&encoded, img); err != nil {
		return nil, fmt.Errorf("failed to encode page image: %w", err)
	}

	body, err := json.Marshal(paddleRequest{
		Image: base64.StdEncoding.EncodeToString(encoded.Bytes()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ocr request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build ocr request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ocr service unreachable: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ocr service returned status %d", resp.StatusCode)
	}

	var decoded paddleResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode ocr response: %w", err)
	}

	return decoded.Regions, nil
}
