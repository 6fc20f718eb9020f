package ner

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/resume-intake/internal/llm"
)

// GeminiRecognizer tags entities with a hosted Gemini model. It stands in
// for a local statistical NER model: deployments without an API key run
// without a recognizer and the field extractors fall back to their
// pattern heuristics.
type GeminiRecognizer struct {
	client llm.Client
	log    *zap.Logger
}

// NewGeminiRecognizer wraps an LLM client as an entity recognizer.
func NewGeminiRecognizer(client llm.Client, log *zap.Logger) *GeminiRecognizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &GeminiRecognizer{client: client, log: log}
}

type entityResponse struct {
	Entities []Entity `json:"entities"`
}

// Entities implements Recognizer. The model response is schema-validated
// before use; anything malformed is reported as an error so the caller
// can fall back to pattern extraction.
func (g *GeminiRecognizer) Entities(ctx context.Context, text string) ([]Entity, error) {
	if text == "" {
		return nil, nil
	}

	jsonResp, err := g.client.GenerateJSON(ctx, buildEntityPrompt(text), llm.TierLite)
	if err != nil {
		return nil, fmt.Errorf("entity tagging failed: %w", err)
	}

	if err := validateEntityJSON(jsonResp); err != nil {
		return nil, fmt.Errorf("entity response rejected: %w", err)
	}

	var parsed entityResponse
	if err := json.Unmarshal([]byte(jsonResp), &parsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entity response: %w", err)
	}

	g.log.Debug("tagged entities", zap.Int("count", len(parsed.Entities)))
	return parsed.Entities, nil
}

func buildEntityPrompt(text string) string {
	return fmt.Sprintf(`Tag the named entities in the text below.

Return JSON of the shape {"entities": [{"text": "...", "label": "..."}]}.
Allowed labels: PERSON (a person's name), GPE (a city, state, or country),
LOC (any other physical location). List entities in the order they appear.
Do not invent entities that are not literally present in the text.

Text:
%s`, text)
}
