// Package ner provides named-entity annotation for resume text.
package ner

import "context"

// Entity labels produced by recognizer backends.
const (
	LabelPerson   = "PERSON"
	LabelGPE      = "GPE"
	LabelLocation = "LOC"
)

// Entity is a tagged span of text.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Recognizer tags entities in a piece of text.
// Implementations must be safe for concurrent use.
type Recognizer interface {
	Entities(ctx context.Context, text string) ([]Entity, error)
}
