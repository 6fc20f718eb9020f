package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-intake/internal/ner"
)

func TestLocation_Patterns(t *testing.T) {
	e := NewDefault()

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "explicit label",
			text:     "Location: Austin, TX\njane@example.com",
			expected: "Austin, TX",
		},
		{
			name:     "based in label",
			text:     "Based in Berlin, Germany",
			expected: "Berlin, Germany",
		},
		{
			name:     "city state pattern",
			text:     "Jane Public\nSan Francisco, CA\njane@example.com",
			expected: "Francisco, CA",
		},
		{
			name:     "city country pattern",
			text:     "Jane Public lives in Toronto, Canada these days",
			expected: "Toronto, Canada",
		},
		{
			name:     "lowercase text does not match",
			text:     "currently in san francisco, ca",
			expected: "",
		},
		{
			name:     "none present",
			text:     "Jane Public\nSoftware Engineer",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, e.Location(tt.text, nil))
		})
	}
}

func TestLocation_EntityPrecedence(t *testing.T) {
	e := NewDefault()
	text := "Location: Austin, TX"

	t.Run("geopolitical entity wins over label", func(t *testing.T) {
		entities := []ner.Entity{{Text: "Seattle", Label: ner.LabelGPE}}
		assert.Equal(t, "Seattle", e.Location(text, entities))
	})

	t.Run("location label also accepted", func(t *testing.T) {
		entities := []ner.Entity{{Text: "Pacific Northwest", Label: ner.LabelLocation}}
		assert.Equal(t, "Pacific Northwest", e.Location(text, entities))
	})

	t.Run("person entities ignored", func(t *testing.T) {
		entities := []ner.Entity{{Text: "Jane Public", Label: ner.LabelPerson}}
		assert.Equal(t, "Austin, TX", e.Location(text, entities))
	})

	t.Run("invalid entity falls to patterns", func(t *testing.T) {
		entities := []ner.Entity{{Text: "NY", Label: ner.LabelGPE}}
		assert.Equal(t, "Austin, TX", e.Location(text, entities))
	})
}
