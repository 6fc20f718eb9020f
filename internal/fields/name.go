package fields

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-intake/internal/ner"
	"github.com/jonathan/resume-intake/internal/types"
)

// contactMarkers disqualify a line from being a candidate name.
var contactMarkers = []string{
	"@", "phone", "email", "address", "linkedin", "github", "www", "http",
}

// nameBlacklist holds institutional and role words that rule a candidate
// string out as a person name.
var nameBlacklist = []string{
	"university", "college", "institute", "engineer", "developer",
	"manager", "analyst", "consultant", "director", "resume",
}

// Name extracts the candidate's name. Entities, when provided, must have
// been computed over the head of the same text (Config.NameScanRunes).
// Precedence: first valid PERSON entity, then a heuristic scan of the
// first ten non-empty lines, then the sentinel.
func (e *Extractor) Name(text string, entities []ner.Entity) string {
	for _, ent := range entities {
		if ent.Label != ner.LabelPerson {
			continue
		}
		name := strings.TrimSpace(ent.Text)
		if len(strings.Fields(name)) <= 4 && isValidName(name) {
			return name
		}
	}

	seen := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > 10 {
			break
		}
		if len(line) > 60 {
			continue
		}
		if containsAnyFold(line, contactMarkers) {
			continue
		}

		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		if !allCapitalizedAlpha(words) {
			continue
		}
		name := strings.Join(words, " ")
		if isValidName(name) {
			return name
		}
	}

	return types.UnknownName
}

// isValidName reports whether s plausibly names a person: 2-4 name tokens
// of at least two characters each, none of them blacklisted.
func isValidName(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) < 3 {
		return false
	}

	words := strings.Fields(s)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, word := range words {
		if !isNameToken(word) {
			return false
		}
	}

	lower := strings.ToLower(s)
	for _, banned := range nameBlacklist {
		if strings.Contains(lower, banned) {
			return false
		}
	}
	return true
}

// isNameToken accepts alphabetic words and middle initials like "Q.".
func isNameToken(word string) bool {
	runes := []rune(word)
	if len(runes) >= 2 && isAlpha(word) {
		return true
	}
	return len(runes) == 2 && unicode.IsUpper(runes[0]) && runes[1] == '.'
}

func allCapitalizedAlpha(words []string) bool {
	for _, word := range words {
		runes := []rune(word)
		if len(runes) == 0 || !unicode.IsUpper(runes[0]) || !isNameToken(word) {
			return false
		}
	}
	return true
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func containsAnyFold(s string, markers []string) bool {
	lower := strings.ToLower(s)
	for _, m := range markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
