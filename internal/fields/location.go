package fields

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-intake/internal/ner"
)

// Location patterns are deliberately case-sensitive: "City, ST" and
// "City, Country" shapes rely on capitalization.
var locationRes = []*regexp.Regexp{
	regexp.MustCompile(`(?:Location|Address|Based in)[:\s]*([^\n]+)`),
	regexp.MustCompile(`([A-Z][a-z]+,\s*[A-Z]{2})`),
	regexp.MustCompile(`([A-Z][a-z]+,\s*[A-Z][a-z]+)`),
}

// Location extracts the candidate's location. Entities, when provided,
// must have been computed over the head of the same text
// (Config.LocationScanRunes). Geopolitical entities win over patterns.
func (e *Extractor) Location(text string, entities []ner.Entity) string {
	for _, ent := range entities {
		if ent.Label != ner.LabelGPE && ent.Label != ner.LabelLocation {
			continue
		}
		location := strings.TrimSpace(ent.Text)
		if isValidLocation(location) {
			return location
		}
	}

	for _, re := range locationRes {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		location := strings.TrimSpace(m[1])
		if isValidLocation(location) {
			return location
		}
	}

	return ""
}

// isValidLocation rejects strings outside 3-50 characters and anything
// that smells like contact info.
func isValidLocation(location string) bool {
	if len(location) < 3 || len(location) > 50 {
		return false
	}
	for _, marker := range []string{"@", "http", "www"} {
		if strings.Contains(location, marker) {
			return false
		}
	}
	return true
}
