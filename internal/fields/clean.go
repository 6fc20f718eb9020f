// Package fields infers structured resume fields from cleaned plain text.
//
// Every extractor is a pure function of its inputs: identical text (and
// entity annotations, where accepted) always produces identical output.
// Extractors never fail; an undetected field is reported as its empty or
// sentinel value.
package fields

import (
	"regexp"
	"strings"
)

var (
	// Characters outside a conservative whitelist are replaced with spaces.
	disallowedCharRe = regexp.MustCompile(`[^\w\s@.,()\-+/:#]`)
	horizontalWSRe   = regexp.MustCompile(`[ \t]+`)
	excessBlankRe    = regexp.MustCompile(`\n{3,}`)
	multiWSRe        = regexp.MustCompile(`\s+`)
)

// CleanText normalizes raw extracted text before field inference.
// Line structure is preserved: several extractors depend on line
// boundaries and on blank lines separating experience blocks.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = disallowedCharRe.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(horizontalWSRe.ReplaceAllString(line, " "))
	}
	text = strings.Join(lines, "\n")

	// Cap consecutive blank lines at one so block splitting stays stable.
	text = excessBlankRe.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

// collapseWS flattens any whitespace runs (including newlines) to single
// spaces. Used when a captured section is reported as one string.
func collapseWS(s string) string {
	return strings.TrimSpace(multiWSRe.ReplaceAllString(s, " "))
}
