package fields

import (
	"regexp"
	"strings"
)

// Section boundary patterns. RE2 has no lookahead, so sections are captured
// by locating the header match and then the nearest stop pattern in the
// remainder.
var (
	// A capitalized, colon-terminated line such as "Education:" or
	// "Technical Skills:".
	nextHeaderRe = regexp.MustCompile(`\n\s*[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\s*:`)
	// Variant anchored directly after the newline (no leading whitespace).
	nextHeaderTightRe = regexp.MustCompile(`\n[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\s*:`)
	blankLineRe       = regexp.MustCompile(`\n\s*\n`)
)

// captureSection returns the trimmed text between the end of the first
// headerRe match and the nearest following stop pattern, or "" when the
// header does not occur. With no stop match the section runs to the end of
// the text.
func captureSection(text string, headerRe *regexp.Regexp, stops ...*regexp.Regexp) string {
	loc := headerRe.FindStringIndex(text)
	if loc == nil {
		return ""
	}

	rest := text[loc[1]:]
	end := len(rest)
	for _, stop := range stops {
		if m := stop.FindStringIndex(rest); m != nil && m[0] < end {
			end = m[0]
		}
	}

	return strings.TrimSpace(rest[:end])
}
