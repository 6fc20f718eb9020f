package fields

import "regexp"

// summaryHeaderRes are tried in order; each candidate section must fall
// inside the configured length window or the next label is tried.
var summaryHeaderRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Professional\s+)?Summary[:\s]*\n?`),
	regexp.MustCompile(`(?i)(?:Career\s+)?Objective[:\s]*\n?`),
	regexp.MustCompile(`(?i)Profile[:\s]*\n?`),
}

// Summary extracts a labeled summary/objective/profile section, collapsed
// to a single line. Sections shorter than SummaryMinLen or longer than
// SummaryMaxLen are treated as not found.
func (e *Extractor) Summary(text string) string {
	for _, headerRe := range summaryHeaderRes {
		section := captureSection(text, headerRe, nextHeaderRe, blankLineRe)
		if section == "" {
			continue
		}
		summary := collapseWS(section)
		if len(summary) >= e.cfg.SummaryMinLen && len(summary) <= e.cfg.SummaryMaxLen {
			return summary
		}
	}
	return ""
}
