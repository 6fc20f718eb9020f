package fields

import "regexp"

var (
	educationHeaderRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Education[:\s]*\n?`),
		regexp.MustCompile(`(?i)Academic\s+Background[:\s]*\n?`),
	}
	educationStopRe = regexp.MustCompile(`(?i)\n\s*(?:Experience|Skills|Projects)\s*:`)
)

// Education extracts a labeled education section as collapsed free text,
// truncated to EducationMaxLen. Sections of ten characters or fewer are
// treated as not found.
func (e *Extractor) Education(text string) string {
	for _, headerRe := range educationHeaderRes {
		section := captureSection(text, headerRe, educationStopRe)
		if section == "" {
			continue
		}
		education := collapseWS(section)
		if len(education) > 10 {
			if len(education) > e.cfg.EducationMaxLen {
				education = education[:e.cfg.EducationMaxLen]
			}
			return education
		}
	}
	return ""
}
