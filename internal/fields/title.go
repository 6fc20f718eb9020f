package fields

import (
	"regexp"
	"strings"
)

var (
	titleLabelRe = regexp.MustCompile(`(?i)(?:title|position|role):\s*(.+)`)
	// Common engineering and management role shapes, optionally preceded
	// by a seniority qualifier.
	roleRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:Senior|Lead|Principal|Junior)?\s*(?:Software|Full[- ]?Stack|Frontend|Backend|Web|Mobile)?\s*(?:Engineer|Developer|Architect|Manager|Director)\b`),
		regexp.MustCompile(`(?i)\b(?:Product|Project|Engineering|Technical)\s*(?:Manager|Director|Lead)\b`),
	}
)

// Title extracts the current or desired role from the first fifteen lines.
// An explicit "title/position/role:" label wins over role-name patterns.
func (e *Extractor) Title(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > 15 {
		lines = lines[:15]
	}

	for _, line := range lines {
		if m := titleLabelRe.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1])
		}
		for _, re := range roleRes {
			if m := re.FindString(line); strings.TrimSpace(m) != "" {
				return strings.TrimSpace(m)
			}
		}
	}

	return ""
}
