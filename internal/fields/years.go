package fields

import (
	"regexp"
	"strconv"
)

// yearsRes match "N(+) years (of) experience" phrasings in either order.
var yearsRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(?:of\s*)?experience`),
	regexp.MustCompile(`(?i)experience[:\s]*(\d+)\+?\s*years?`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*in\s*(?:software|development|engineering)`),
}

// YearsExperience extracts the stated years of experience. Values outside
// 0 through MaxYearsExperience are treated as absent and the next pattern
// is tried; nil means not found.
func (e *Extractor) YearsExperience(text string) *int {
	for _, re := range yearsRes {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		years, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if years >= 0 && years <= e.cfg.MaxYearsExperience {
			return &years
		}
	}
	return nil
}
