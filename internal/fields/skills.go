package fields

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

var (
	skillsHeaderRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:Technical\s+)?Skills[:\s]*\n?`),
		regexp.MustCompile(`(?i)Technologies[:\s]*\n?`),
	}
	// Runs of two or more delimiter/whitespace characters split skill
	// tokens; a lone comma or hyphen inside a token does not.
	skillSplitRe = regexp.MustCompile(`[,•\n|;·\-\s]{2,}`)
)

// techVocabulary is the fixed set of common technology names probed against
// the full text regardless of section labels.
var techVocabulary = []string{
	"Python", "JavaScript", "Java", "C++", "C#", "TypeScript", "Go", "Rust",
	"React", "Angular", "Vue.js", "Node.js", "Django", "Flask", "Spring",
	"MongoDB", "PostgreSQL", "MySQL", "Redis", "AWS", "Azure", "Docker",
	"Kubernetes", "Git", "Linux", "REST API", "GraphQL", "Machine Learning",
	"TensorFlow", "PyTorch", "SQL", "HTML", "CSS", "Bootstrap", "Tailwind",
}

// Skills extracts a deduplicated skill list from a labeled skills section
// plus a vocabulary presence scan, capped at MaxSkills. Output order is
// not significant but is kept stable for callers and tests.
func (e *Extractor) Skills(text string) []string {
	set := make(map[string]struct{})

	for _, headerRe := range skillsHeaderRes {
		section := captureSection(text, headerRe, blankLineRe, nextHeaderTightRe)
		if section == "" {
			continue
		}
		for _, token := range skillSplitRe.Split(section, -1) {
			token = strings.TrimSpace(token)
			if isSkillToken(token) {
				set[token] = struct{}{}
			}
		}
	}

	lower := strings.ToLower(text)
	for _, skill := range techVocabulary {
		if strings.Contains(lower, strings.ToLower(skill)) {
			set[skill] = struct{}{}
		}
	}

	skills := make([]string, 0, len(set))
	for skill := range set {
		skills = append(skills, skill)
	}
	sort.Strings(skills)

	if len(skills) > e.cfg.MaxSkills {
		skills = skills[:e.cfg.MaxSkills]
	}
	return skills
}

// isSkillToken accepts tokens of 2-25 characters that are alphanumeric
// once spaces and the ".+#" characters are ignored.
func isSkillToken(token string) bool {
	if len(token) < 2 || len(token) > 25 {
		return false
	}

	stripped := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '.', '+', '#':
			return -1
		}
		return r
	}, token)
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
