package fields

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-intake/internal/types"
)

var (
	experienceHeaderRe = regexp.MustCompile(`(?i)(?:Work\s+|Professional\s+)?Experience[:\s]*\n?`)
	experienceStopRe   = regexp.MustCompile(`(?i)\n\s*(?:Education|Skills|Projects)\s*:`)

	dateHintRe  = regexp.MustCompile(`(?i)\d{4}|present|current`)
	cityStateRe = regexp.MustCompile(`[A-Z][a-z]+,\s*[A-Z]{2}`)

	// Date-range patterns tried in order: month-name ranges, bare year
	// ranges, numeric month/year ranges.
	dateRangeRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4})\s*[-–—to]\s*((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}|present|current)`),
		regexp.MustCompile(`(?i)(\d{4})\s*[-–—to]\s*(\d{4}|present|current)`),
		regexp.MustCompile(`(?i)(\d{1,2}/\d{4})\s*[-–—to]\s*(\d{1,2}/\d{4}|present|current)`),
	}

	companyMarkers = []string{"inc", "llc", "corp", "company", "technologies"}
	roleMarkers    = []string{"engineer", "developer", "manager", "analyst", "director"}
)

// Experience extracts work-history entries from a labeled experience
// section. Blocks are separated by blank lines; at most MaxExperience
// entries are returned and blocks under 20 characters are skipped.
func (e *Extractor) Experience(text string) []types.WorkExperience {
	section := captureSection(text, experienceHeaderRe, experienceStopRe)
	if section == "" {
		return nil
	}

	var entries []types.WorkExperience
	for _, block := range blankLineRe.Split(section, -1) {
		block = strings.TrimSpace(block)
		if len(block) < 20 {
			continue
		}
		if entry := e.parseJobBlock(block); entry != nil {
			entries = append(entries, *entry)
		}
		if len(entries) == e.cfg.MaxExperience {
			break
		}
	}
	return entries
}

// parseJobBlock classifies the first four lines of a block as company,
// title, date range, or location; everything else becomes description.
// A block yields an entry only if a company or a title was found.
func (e *Extractor) parseJobBlock(block string) *types.WorkExperience {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return nil
	}

	var company, title, dates, location string
	var description []string

	head := lines
	if len(head) > 4 {
		head = lines[:4]
	}
	for _, line := range head {
		lower := strings.ToLower(line)
		switch {
		case company == "" && containsAny(lower, companyMarkers):
			company = line
		case title == "" && containsAny(lower, roleMarkers):
			title = line
		case dates == "" && dateHintRe.MatchString(line):
			dates = line
		case location == "" && cityStateRe.MatchString(line):
			location = line
		default:
			description = append(description, line)
		}
	}
	if len(lines) > 4 {
		description = append(description, lines[4:]...)
	}

	if company == "" && title == "" {
		return nil
	}

	start, end := parseDateRange(dates)
	if len(description) > e.cfg.MaxDescriptionLines {
		description = description[:e.cfg.MaxDescriptionLines]
	}

	entry := &types.WorkExperience{
		Company:     company,
		Title:       title,
		Location:    location,
		StartDate:   start,
		EndDate:     end,
		Description: strings.Join(description, "\n"),
	}
	if entry.Company == "" {
		entry.Company = types.UnknownCompany
	}
	if entry.Title == "" {
		entry.Title = types.UnknownPosition
	}
	return entry
}

// parseDateRange splits a date line into start and end dates. A trailing
// "present"/"current" end date is normalized to the literal "Present".
func parseDateRange(dates string) (string, string) {
	if dates == "" {
		return "", ""
	}
	for _, re := range dateRangeRes {
		m := re.FindStringSubmatch(dates)
		if m == nil {
			continue
		}
		start := strings.TrimSpace(m[1])
		end := strings.TrimSpace(m[2])
		switch strings.ToLower(end) {
		case "present", "current":
			end = "Present"
		}
		return start, end
	}
	return "", ""
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
