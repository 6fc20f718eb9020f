package fields

import (
	"regexp"
	"strings"
)

var (
	linkedinRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)https?://(?:www\.)?linkedin\.com/in/[\w-]+`),
		regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`),
	}
	githubRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)https?://(?:www\.)?github\.com/[\w-]+`),
		regexp.MustCompile(`(?i)github\.com/[\w-]+`),
	}
)

// LinkedInURL returns the candidate's LinkedIn profile URL, normalized to
// carry an https:// scheme, or "".
func (e *Extractor) LinkedInURL(text string) string {
	return firstURL(text, linkedinRes)
}

// GitHubURL returns the candidate's GitHub profile URL, normalized to
// carry an https:// scheme, or "".
func (e *Extractor) GitHubURL(text string) string {
	return firstURL(text, githubRes)
}

func firstURL(text string, res []*regexp.Regexp) string {
	for _, re := range res {
		if url := re.FindString(text); url != "" {
			if !strings.HasPrefix(url, "http") {
				url = "https://" + url
			}
			return url
		}
	}
	return ""
}
