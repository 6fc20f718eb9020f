package fields

import "regexp"

var emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)

// phoneRes are tried in order: international prefix, parenthesized area
// code, plain digit groups. The first pattern with any match wins.
var phoneRes = []*regexp.Regexp{
	regexp.MustCompile(`\+\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`),
}

// Email returns the first email address in the text, or "".
func (e *Extractor) Email(text string) string {
	return emailRe.FindString(text)
}

// Phone returns the first phone number in the text, or "".
func (e *Extractor) Phone(text string) string {
	for _, re := range phoneRes {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}
