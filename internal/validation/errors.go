package validation

import "fmt"

// PolicyError describes an upload that violates the configured policy.
type PolicyError struct {
	Filename string
	Reason   string
}

func (e *PolicyError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("upload rejected (%s): %s", e.Filename, e.Reason)
	}
	return fmt.Sprintf("upload rejected: %s", e.Reason)
}
