package resume

import "fmt"

// EmptyInputError indicates caller-side input that cannot be parsed at
// all: a missing filename, an empty buffer, or content over the size
// ceiling. It is reported before extraction is attempted.
type EmptyInputError struct {
	Reason string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("empty input: %s", e.Reason)
}
