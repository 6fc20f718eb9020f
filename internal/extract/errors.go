package extract

import "fmt"

// UnsupportedFileTypeError indicates a filename suffix the pipeline cannot
// process at all. It is the only refusal the extractor ever reports.
type UnsupportedFileTypeError struct {
	Filename string
}

func (e *UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.Filename)
}
