package analysis

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAnalysisFailed marks an unexpected failure inside the pipeline, as
// opposed to a problem with the input document.
var ErrAnalysisFailed = errors.New("analysis failed")

// ValidationError lists every problem found in an input document or in the
// analysis options.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return "validation failed: " + e.Problems[0]
	}
	return fmt.Sprintf("validation failed with %d problems: %s", len(e.Problems), strings.Join(e.Problems, "; "))
}

// IsValidationError reports whether err carries input or option problems.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
