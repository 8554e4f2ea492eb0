package markup

import (
	"errors"
	"fmt"
)

// ErrOutputNotWritable is reported if a document cannot be flushed to its
// output destination. Errors returned from Document.Close match it with
// errors.Is.
var ErrOutputNotWritable = errors.New("output destination not writable")

// OutputError records a failed flush of a document and the destination
// which caused it.
type OutputError struct {
	Target string // file path, or "stdout" / "writer"
	Err    error  // underlying I/O error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("markup: %s: %s: %v", ErrOutputNotWritable, e.Target, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *OutputError) Unwrap() error {
	return e.Err
}

// Is reports ErrOutputNotWritable as a match.
func (e *OutputError) Is(target error) bool {
	return target == ErrOutputNotWritable
}
