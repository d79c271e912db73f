package internal

import "github.com/pkg/errors"

// Threading errors up and down the cavity walk of the incremental engine would
// add a lot of noise for conditions that can only arise from degenerate input.
// Instead, we use panics, and the engine boundary recovers to convert to an
// error.
//
// This is a struct rather than a bare error so that runtime errors (which are
// also errors) are not mistaken for ours and still crash loudly.
type TriangulateError struct {
	error
}

func (e TriangulateError) Unwrap() error {
	return e.error
}

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(TriangulateError{errors.Errorf(format, args...)})
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError
		}
		panic(r)
	}
	return nil
}
