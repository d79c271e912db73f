package internal

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// Returned by Pairs when a coordinate list can't be split into (x, y) pairs.
// The pipeline treats this as an early exit rather than a failure.
var ErrUnpaired = errors.New("coordinate count is odd")

type InputNotFoundError struct {
	Path string
	Err  error
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("input %q not found: %v", e.Path, e.Err)
}

func (e *InputNotFoundError) Unwrap() error {
	return e.Err
}

// Always matches os.ErrNotExist, even if the underlying error was something
// else that we decided means "missing".
func (e *InputNotFoundError) Is(target error) bool {
	return target == os.ErrNotExist
}

// Malformed JSON. Location is 1-based line and column, plus the 0-based byte
// offset, the same way most JSON tooling reports it.
type DecodeError struct {
	Path   string
	Line   int
	Column int
	Offset int64
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v: line %d column %d (char %d)", e.Err, e.Line, e.Column, e.Offset)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
