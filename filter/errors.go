package filter

import (
	"errors"
	"fmt"
)

// ErrNoArray is returned by Apply when the document has no array under the key.
var ErrNoArray = errors.New("no array to filter")

// Error types for filter operations
type (
	// CompilationError indicates a filter expression could not be compiled
	CompilationError struct {
		Expression string
		Reason     string
		Err        error
	}

	// EvaluationError indicates a filter could not be evaluated against an item
	EvaluationError struct {
		Expression string
		Err        error
	}
)

func (e *CompilationError) Error() string {
	return fmt.Sprintf("compilation error in '%s': %s", e.Expression, e.Reason)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation error for filter '%s': %v", e.Expression, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
