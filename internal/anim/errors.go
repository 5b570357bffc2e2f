package anim

import (
	"errors"
	"fmt"
)

// Domain errors for animation runs.
var (
	// ErrEmptyInput indicates the input contained no parseable integers.
	ErrEmptyInput = errors.New("anim: please enter valid numbers separated by commas")

	// ErrUnknownAlgorithm indicates the requested algorithm is not registered.
	ErrUnknownAlgorithm = errors.New("anim: unknown algorithm")

	// ErrInvalidSpeed indicates a speed multiplier that is zero, negative or NaN.
	ErrInvalidSpeed = errors.New("anim: speed must be positive")

	// ErrCancelled is returned from checkpoints once the run has been cancelled.
	ErrCancelled = errors.New("anim: run cancelled")
)

// InputError wraps a validation failure with the raw text the user supplied.
type InputError struct {
	Raw string
	Err error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%v (got %q)", e.Err, e.Raw)
}

func (e *InputError) Unwrap() error {
	return e.Err
}
