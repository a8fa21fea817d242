package trace

import "errors"

// Domain errors for trace generation and playback.
var (
	// ErrInvalidAlgorithm indicates an algorithm selector outside the
	// supported set.
	ErrInvalidAlgorithm = errors.New("trace: invalid algorithm")

	// ErrInvalidInput indicates an input the generator cannot sort, such as
	// a negative size or an empty value range for random sequences.
	ErrInvalidInput = errors.New("trace: invalid input")

	// ErrNoTrace indicates an operation that requires a loaded trace.
	ErrNoTrace = errors.New("trace: no trace loaded")
)
