package buffer

import "errors"

var (
	// ErrAllocation indicates that the buffer could not grow to the requested
	// size. The buffer is left unchanged.
	ErrAllocation = errors.New("buffer allocation failed")

	// ErrFreed indicates use of a buffer after Free.
	ErrFreed = errors.New("buffer already freed")
)
