package interleave

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")
	// ErrInvalidTau is returned when the skew parameter is not positive.
	ErrInvalidTau = errors.New("tau must be positive")
	// ErrNoRankers is returned when multileaving is requested without any
	// ranked lists.
	ErrNoRankers = errors.New("at least one ranked list is required")
)

// ErrClickOutOfRange indicates a click position outside the bounds of the
// interleaved result.
type ErrClickOutOfRange struct {
	Position int
	Length   int
}

func (e *ErrClickOutOfRange) Error() string {
	return fmt.Sprintf("click position %d out of range for result of length %d", e.Position, e.Length)
}
