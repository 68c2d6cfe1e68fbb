package crypto

import (
	"errors"
	"fmt"
)

// ErrInvalidLength is matched by every *InvalidLengthError through errors.Is.
var ErrInvalidLength = errors.New("[crypto] invalid buffer length")

// InvalidLengthError is returned when a buffer passed to a primitive
// does not have the fixed size that primitive requires.
// Buffers are never truncated or padded.
type InvalidLengthError struct {
	What string
	Got  int
	Want int
}

// NewInvalidLengthError returns an *InvalidLengthError for the named buffer.
func NewInvalidLengthError(what string, got, want int) *InvalidLengthError {
	return &InvalidLengthError{What: what, Got: got, Want: want}
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("[crypto] %s must be %d bytes (got %d)", e.What, e.Want, e.Got)
}

// Is reports whether target is ErrInvalidLength.
func (e *InvalidLengthError) Is(target error) bool {
	return target == ErrInvalidLength
}
