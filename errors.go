package mvector

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned for an index or buffer window outside the valid range.
	ErrOutOfRange = errors.New("index out of range")

	// ErrLengthMismatch is returned when two vector operands differ in length.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrDivisionByZero is returned for integer division or modulo by zero.
	ErrDivisionByZero = errors.New("integer division by zero")

	// ErrAllocation is returned when a buffer cannot be allocated.
	ErrAllocation = errors.New("allocation failed")

	// ErrNarrowing is returned when a scalar cannot be represented exactly in the element type.
	ErrNarrowing = errors.New("scalar not representable in element type")

	// ErrInvalidLength is returned for a negative length.
	ErrInvalidLength = errors.New("invalid length")

	// ErrCorrupt is returned when encoded vector data is malformed.
	ErrCorrupt = errors.New("corrupt vector encoding")

	// ErrKindMismatch is returned when encoded data holds a different element kind.
	ErrKindMismatch = errors.New("element kind mismatch")
)

// IndexError reports an access outside [0, Length).
//
// It matches ErrOutOfRange via errors.Is.
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index out of range: index %d, length %d", e.Index, e.Length)
}

func (e *IndexError) Unwrap() error { return ErrOutOfRange }

// BufferBoundsError reports a raw buffer window that does not fit its source.
//
// It matches ErrOutOfRange via errors.Is.
type BufferBoundsError struct {
	Offset    int
	Count     int
	BufferLen int
}

func (e *BufferBoundsError) Error() string {
	return fmt.Sprintf("buffer window out of range: offset %d, count %d, buffer length %d", e.Offset, e.Count, e.BufferLen)
}

func (e *BufferBoundsError) Unwrap() error { return ErrOutOfRange }

// LengthMismatchError reports vector operands of different lengths.
//
// It matches ErrLengthMismatch via errors.Is.
type LengthMismatchError struct {
	Left  int
	Right int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: %d vs %d", e.Left, e.Right)
}

func (e *LengthMismatchError) Unwrap() error { return ErrLengthMismatch }

// AllocationError reports a buffer that could not be obtained.
//
// It matches ErrAllocation and the underlying cause (for example
// resource.ErrMemoryLimitExceeded) via errors.Is.
type AllocationError struct {
	Elements int
	Bytes    int64
	cause    error
}

func (e *AllocationError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("allocation failed: %d elements (%d bytes)", e.Elements, e.Bytes)
	}
	return fmt.Sprintf("allocation failed: %d elements (%d bytes): %v", e.Elements, e.Bytes, e.cause)
}

func (e *AllocationError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrAllocation}
	}
	return []error{ErrAllocation, e.cause}
}

func invalidLength(n int) error {
	return fmt.Errorf("%w: %d", ErrInvalidLength, n)
}
