package msdata

import (
	"errors"
	"fmt"
)

// Sentinel errors for list contract violations.
var (
	// ErrIndexOutOfRange is returned when an index is not below Size().
	ErrIndexOutOfRange = errors.New("msdata: index out of range")

	// ErrNilElement is returned when a list cannot produce an element.
	ErrNilElement = errors.New("msdata: nil element")

	// ErrNilInner is returned when a wrapper is built without an inner list.
	ErrNilInner = errors.New("msdata: nil inner list")
)

// IndexError describes an out-of-range access on a list.
type IndexError struct {
	op    string
	index int
	size  int
}

// Error returns the error string.
func (e *IndexError) Error() string {
	return fmt.Sprintf("msdata: %s: index %d out of range (size %d)", e.op, e.index, e.size)
}

// Is reports whether the target error matches IndexError.
// This allows errors.Is(indexErr, ErrIndexOutOfRange) to return true.
func (e *IndexError) Is(err error) bool {
	return err == ErrIndexOutOfRange
}

// Op returns the operation that failed.
func (e *IndexError) Op() string { return e.op }

// Index returns the rejected index.
func (e *IndexError) Index() int { return e.index }

// Size returns the list size at the time of the call.
func (e *IndexError) Size() int { return e.size }

// NewIndexError returns an IndexError for op.
func NewIndexError(op string, index, size int) *IndexError {
	return &IndexError{op: op, index: index, size: size}
}

// IsIndexOutOfRange returns true if the error is an IndexError.
func IsIndexOutOfRange(err error) bool {
	if err == nil {
		return false
	}
	var e *IndexError
	return errors.As(err, &e) || errors.Is(err, ErrIndexOutOfRange)
}

// CheckIndex returns an IndexError when index is outside [0, size).
func CheckIndex(op string, index, size int) error {
	if index < 0 || index >= size {
		return NewIndexError(op, index, size)
	}
	return nil
}
