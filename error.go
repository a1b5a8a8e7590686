package charset

import (
	"errors"
	"fmt"
)

// Common character-set errors
var (
	// ErrInvalidRange indicates a range whose lower bound exceeds its upper bound
	ErrInvalidRange = errors.New("invalid range")

	// ErrIndexOutOfBounds indicates an element index outside the set
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrInvalidCut indicates a partition cut outside the interior of the domain
	ErrInvalidCut = errors.New("invalid cut position")
)

// RangeError reports an inverted range passed to a constructor.
type RangeError struct {
	Lo uint16
	Hi uint16
}

// Error implements the error interface
func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range [%#04x, %#04x]: lower bound exceeds upper bound", e.Lo, e.Hi)
}

// Unwrap returns the underlying sentinel error
func (e *RangeError) Unwrap() error {
	return ErrInvalidRange
}

// IndexError reports an element index outside a set's bounds.
type IndexError struct {
	Index int
	Size  int
}

// Error implements the error interface
func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of bounds for set of size %d", e.Index, e.Size)
}

// Unwrap returns the underlying sentinel error
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfBounds
}

// CutError reports a partition cut position outside the interior of the
// code-unit domain.
type CutError struct {
	Position int
}

// Error implements the error interface
func (e *CutError) Error() string {
	return fmt.Sprintf("cut position %d outside interior range [1, %#04x]", e.Position, unitMax)
}

// Unwrap returns the underlying sentinel error
func (e *CutError) Unwrap() error {
	return ErrInvalidCut
}
