package buffer

import (
	"fmt"
	"math"
)

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidLength is returned when an encoded sequence does not hold
	// exactly the fixed number of elements of the target buffer.
	ErrInvalidLength = ErrorKind("ErrInvalidLength")

	// ErrInvalidElement is returned when an element of a structured
	// sequence is not an integer in the range 0..255.
	ErrInvalidElement = ErrorKind("ErrInvalidElement")

	// ErrNotSequence is returned when structured input is not a sequence
	// at all, for example a JSON object or a YAML mapping.
	ErrNotSequence = ErrorKind("ErrNotSequence")

	// ErrMalformedPrefix is returned when the uvarint length prefix of the
	// binary codec cannot be read.
	ErrMalformedPrefix = ErrorKind("ErrMalformedPrefix")

	// ErrTrailingData is returned when the binary codec finds bytes after
	// the fixed-length payload.
	ErrTrailingData = ErrorKind("ErrTrailingData")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to decoding a fixed-size buffer.  It has
// full support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string

	// Index is the element position the error refers to.
	Index int
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, index int, desc string) Error {
	return Error{Err: kind, Description: desc, Index: index}
}

// lengthError reports that a sequence of want elements was expected and the
// mismatch was detected at index.
func lengthError(index, want int) Error {
	desc := fmt.Sprintf("invalid length %d, expected a sequence of %d "+
		"elements", index, want)
	return makeError(ErrInvalidLength, index, desc)
}

// LengthError returns the ErrInvalidLength error for a sequence of got
// elements decoded into a buffer of want elements.  A got larger than want
// is reported at want+1, the first disallowed position.
func LengthError(got, want int) error {
	if got > want {
		return lengthError(want+1, want)
	}
	return lengthError(got, want)
}

// clampIndex converts a wire-declared length into an Index value.
func clampIndex(n uint64) int {
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}
