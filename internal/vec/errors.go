package vec

import (
	"errors"
	"fmt"
)

// DomainError represents a violated precondition on a sequence operation.
//
// Domain errors include:
//   - Zero element: InvCumProd asked to divide by a zero prefix product
//   - Length mismatch: a Mask paired with a Vector of a different length
//   - Empty input: a reduction with no defined identity applied to nothing
//
// DomainError includes structured fields so callers can report the exact
// position or lengths involved without parsing the message.
type DomainError struct {
	// Code identifies the error category.
	Code DomainErrorCode

	// Message is a human-readable description.
	Message string

	// Index is the offending element position (zero-element errors).
	Index int

	// Want and Got are the expected and actual lengths (mismatch errors).
	Want int
	Got  int
}

// DomainErrorCode categorizes domain errors.
type DomainErrorCode string

const (
	// ErrCodeZeroElement indicates an element was zero where the operation
	// divides by a prefix containing it.
	ErrCodeZeroElement DomainErrorCode = "ZERO_ELEMENT"

	// ErrCodeLengthMismatch indicates paired sequences of unequal length.
	ErrCodeLengthMismatch DomainErrorCode = "LENGTH_MISMATCH"

	// ErrCodeEmptyInput indicates an empty sequence where the operation has
	// no identity value to fall back on.
	ErrCodeEmptyInput DomainErrorCode = "EMPTY_INPUT"
)

// Error implements the error interface.
func (e *DomainError) Error() string {
	switch e.Code {
	case ErrCodeZeroElement:
		return fmt.Sprintf("%s: %s (index=%d)", e.Code, e.Message, e.Index)
	case ErrCodeLengthMismatch:
		return fmt.Sprintf("%s: %s (want=%d, got=%d)", e.Code, e.Message, e.Want, e.Got)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// IsZeroElementError returns true if the error is a zero-element error.
// Uses errors.As to handle wrapped errors.
func IsZeroElementError(err error) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == ErrCodeZeroElement
	}
	return false
}

// IsLengthMismatchError returns true if the error is a length-mismatch error.
// Uses errors.As to handle wrapped errors.
func IsLengthMismatchError(err error) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == ErrCodeLengthMismatch
	}
	return false
}

// IsEmptyInputError returns true if the error is an empty-input error.
// Uses errors.As to handle wrapped errors.
func IsEmptyInputError(err error) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == ErrCodeEmptyInput
	}
	return false
}

// NewZeroElementError creates a DomainError for a zero element at index.
func NewZeroElementError(index int) *DomainError {
	return &DomainError{
		Code:    ErrCodeZeroElement,
		Message: "element is zero; inverse cumulative product is undefined",
		Index:   index,
	}
}

// NewLengthMismatchError creates a DomainError for paired sequences of
// unequal length.
func NewLengthMismatchError(want, got int) *DomainError {
	return &DomainError{
		Code:    ErrCodeLengthMismatch,
		Message: "mask length does not match vector length",
		Want:    want,
		Got:     got,
	}
}

// NewEmptyInputError creates a DomainError for an operation with no
// identity over an empty sequence.
func NewEmptyInputError(op string) *DomainError {
	return &DomainError{
		Code:    ErrCodeEmptyInput,
		Message: fmt.Sprintf("%s is undefined for an empty sequence", op),
	}
}
