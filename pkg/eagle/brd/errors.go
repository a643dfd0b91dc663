package brd

import (
	"errors"
	"fmt"
)

// Code is a machine-readable parse failure category
type Code string

// StructuralMismatch means the input is not an EAGLE board document at all:
// unreadable, not XML, wrong root, or missing <drawing>/<board>.
const StructuralMismatch Code = "STRUCTURAL_MISMATCH"

// FormatError is the only error Parse returns. Element-level problems are
// skipped and logged instead.
type FormatError struct {
	Code    Code   // Failure category
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *FormatError) Unwrap() error {
	return e.Cause
}

func structural(cause error, format string, args ...any) *FormatError {
	return &FormatError{
		Code:    StructuralMismatch,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsStructuralMismatch reports whether err is, or wraps, a structural FormatError
func IsStructuralMismatch(err error) bool {
	var fe *FormatError
	if errors.As(err, &fe) {
		return fe.Code == StructuralMismatch
	}
	return false
}
