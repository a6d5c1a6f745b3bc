package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies different types of errors that can occur
// during a checksum run. This helps callers decide how to render an
// outcome without string-matching error text.
type ErrorCategory int

const (
	// ErrorSource indicates the byte source could not be opened or a
	// read failed mid-stream. Terminal for the run, never retried.
	ErrorSource ErrorCategory = iota + 1

	// ErrorDigest indicates a requested digest algorithm could not be
	// provided by the runtime. Non-fatal: the run proceeds and the
	// algorithm's slot is marked unavailable.
	ErrorDigest

	// ErrorCancelled indicates cooperative cancellation was observed.
	// Not a fault, but modeled as a distinct terminal outcome so
	// callers can tell it apart from ErrorSource.
	ErrorCancelled

	// ErrorConfig indicates invalid caller supplied configuration,
	// such as a chunk size outside the documented range.
	ErrorConfig
)

// String returns the string representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorSource:
		return "source"
	case ErrorDigest:
		return "digest"
	case ErrorCancelled:
		return "cancelled"
	case ErrorConfig:
		return "config"
	default:
		return "unknown"
	}
}

// ChecksumError wraps a failure with the operation that produced it and
// its category. The engine captures these into the run result instead of
// aborting control flow, because a partial result is still useful.
type ChecksumError struct {
	Err       error
	Operation string
	Category  ErrorCategory
}

// New creates a categorized ChecksumError.
func New(category ErrorCategory, operation string, err error) *ChecksumError {
	return &ChecksumError{Err: err, Operation: operation, Category: category}
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("[%v] %s: %v", e.Category, e.Operation, e.Err)
}

func (e *ChecksumError) Unwrap() error {
	return e.Err
}

// IsCategory reports whether err is a ChecksumError of the given category.
func IsCategory(err error, category ErrorCategory) bool {
	var ce *ChecksumError
	if errors.As(err, &ce) {
		return ce.Category == category
	}
	return false
}
