// Package errs defines the error taxonomy shared by the generation stages.
package errs

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by a validation step wraps exactly one of
// these, so callers can branch with errors.Is.
var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrOutOfRangeIndex      = errors.New("index out of range")
	ErrDimensionMismatch    = errors.New("dimension mismatch")
)

// FieldError reports a rejected configuration field.
type FieldError struct {
	Field  string // Field path, e.g. "level_breaks[1].index"
	Reason string
	Kind   error // One of the Err* sentinels
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("%v: %s: %s", e.Kind, e.Field, e.Reason)
}

// Unwrap returns the error kind.
func (e *FieldError) Unwrap() error {
	return e.Kind
}

// Invalid returns an ErrInvalidConfiguration error for field.
func Invalid(field, format string, args ...any) error {
	return &FieldError{Field: field, Reason: fmt.Sprintf(format, args...), Kind: ErrInvalidConfiguration}
}

// OutOfRange returns an ErrOutOfRangeIndex error for field.
func OutOfRange(field string, index, n int) error {
	return &FieldError{
		Field:  field,
		Reason: fmt.Sprintf("index %d outside [0, %d)", index, n),
		Kind:   ErrOutOfRangeIndex,
	}
}

// Mismatch returns an ErrDimensionMismatch error for field.
func Mismatch(field string, got, want int) error {
	return &FieldError{
		Field:  field,
		Reason: fmt.Sprintf("length %d, expected %d", got, want),
		Kind:   ErrDimensionMismatch,
	}
}

// Field returns the offending field path of err, or "" if err carries none.
func Field(err error) string {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Field
	}
	return ""
}
