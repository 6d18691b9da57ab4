package domain

import (
	"errors"
	"strings"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, start time not before end time).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// FieldErrors is a validation failure that names the offending fields, so the
// client can highlight exactly which inputs to fix. It unwraps to
// ErrValidation, keeping errors.Is checks uniform across the codebase.
type FieldErrors struct {
	Fields []string
}

func (e *FieldErrors) Error() string {
	return "validation error: missing or invalid fields: " + strings.Join(e.Fields, ", ")
}

func (e *FieldErrors) Unwrap() error {
	return ErrValidation
}
