package models

import (
	"errors"
	"strings"
)

// Submission failure taxonomy. A validation failure means a required field
// failed its schema check and no email was dispatched; a delivery failure
// means an outbound send was rejected. Callers observe pass/fail only, never
// which of the two booking sends failed.
var (
	ErrValidation = errors.New("validation failed")
	ErrDelivery   = errors.New("delivery failed")
)

// FieldError is a human-readable message for one invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the per-field result set of a failed schema check.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
