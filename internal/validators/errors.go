// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Denisov

package validators

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest is the root of every validation failure. Callers match
// against it with [errors.Is] to map any schema violation to a 400 response
// without inspecting individual field errors.
var ErrInvalidRequest = errors.New("invalid request")

// ErrUnsupportedType is returned when a validator receives a request type it
// does not know how to check.
var ErrUnsupportedType = errors.New("unsupported type for validation")

// FieldError describes a single field-level schema violation.
// It unwraps to [ErrInvalidRequest] so transport layers can classify it
// without knowing the field.
type FieldError struct {
	// Field is the JSON name of the offending field.
	Field string

	// Reason is a human-readable description of the violation.
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidRequest
}

// fieldError is a shorthand constructor used by the validators.
func fieldError(field, reason string) error {
	return &FieldError{Field: field, Reason: reason}
}
