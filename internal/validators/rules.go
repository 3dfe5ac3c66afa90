package validators

import (
	"fmt"
	"net/mail"
	"unicode/utf8"
)

// Generic string bounds shared by the per-entity validators.
// Postal codes and phone numbers are capped tighter than other fields,
// e-mail addresses are capped at 100 and format-checked.
const (
	maxStringLen = 255
	maxEmailLen  = 100
	maxShortLen  = 20
	maxNameLen   = 100
)

// requiredString checks a mandatory string field against [1, max] rune bounds.
func requiredString(field, value string, max int) error {
	if value == "" {
		return fieldError(field, "is required")
	}
	if utf8.RuneCountInString(value) > max {
		return fieldError(field, fmt.Sprintf("must be at most %d characters", max))
	}
	return nil
}

// optionalString checks an optional (pointer) string field. A nil pointer is
// valid; a present value must satisfy the same bounds as a required field.
func optionalString(field string, value *string, max int) error {
	if value == nil {
		return nil
	}
	return requiredString(field, *value, max)
}

// emailFormat checks that a non-empty value parses as an e-mail address.
func emailFormat(field, value string) error {
	if _, err := mail.ParseAddress(value); err != nil {
		return fieldError(field, "must be a valid email address")
	}
	return nil
}
