// Package validate provides field validation utilities shared by the ensure
// library and the ensurectl CLI.
//
// All functions delegate to the go-playground/validator library so that
// required-value, length and enumeration checks behave the same everywhere
// they are used.
//
// VALIDATION UTILITIES:
//   - Field validation: arbitrary validator tags against a single value
//   - String validation: required (non-empty) string checking
//   - Length validation: minimum element count for slices and strings
//   - Enumeration validation: value membership in a fixed set
package validate

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// Global validator instance using built-in validations
	validate *validator.Validate
)

func init() {
	validate = validator.New()
	// Using built-in validators: required, min, oneof - no custom registration needed
}

// ValidateField validates an individual value against validator tags without
// requiring a struct definition.
//
// Example: ValidateField("DEBUG", "required,oneof=DEBUG INFO WARN ERROR")
func ValidateField(value interface{}, tag string) error {
	return validate.Var(value, tag)
}

// ValidateRequiredString validates that a string field is not empty.
// The returned error names the field instead of exposing validator internals.
func ValidateRequiredString(value, fieldName string) error {
	if err := ValidateField(value, "required"); err != nil {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

// ValidateMinLength validates that a slice, map or string holds at least min
// elements. A nil slice has length zero.
func ValidateMinLength(value interface{}, min int, fieldName string) error {
	if err := ValidateField(value, fmt.Sprintf("min=%d", min)); err != nil {
		return fmt.Errorf("%s must contain at least %d element(s)", fieldName, min)
	}
	return nil
}

// ValidateOneOf validates that value is one of the allowed options.
// Options must not contain spaces since validator splits oneof on whitespace.
func ValidateOneOf(value, fieldName string, options ...string) error {
	if err := ValidateField(value, "oneof="+strings.Join(options, " ")); err != nil {
		return fmt.Errorf("invalid %s '%s' - valid: %s", fieldName, value, strings.Join(options, ", "))
	}
	return nil
}
