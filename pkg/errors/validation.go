package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationCategory identifies the source of a validation error.
type ValidationCategory string

const (
	// ValidationCategoryConfig indicates a configuration file validation error.
	ValidationCategoryConfig ValidationCategory = "config"

	// ValidationCategoryFlag indicates an invalid command-line flag value.
	ValidationCategoryFlag ValidationCategory = "flag"

	// ValidationCategoryStats indicates an unreadable or invalid stats file.
	ValidationCategoryStats ValidationCategory = "stats"
)

// ValidationError represents a configuration, flag or stats file validation failure.
//
// Fields:
//   - Category: Source of validation ("config", "flag", "stats")
//   - Field: Name of the invalid field, flag, or the stats file path
//   - Message: Description of what's wrong
//   - Expected: What the valid value should look like
//   - ValidKeys: List of valid options (for enum-like fields)
//   - Hint: Actionable hint for fixing the error
//
// Example:
//
//	return &ValidationError{
//	    Category:  ValidationCategoryFlag,
//	    Field:     "--sort",
//	    Message:   "unknown sort field \"weight\"",
//	    ValidKeys: []string{"name", "size"},
//	}
type ValidationError struct {
	// Category identifies the validation source.
	Category ValidationCategory

	// Field is the name of the field that failed validation.
	Field string

	// Message describes what is wrong with the field.
	Message string

	// Expected describes what a valid value should look like.
	Expected string

	// ValidKeys lists valid options for enum-like fields.
	ValidKeys []string

	// Hint provides an actionable suggestion for fixing the error.
	Hint string
}

// Error implements the error interface.
//
// Returns:
//   - string: "<field>: <message>" or just the message when no field is set
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// VerboseError returns a detailed error message with expected values and hints.
//
// Returns:
//   - string: Detailed error with expected values and valid keys
func (e *ValidationError) VerboseError() string {
	var sb strings.Builder

	sb.WriteString(e.Error())

	if e.Expected != "" {
		sb.WriteString(fmt.Sprintf("\n    Expected: %s", e.Expected))
	}

	if len(e.ValidKeys) > 0 {
		sb.WriteString(fmt.Sprintf("\n    Valid keys: %s", strings.Join(e.ValidKeys, ", ")))
	}

	if e.Hint != "" {
		sb.WriteString(fmt.Sprintf("\n    Hint: %s", e.Hint))
	}

	return sb.String()
}

// IsValidationError checks if err is a ValidationError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *ValidationError: The ValidationError if err is one, nil otherwise
//   - bool: true if err is a ValidationError
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// NewConfigValidationError creates a ValidationError for configuration issues.
//
// Example:
//
//	err := errors.NewConfigValidationError("defaults.sort.field", "unknown field")
func NewConfigValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Category: ValidationCategoryConfig,
		Field:    field,
		Message:  message,
	}
}

// NewFlagValidationError creates a ValidationError for a bad flag value.
//
// Parameters:
//   - flag: The flag name including dashes (e.g., "--sort")
//   - message: Description of the error
//   - validKeys: Accepted values, may be nil
//
// Returns:
//   - *ValidationError: New validation error with flag category
func NewFlagValidationError(flag, message string, validKeys []string) *ValidationError {
	return &ValidationError{
		Category:  ValidationCategoryFlag,
		Field:     flag,
		Message:   message,
		ValidKeys: validKeys,
	}
}

// NewStatsValidationError creates a ValidationError for stats file problems.
//
// Parameters:
//   - path: The stats file path
//   - message: Description of the error
//   - hint: Resolution hint, may be empty
//
// Returns:
//   - *ValidationError: New validation error with stats category
func NewStatsValidationError(path, message, hint string) *ValidationError {
	return &ValidationError{
		Category: ValidationCategoryStats,
		Field:    path,
		Message:  message,
		Hint:     hint,
	}
}
