package errors

import (
	"errors"
	"fmt"
)

// Exit codes for scripting integration.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates a critical error occurred (unreadable stats file, write failure).
	ExitFailure = 2

	// ExitConfigError indicates a configuration, flag or stats validation error.
	// The command could not proceed due to invalid input.
	ExitConfigError = 3
)

// ExitError represents a command termination with a specific exit code.
//
// Fields:
//   - Code: Exit code (use constants ExitSuccess, ExitFailure, ExitConfigError)
//   - Message: Human-readable error message
//   - Err: Underlying error that caused this exit, may be nil
//
// Example:
//
//	return &ExitError{
//	    Code:    ExitFailure,
//	    Message: "failed to load stats",
//	    Err:     err,
//	}
type ExitError struct {
	// Code is the exit code for the command.
	Code int

	// Message is a human-readable description of why the command failed.
	Message string

	// Err is the underlying error that caused this exit.
	// May be nil if no underlying error exists.
	Err error
}

// Error implements the error interface.
//
// Returns the Message field if set, otherwise returns the underlying error's
// message, or a default message with the exit code.
//
// Returns:
//   - string: The error message
func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and underlying error.
//
// Parameters:
//   - code: Exit code
//   - err: Underlying error, may be nil
//
// Returns:
//   - *ExitError: New exit error
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// NewExitErrorf creates an ExitError with the given code and formatted message.
//
// Example:
//
//	err := errors.NewExitErrorf(errors.ExitFailure, "failed to write %s", filename)
func NewExitErrorf(code int, format string, args ...interface{}) *ExitError {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// GetExitCode extracts the exit code from an error.
//
// If err is nil, returns ExitSuccess.
// If err is an ExitError, returns its code.
// If err is a ValidationError, returns ExitConfigError.
// Otherwise returns ExitFailure.
//
// Parameters:
//   - err: The error to extract code from
//
// Returns:
//   - int: Exit code
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return ExitConfigError
	}

	return ExitFailure
}

// IsExitError checks if err is an ExitError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *ExitError: The ExitError if err is one, nil otherwise
//   - bool: true if err is an ExitError
func IsExitError(err error) (*ExitError, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr, true
	}
	return nil, false
}
