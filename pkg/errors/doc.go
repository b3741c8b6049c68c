// Package errors provides unified error types and display for bundlestat.
//
// This package consolidates the error handling of every command:
//   - ExitError: Command exit with specific exit code
//   - ValidationError: Configuration, flag or stats file validation failures
//
// Error Display:
//
// The package provides consistent error formatting with actionable hints:
//
//	errors.PrintErrorWithHints(os.Stderr, errs, verbose)
//
// Error Checking:
//
// Use the Is* functions to check error types:
//
//	if exitErr, ok := errors.IsExitError(err); ok {
//	    os.Exit(exitErr.Code)
//	}
//
// Exit Codes:
//
// Standard exit codes are defined for scripting integration:
//   - ExitSuccess (0): The command completed successfully
//   - ExitFailure (2): A critical error occurred
//   - ExitConfigError (3): Configuration, flag or stats validation error
//
// Filtering itself never produces errors. An unparseable name pattern matches
// no modules and a non-numeric bound is treated as absent.
package errors
