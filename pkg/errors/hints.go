package errors

import (
	"strings"
)

// ErrorHint provides actionable resolution hints for common errors.
//
// Fields:
//   - Pattern: Substring to match in error message (case-insensitive)
//   - Hint: Brief description of the issue
//   - Resolution: Command or action to resolve the issue
type ErrorHint struct {
	Pattern    string
	Hint       string
	Resolution string
}

// CommonErrorHints is the registry consulted by GetHint and EnhanceErrorWithHint.
var CommonErrorHints = []ErrorHint{
	{
		Pattern:    "no such file or directory",
		Hint:       "Stats file not found",
		Resolution: "Pass the stats file as an argument, set stats.path or BUNDLESTAT_STATS; generate one with `webpack --json > stats.json`",
	},
	{
		Pattern:    "invalid json",
		Hint:       "Stats file is not valid JSON",
		Resolution: "Check that the bundler wrote the whole file (no progress output mixed in)",
	},
	{
		Pattern:    "invalid yaml",
		Hint:       "Stats or config file is not valid YAML",
		Resolution: "Validate the file with a YAML linter",
	},
	{
		Pattern:    "permission denied",
		Hint:       "Insufficient permissions",
		Resolution: "Check read permissions of the stats file",
	},
}

// GetHint returns an actionable hint for an error if one matches.
//
// Parameters:
//   - err: The error to analyze
//
// Returns:
//   - string: The hint with resolution, or empty string if no hint found
func GetHint(err error) string {
	if err == nil {
		return ""
	}

	errStr := strings.ToLower(err.Error())
	for _, hint := range CommonErrorHints {
		if strings.Contains(errStr, strings.ToLower(hint.Pattern)) {
			return hint.Hint + ": " + hint.Resolution
		}
	}

	return ""
}

// EnhanceErrorWithHint adds actionable hints to an error message if a matching pattern is found.
//
// Parameters:
//   - err: The error to enhance
//
// Returns:
//   - string: Error message with hint appended if found, otherwise just the error message
func EnhanceErrorWithHint(err error) string {
	if err == nil {
		return ""
	}

	errStr := err.Error()
	if hint := GetHint(err); hint != "" {
		return errStr + "\n  \U0001F4A1 " + hint
	}

	return errStr
}
