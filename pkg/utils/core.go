// Package utils holds small helpers shared by the bundlestat packages:
// terminal display width, byte formatting, key=value parsing and a bounded
// cache of compiled regular expressions.
package utils

import (
	"fmt"
	"strings"
)

// SplitKeyValue splits a "key=value" argument.
//
// Only the first '=' separates key and value, so values may contain '='.
// Whitespace around the key is trimmed; the value is kept verbatim because
// leading or trailing spaces can be meaningful in a name pattern.
//
// Parameters:
//   - s: The argument to split (e.g., "cumulativeSizeMin=1024")
//
// Returns:
//   - string: The trimmed key
//   - string: The raw value (may be empty)
//   - error: When s has no '=' or an empty key
//
// Example:
//
//	key, value, _ := utils.SplitKeyValue("moduleName=^lodash")
//	// key = "moduleName", value = "^lodash"
func SplitKeyValue(s string) (string, string, error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return "", "", fmt.Errorf("expected key=value, got %q", s)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", fmt.Errorf("empty key in %q", s)
	}
	return key, value, nil
}

// Contains checks if a string slice contains an item.
//
// Parameters:
//   - slice: The slice of strings to search
//   - item: The string to search for
//
// Returns:
//   - bool: true if item is found in slice, false otherwise
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
