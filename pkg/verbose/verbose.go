// Package verbose provides debug logging for bundlestat.
//
// Messages are written with a [DEBUG] prefix to stderr when --verbose is set.
package verbose

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

var (
	mu      sync.RWMutex
	enabled bool
	writer  io.Writer = os.Stderr
)

// Enable turns on verbose logging and allows debug messages to be printed.
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// Disable turns off verbose logging and prevents debug messages from being printed.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// IsEnabled returns whether verbose logging is currently enabled.
//
// Returns:
//   - bool: true if verbose logging is enabled, false otherwise
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetWriter sets the output writer for verbose messages.
//
// Parameters:
//   - w: The io.Writer to use for output; if nil, the writer remains unchanged
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w != nil {
		writer = w
	}
}

// getWriter returns the current writer with proper locking for internal use.
func getWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return writer
}

// Printf prints a formatted verbose message if enabled.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Printf(format string, args ...any) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] "+format+"\n", args...)
	}
}

// Info prints an informational verbose message if enabled.
func Info(msg string) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] %s\n", msg)
	}
}

// Infof prints a formatted informational verbose message if enabled.
func Infof(format string, args ...any) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] "+format+"\n", args...)
	}
}

// ConfigLoaded logs which configuration file was loaded.
//
// Parameters:
//   - path: The config file path, or empty when built-in defaults are used
//   - envFiles: .env files that were applied on top
func ConfigLoaded(path string, envFiles []string) {
	if !IsEnabled() {
		return
	}
	w := getWriter()
	if path == "" {
		_, _ = fmt.Fprintln(w, "[DEBUG] Config loaded: built-in defaults")
	} else {
		_, _ = fmt.Fprintf(w, "[DEBUG] Config loaded: %s\n", path)
	}
	if len(envFiles) > 0 {
		_, _ = fmt.Fprintf(w, "        Env: %s\n", strings.Join(envFiles, ", "))
	}
}

// PatternRejected logs a name pattern that failed to compile.
//
// The filter matches nothing for such a pattern; this message tells the user why.
//
// Parameters:
//   - pattern: The raw pattern text
//   - err: The compile error
func PatternRejected(pattern string, err error) {
	if IsEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Name pattern %q rejected, matching nothing: %v\n", truncate(pattern, 80), err)
	}
}

// FilterApplied logs how many modules survived filtering.
//
// Parameters:
//   - active: Names of the active filter groups
//   - in: Number of modules before filtering
//   - out: Number of modules after filtering
func FilterApplied(active []string, in, out int) {
	if !IsEnabled() {
		return
	}
	groups := "none"
	if len(active) > 0 {
		groups = strings.Join(active, ", ")
	}
	_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Filter [%s]: %d -> %d modules\n", groups, in, out)
}

// truncate shortens a string to the specified maximum length.
//
// Parameters:
//   - s: The string to truncate
//   - maxLen: The maximum length for the returned string (must be at least 3)
//
// Returns:
//   - string: The original or truncated string with "..." suffix if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
