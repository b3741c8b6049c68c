// Package warnings reports non-fatal problems to the user.
//
// Warnings go to stderr by default so they never mix with structured output
// on stdout. Tests swap the writer with SetWarningWriter.
package warnings

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu         sync.RWMutex
	warnWriter io.Writer = os.Stderr
)

// Warnf writes a formatted warning line prefixed with "Warning: ".
//
// A trailing newline is added.
func Warnf(format string, args ...any) {
	mu.RLock()
	w := warnWriter
	mu.RUnlock()
	_, _ = fmt.Fprintf(w, "Warning: "+format+"\n", args...)
}

// PatternRejected warns that a name pattern did not compile and matches nothing.
func PatternRejected(pattern string, err error) {
	Warnf("name pattern %q is not a valid regular expression and matches nothing: %v", pattern, err)
}

// IgnoredFlag warns that a flag has no effect in the current mode.
//
// Parameters:
//   - flag: The flag including dashes (e.g., "--human")
//   - reason: Why it is ignored
func IgnoredFlag(flag, reason string) {
	Warnf("%s ignored: %s", flag, reason)
}

// WarningWriter returns the currently configured warning writer.
func WarningWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return warnWriter
}

// SetWarningWriter swaps the warning writer and returns a restore function.
//
// Parameters:
//   - w: The new writer; nil selects os.Stderr
//
// Returns:
//   - func(): Restores the previous writer
func SetWarningWriter(w io.Writer) func() {
	mu.Lock()
	defer mu.Unlock()

	previous := warnWriter
	if w == nil {
		w = os.Stderr
	}
	warnWriter = w

	return func() {
		mu.Lock()
		defer mu.Unlock()
		warnWriter = previous
	}
}
