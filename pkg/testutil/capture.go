// Package testutil provides shared test helpers for bundlestat packages.
package testutil

import (
	"bytes"
	"io"
	"os"
	"testing"
)

// CaptureStdout captures stdout while fn runs and returns what was written.
//
// The pipe is drained concurrently, so fn may write more than the pipe buffer.
// The original stdout is restored before returning.
//
// Parameters:
//   - t: Testing instance for helper marking
//   - fn: Function to execute while capturing stdout
//
// Returns:
//   - string: All content written to stdout during fn
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()
	return capture(t, &os.Stdout, fn)
}

// CaptureStderr captures stderr while fn runs and returns what was written.
func CaptureStderr(t *testing.T, fn func()) string {
	t.Helper()
	return capture(t, &os.Stderr, fn)
}

func capture(t *testing.T, target **os.File, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	old := *target
	*target = w
	defer func() { *target = old }()

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		done <- buf.String()
	}()

	fn()
	_ = w.Close()
	return <-done
}
