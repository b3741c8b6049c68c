package testutil

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/bundlestat/pkg/modules"
)

// TestCapture tests CaptureStdout and CaptureStderr.
//
// It verifies:
//   - Output written during fn is returned
//   - Output larger than a pipe buffer does not block
//   - The original streams are restored
func TestCapture(t *testing.T) {
	oldStdout, oldStderr := os.Stdout, os.Stderr

	out := CaptureStdout(t, func() { fmt.Print("hello") })
	assert.Equal(t, "hello", out)

	big := strings.Repeat("x", 1<<17)
	out = CaptureStderr(t, func() { fmt.Fprint(os.Stderr, big) })
	assert.Len(t, out, len(big))

	assert.Same(t, oldStdout, os.Stdout)
	assert.Same(t, oldStderr, os.Stderr)
}

// TestWriteStats tests that written stats files load back unchanged.
func TestWriteStats(t *testing.T) {
	path := WriteStats(t, t.TempDir(), "stats.json", SampleModules())

	mods, err := modules.Load(path)
	require.NoError(t, err)
	assert.Equal(t, SampleModules(), mods)
}
