package verbose

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEnableDisable tests the behavior of Enable and Disable functions.
//
// It verifies:
//   - Disable sets enabled state to false
//   - Enable sets enabled state to true
func TestEnableDisable(t *testing.T) {
	Disable()
	assert.False(t, IsEnabled())

	Enable()
	assert.True(t, IsEnabled())

	Disable()
	assert.False(t, IsEnabled())
}

// TestSetWriter tests the behavior of SetWriter.
//
// It verifies:
//   - Writer can be set and messages are written to it
//   - nil writer parameter is ignored
func TestSetWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)

	Enable()
	Printf("test message")
	Disable()
	assert.Contains(t, buf.String(), "[DEBUG] test message")

	SetWriter(nil)
	buf.Reset()
	Enable()
	Info("another message")
	Disable()
	assert.Contains(t, buf.String(), "[DEBUG] another message")
}

// TestPrintf tests the behavior of Printf and Infof.
//
// It verifies:
//   - No output when verbose is disabled
//   - Formatted output appears when verbose is enabled
func TestPrintf(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)

	Disable()
	Printf("should not appear")
	Infof("nor %s", "this")
	assert.Empty(t, buf.String())

	Enable()
	Printf("test %s %d", "arg", 42)
	Infof("loaded %d", 7)
	Disable()

	assert.Contains(t, buf.String(), "[DEBUG] test arg 42")
	assert.Contains(t, buf.String(), "[DEBUG] loaded 7")
}

// TestDomainHelpers tests ConfigLoaded, PatternRejected and FilterApplied.
//
// It verifies:
//   - Built-in defaults are reported when no path is given
//   - Rejected patterns are quoted with the compile error
//   - Filter summaries list active groups or "none"
func TestDomainHelpers(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)
	Enable()
	defer Disable()

	ConfigLoaded("", nil)
	ConfigLoaded(".bundlestat.yml", []string{".env"})
	PatternRejected("[", errors.New("missing closing ]"))
	FilterApplied(nil, 3, 3)
	FilterApplied([]string{"moduleName", "cumulativeSize"}, 10, 2)

	out := buf.String()
	assert.Contains(t, out, "Config loaded: built-in defaults")
	assert.Contains(t, out, "Config loaded: .bundlestat.yml")
	assert.Contains(t, out, "Env: .env")
	assert.Contains(t, out, `Name pattern "[" rejected`)
	assert.Contains(t, out, "Filter [none]: 3 -> 3 modules")
	assert.Contains(t, out, "Filter [moduleName, cumulativeSize]: 10 -> 2 modules")
}

// TestTruncate tests the behavior of truncate.
func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	long := strings.Repeat("a", 20)
	assert.Equal(t, "aaaaaaa...", truncate(long, 10))
}
