package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajxudir/bundlestat/pkg/testutil"
	"github.com/ajxudir/bundlestat/pkg/verbose"
)

// captureStdout captures stdout while fn runs.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	return testutil.CaptureStdout(t, fn)
}

// setupWorkDir creates a temp directory holding stats.json and makes it the
// working directory. Global flag state is reset for the test.
//
// Parameters:
//   - t: The testing instance
//   - files: Extra files to create, by name
//
// Returns:
//   - string: The directory
func setupWorkDir(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	testutil.WriteStats(t, dir, "stats.json", testutil.SampleModules())
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	for _, key := range []string{"BUNDLESTAT_STATS", "BUNDLESTAT_OUTPUT", "BUNDLESTAT_SORT", "BUNDLESTAT_WATCH"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	resetFlags()
	t.Cleanup(func() {
		resetFlags()
		verbose.Disable()
	})
	return dir
}

func resetFlags() {
	verboseFlag = false
	configFileFlag = ""
	envFileFlags = nil
	skipBuildChecks = true

	listView.reset()
	listOutputFlag = ""
	listHumanFlag = true
	listNameWidthFlag = 0

	stateView.reset()
	uiView.reset()
	uiWatchFlag = false

	configTemplateStdout = false
	configTemplatePath = ".bundlestat.yml"
}
