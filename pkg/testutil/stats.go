package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ajxudir/bundlestat/pkg/modules"
)

// SampleModules returns a small module list covering app code and a vendored library.
//
// Default name order: lodash, index, util. Weighted size order: util, lodash, index.
func SampleModules() []modules.Module {
	return []modules.Module{
		{Name: "./src/index.js", Size: 120, CumulativeSize: 5200, RequiredByCount: 0, RequirementsCount: 4},
		{Name: "./node_modules/lodash/lodash.js", Size: 4000, CumulativeSize: 4000, RequiredByCount: 2, RequirementsCount: 0},
		{Name: "./src/util.js", Size: 80, CumulativeSize: 80, RequiredByCount: 3, RequirementsCount: 1},
	}
}

// WriteStats writes mods as a stats file named name in dir.
//
// Parameters:
//   - t: Testing instance; the test fails if the file cannot be written
//   - dir: Target directory
//   - name: File name, e.g. "stats.json"
//   - mods: Modules to write in the {"modules": [...]} form
//
// Returns:
//   - string: Path of the written file
func WriteStats(t *testing.T, dir, name string, mods []modules.Module) string {
	t.Helper()

	data, err := json.Marshal(modules.StatsFile{Modules: mods})
	if err != nil {
		t.Fatalf("failed to encode stats: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write stats: %v", err)
	}
	return path
}
