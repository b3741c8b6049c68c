package ui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/bundlestat/pkg/filtering"
	"github.com/ajxudir/bundlestat/pkg/modules"
	"github.com/ajxudir/bundlestat/pkg/state"
)

func testModules() []modules.Module {
	return []modules.Module{
		{Name: "./src/a.js", Size: 100, CumulativeSize: 300, RequiredByCount: 1, RequirementsCount: 2},
		{Name: "./node_modules/lodash.js", Size: 500, CumulativeSize: 500, RequiredByCount: 3},
		{Name: "./src/c.js", Size: 50, CumulativeSize: 50, RequirementsCount: 1},
	}
}

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok, "expected Model, got %T", updated)
	}
	return m
}

func names(mods []modules.Module) []string {
	out := make([]string, len(mods))
	for i, m := range mods {
		out[i] = m.Name
	}
	return out
}

// TestModelSort tests sorting through the number keys.
//
// It verifies:
//   - The initial order follows the default sort
//   - Choosing a column sorts it ascending
//   - Choosing it again flips the direction
func TestModelSort(t *testing.T) {
	m := NewModel(testModules(), nil, Options{})
	assert.Equal(t, []string{"./node_modules/lodash.js", "./src/a.js", "./src/c.js"}, names(m.Shown()))

	m = send(t, m, keys("2"))
	assert.Equal(t, []string{"./src/c.js", "./src/a.js", "./node_modules/lodash.js"}, names(m.Shown()))

	m = send(t, m, keys("2"))
	assert.Equal(t, []string{"./node_modules/lodash.js", "./src/a.js", "./src/c.js"}, names(m.Shown()))
	assert.Contains(t, m.status, "descending")
	assert.NotContains(t, m.status, "sort only")
	assert.Len(t, m.table.Rows(), 3)
}

// TestModelSortOnlyColumn tests sorting by the column without a filter group.
//
// It verifies:
//   - The Size column sorts ascending by own size
//   - The status line notes that the column cannot be filtered
func TestModelSortOnlyColumn(t *testing.T) {
	m := NewModel(testModules(), nil, Options{})

	m = send(t, m, keys("3"))
	assert.Equal(t, []string{"./src/c.js", "./src/a.js", "./node_modules/lodash.js"}, names(m.Shown()))
	assert.Contains(t, m.status, "sort only, no filter")
}

// TestModelNameFilter tests editing the name pattern.
//
// It verifies:
//   - Typing filters immediately
//   - Enter keeps the pattern
//   - Esc restores the pattern from before editing
func TestModelNameFilter(t *testing.T) {
	m := NewModel(testModules(), nil, Options{})

	m = send(t, m, keys("/"))
	require.Equal(t, editPattern, m.editing)

	m = send(t, m, keys("src"))
	assert.Equal(t, []string{"./src/a.js", "./src/c.js"}, names(m.Shown()))

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, editNone, m.editing)
	assert.Equal(t, "src", m.State().Criteria().ModuleName.Pattern)

	m = send(t, m, keys("/"), keys("x"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "src", m.State().Criteria().ModuleName.Pattern)
	assert.Len(t, m.Shown(), 2)
}

// TestModelRangeFilter tests focus movement and range bounds.
//
// It verifies:
//   - Tab and shift+tab cycle through the filter groups
//   - [ and ] edit the bounds of the focused group
//   - c clears the focused group
//   - The name group has no range
func TestModelRangeFilter(t *testing.T) {
	m := NewModel(testModules(), nil, Options{})

	m = send(t, m, keys("["))
	assert.Equal(t, editNone, m.editing)
	assert.NotEmpty(t, m.status)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, filtering.GroupRequirementsCount, m.focus)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, filtering.GroupCumulativeSize, m.focus)

	m = send(t, m, keys("["), keys("100"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"./node_modules/lodash.js", "./src/a.js"}, names(m.Shown()))

	m = send(t, m, keys("]"), keys("400"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"./src/a.js"}, names(m.Shown()))

	m = send(t, m, keys("c"))
	assert.False(t, m.State().Criteria().IsActive(filtering.GroupCumulativeSize))
	assert.Len(t, m.Shown(), 3)
}

// TestModelClearAll tests that C removes every filter but keeps the sort.
func TestModelClearAll(t *testing.T) {
	st := state.New()
	st.SetFilter(filtering.Patch{filtering.KeyModuleName: "src", filtering.KeyRequiredByCountMax: "0"})
	st.SetSort(modules.FieldSize, "numeric")

	m := NewModel(testModules(), st, Options{})
	assert.Equal(t, []string{"./src/c.js"}, names(m.Shown()))

	m = send(t, m, keys("C"))
	assert.True(t, st.Criteria().IsEmpty())
	assert.Equal(t, []string{"./src/c.js", "./src/a.js", "./node_modules/lodash.js"}, names(m.Shown()))
}

// TestModelModulesMsg tests reloading the module list.
//
// It verifies:
//   - New modules are filtered with the current state
//   - A failed reload keeps the current modules
func TestModelModulesMsg(t *testing.T) {
	st := state.New()
	st.SetFilter(filtering.Patch{filtering.KeyModuleName: "src"})
	m := NewModel(testModules(), st, Options{})

	m = send(t, m, ModulesMsg{Err: errors.New("boom")})
	assert.Len(t, m.Shown(), 2)
	assert.Contains(t, m.status, "boom")

	m = send(t, m, ModulesMsg{Modules: []modules.Module{{Name: "./src/new.js"}, {Name: "vendor.js"}}})
	assert.Equal(t, []string{"./src/new.js"}, names(m.Shown()))
}

// TestModelReloadKey tests that r loads the stats file.
func TestModelReloadKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"x.js","size":1}]`), 0644))

	m := NewModel(testModules(), nil, Options{Source: path})
	updated, cmd := m.Update(keys("r"))
	require.NotNil(t, cmd)

	msg, ok := cmd().(ModulesMsg)
	require.True(t, ok)
	require.NoError(t, msg.Err)

	m = send(t, updated.(Model), msg)
	assert.Equal(t, []string{"x.js"}, names(m.Shown()))

	_, cmd = NewModel(nil, nil, Options{}).Update(keys("r"))
	assert.Nil(t, cmd)
}

// TestModelQuit tests that q quits.
func TestModelQuit(t *testing.T) {
	_, cmd := NewModel(nil, nil, Options{}).Update(keys("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

// TestModelView tests the rendered screen.
func TestModelView(t *testing.T) {
	m := NewModel(testModules(), nil, Options{Source: "stats.json"})
	m = send(t, m, keys("/"), keys("("))

	view := m.View()
	assert.Contains(t, view, "Bundle Modules")
	assert.Contains(t, view, "Filter by Name")
	assert.Contains(t, view, "Filter by Imports")
	assert.Contains(t, view, "invalid pattern")
	assert.Contains(t, view, "Showing 0 of 3 modules")
	assert.Contains(t, view, "esc: revert")
}
