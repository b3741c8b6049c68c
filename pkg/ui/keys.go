package ui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ajxudir/bundlestat/pkg/display"
	"github.com/ajxudir/bundlestat/pkg/filtering"
	"github.com/ajxudir/bundlestat/pkg/modules"
	"github.com/ajxudir/bundlestat/pkg/sorting"
)

// handleKey processes keys while no filter value is being edited.
//
// Keys:
//   - 1-5: sort by the n-th column, again to flip the direction
//   - tab / shift+tab: move the filter focus between groups
//   - /: edit the name pattern
//   - [ / ]: edit the minimum / maximum of the focused range group
//   - c: clear the focused group, C: clear every group
//   - r: reload the stats file
//   - q, ctrl+c: quit
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "1", "2", "3", "4", "5":
		idx, _ := strconv.Atoi(key)
		f := modules.Fields[idx-1]
		m.state.SetSort(f, sorting.DefaultFieldType(f))
		m.status = "Sorted by " + m.state.Sort().String()
		if !display.IsFilterable(f) {
			m.status += " (sort only, no filter)"
		}
		m.refresh()
		return m, nil

	case "tab":
		m.focus = nextGroup(m.focus, 1)
		return m, nil
	case "shift+tab":
		m.focus = nextGroup(m.focus, -1)
		return m, nil

	case "/":
		m.focus = filtering.GroupModuleName
		return m.startEdit(editPattern, filtering.KeyModuleName)

	case "[", "]":
		keys := m.focus.Keys()
		if len(keys) != 2 {
			m.status = "Name has no range; use / to edit the pattern"
			return m, nil
		}
		if key == "[" {
			return m.startEdit(editMin, keys[0])
		}
		return m.startEdit(editMax, keys[1])

	case "c":
		m.state.ClearFilter(m.focus)
		m.status = "Cleared " + m.focus.Field().Title() + " filter"
		m.refresh()
		return m, nil
	case "C":
		m.state.ClearAll()
		m.status = "Cleared all filters"
		m.refresh()
		return m, nil

	case "r":
		if m.opts.Source == "" {
			return m, nil
		}
		m.status = "Reloading " + m.opts.Source
		return m, LoadCmd(m.opts.Source, m.opts.MaxFileSize)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// handleEditKey processes keys while a filter value is being edited.
//
// Every change is applied immediately. Enter keeps the value, esc restores
// the value from before editing started.
func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		m.stopEdit()
		return m, nil
	case tea.KeyEsc:
		m.state.SetFilter(filtering.Patch{m.editKey: m.prev})
		m.stopEdit()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.state.SetFilter(filtering.Patch{m.editKey: m.input.Value()})
		m.refresh()
	}
	return m, cmd
}

func (m Model) startEdit(target editTarget, key filtering.Key) (tea.Model, tea.Cmd) {
	m.editing = target
	m.editKey = key
	m.prev = m.state.Criteria().Patch()[key]
	m.input.SetValue(m.prev)
	m.input.CursorEnd()
	m.input.Placeholder = placeholder(target)
	m.status = ""
	m.table.Blur()
	cmd := m.input.Focus()
	return m, cmd
}

func (m *Model) stopEdit() {
	m.editing = editNone
	m.editKey = ""
	m.prev = ""
	m.input.Blur()
	m.input.SetValue("")
	m.table.Focus()
}

func placeholder(target editTarget) string {
	switch target {
	case editPattern:
		return ".*"
	case editMin:
		return "0"
	default:
		return "∞"
	}
}

// nextGroup returns the filter group step positions after g, wrapping around.
func nextGroup(g filtering.Group, step int) filtering.Group {
	n := len(filtering.Groups)
	for i, group := range filtering.Groups {
		if group == g {
			return filtering.Groups[((i+step)%n+n)%n]
		}
	}
	return filtering.Groups[0]
}
