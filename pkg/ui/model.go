// Package ui implements the interactive module table.
//
// The table shows the loaded modules filtered and sorted by a
// state.FilterState. Every key press that changes the state recomputes the
// visible rows from the full module list.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ajxudir/bundlestat/pkg/display"
	"github.com/ajxudir/bundlestat/pkg/filtering"
	"github.com/ajxudir/bundlestat/pkg/modules"
	"github.com/ajxudir/bundlestat/pkg/output"
	"github.com/ajxudir/bundlestat/pkg/state"
	"github.com/ajxudir/bundlestat/pkg/utils"
)

// editTarget identifies the filter value being typed.
type editTarget int

const (
	editNone editTarget = iota
	editPattern
	editMin
	editMax
)

// ModulesMsg carries a fresh module list, typically after the stats file changed.
//
// When Err is set the current modules are kept and the error is shown.
type ModulesMsg struct {
	Modules []modules.Module
	Err     error
}

// Options configures the table model.
//
// Fields:
//   - Table: Cell rendering options
//   - Source: Stats file path shown in the title and used by reload, may be empty
//   - MaxFileSize: Size limit for reloads; 0 selects the loader default
type Options struct {
	Table       display.TableOptions
	Source      string
	MaxFileSize int64
}

// Model is the bubbletea model of the module table.
type Model struct {
	state *state.FilterState
	mods  []modules.Module
	shown []modules.Module
	opts  Options

	table table.Model
	input textinput.Model

	focus   filtering.Group
	editing editTarget
	editKey filtering.Key
	prev    string

	status string
	height int
}

// NewModel creates the table model.
//
// Parameters:
//   - mods: All loaded modules
//   - st: Filter and sort state; shared with the caller
//   - opts: Rendering and reload options
//
// Returns:
//   - Model: Ready to pass to tea.NewProgram
func NewModel(mods []modules.Module, st *state.FilterState, opts Options) Model {
	if st == nil {
		st = state.New()
	}

	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 256

	m := Model{
		state:  st,
		mods:   mods,
		opts:   opts,
		table:  table.New(table.WithFocused(true), table.WithHeight(20)),
		input:  input,
		focus:  filtering.GroupModuleName,
		height: 20,
	}
	m.table.SetStyles(tableStyles())
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing != editNone {
			return m.handleEditKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		h := msg.Height - chromeHeight
		if h < 5 {
			h = 5
		}
		m.height = h
		m.table.SetHeight(h)
		m.table.SetWidth(msg.Width)
		return m, nil

	case ModulesMsg:
		if msg.Err != nil {
			m.status = fmt.Sprintf("Reload failed: %v", msg.Err)
			return m, nil
		}
		m.mods = msg.Modules
		m.status = fmt.Sprintf("Reloaded %d modules", len(msg.Modules))
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Shown returns the modules currently visible, in display order.
func (m Model) Shown() []modules.Module {
	return m.shown
}

// State returns the filter and sort state driving the table.
func (m Model) State() *state.FilterState {
	return m.state
}

// refresh recomputes the visible modules and rebuilds columns and rows.
func (m *Model) refresh() {
	m.shown = m.state.Apply(m.mods)
	spec := m.state.Sort()

	rows := make([][]string, len(m.shown))
	widths := make([]int, len(display.ModuleSchema))
	cols := make([]table.Column, len(display.ModuleSchema))
	for i, col := range display.ModuleSchema {
		cols[i].Title = display.SortLabel(col.Field, spec)
		widths[i] = utils.Max(col.MinWidth, utils.DisplayWidth(cols[i].Title))
	}
	for i, mod := range m.shown {
		rows[i] = display.ModuleRow(mod, m.opts.Table)
		for j, v := range rows[i] {
			widths[j] = utils.Max(widths[j], utils.DisplayWidth(v))
		}
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		cells := make(table.Row, len(row))
		for j, v := range row {
			if display.ModuleSchema[j].Align == output.AlignRight {
				cells[j] = utils.ToWidthLeft(v, widths[j])
			} else {
				cells[j] = v
			}
		}
		tableRows[i] = cells
	}
	for i := range cols {
		cols[i].Width = widths[i]
	}

	m.table.SetRows(nil)
	m.table.SetColumns(cols)
	m.table.SetRows(tableRows)
	if len(tableRows) > 0 {
		m.table.SetCursor(0)
	}
}
