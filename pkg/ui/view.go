package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/ajxudir/bundlestat/pkg/display"
	"github.com/ajxudir/bundlestat/pkg/filtering"
)

// chromeHeight is the number of lines around the table: title, filters,
// input, footer and help.
const chromeHeight = 11

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6")).
			Bold(true)

	docStyle = lipgloss.NewStyle().Margin(1, 2)

	focusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FBBF24"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F87171")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B")).
			Italic(true)
)

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#64748B")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#F8FAFC")).
		Background(lipgloss.Color("#3B82F6"))
	return s
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	title := "Bundle Modules"
	if m.opts.Source != "" {
		title += " · " + m.opts.Source
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(m.renderFilters())
	b.WriteString("\n")

	if m.editing != editNone {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString(m.table.View())
	b.WriteString("\n")

	footer := fmt.Sprintf("Showing %d of %d modules", len(m.shown), len(m.mods))
	if m.status != "" {
		footer += " | " + m.status
	}
	b.WriteString(statusStyle.Render(footer))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.helpLine()))

	return docStyle.Render(b.String())
}

// renderFilters renders one line per filter group with its summary.
//
// The focused group is marked, active groups are highlighted, and an invalid
// name pattern is flagged.
func (m Model) renderFilters() string {
	c := m.state.Criteria()
	var lines []string
	for _, g := range filtering.Groups {
		marker := "  "
		label := display.FilterLabel(g)
		if g == m.focus {
			marker = "› "
			label = focusStyle.Render(label)
		}

		summary := display.FilterSummary(c, g)
		if c.IsActive(g) {
			summary = activeStyle.Render(summary)
		}
		line := fmt.Sprintf("%s%s: %s", marker, label, summary)
		if g == filtering.GroupModuleName {
			if err := c.ModuleName.Err(); err != nil {
				line += " " + errorStyle.Render("invalid pattern, nothing matches")
			}
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) helpLine() string {
	if m.editing != editNone {
		return "enter: keep • esc: revert"
	}
	help := "1-5: sort • tab: focus • /: name • [ ]: min/max • c/C: clear • q: quit"
	if m.opts.Source != "" {
		help += " • r: reload"
	}
	return help
}
