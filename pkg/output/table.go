package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajxudir/bundlestat/pkg/utils"
)

// Alignment specifies text alignment within a column.
type Alignment int

const (
	// AlignLeft pads values on the right.
	AlignLeft Alignment = iota

	// AlignRight pads values on the left; used for numbers.
	AlignRight
)

// Column represents a single table column with its header and current width.
//
// Fields:
//   - Header: The display text for this column's header
//   - Width: The current display width for this column in characters
//   - Align: How values are padded to Width
type Column struct {
	Header string
	Width  int
	Align  Alignment
}

// Table provides a flexible table formatter with dynamic column widths.
// It handles Unicode-aware width calculations and consistent formatting.
//
// Fields:
//   - columns: List of columns with their headers and widths
//   - separator: String used to separate columns in formatted output (default: "  ")
type Table struct {
	columns   []Column
	separator string
}

// NewTable creates a new table formatter and returns a pointer to it.
//
// Returns:
//   - *Table: A new table instance with a two-space separator
func NewTable() *Table {
	return &Table{
		columns:   make([]Column, 0),
		separator: "  ",
	}
}

// WithSeparator sets a custom column separator and returns the table.
//
// Parameters:
//   - sep: The string to use between columns (e.g., " | " for pipe-separated output)
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) WithSeparator(sep string) *Table {
	t.separator = sep
	return t
}

// AddColumn adds a left-aligned column sized to its header and returns the table.
func (t *Table) AddColumn(header string) *Table {
	return t.AddAlignedColumn(header, 0, AlignLeft)
}

// AddAlignedColumn adds a column with a minimum width and alignment and returns the table.
//
// The column width will be set to the larger of minWidth or the display width
// of the header.
//
// Parameters:
//   - header: The text to display in the column header
//   - minWidth: Minimum width in characters for this column
//   - align: Alignment of header and values
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) AddAlignedColumn(header string, minWidth int, align Alignment) *Table {
	t.columns = append(t.columns, Column{
		Header: header,
		Width:  utils.Max(minWidth, utils.DisplayWidth(header)),
		Align:  align,
	})
	return t
}

// UpdateWidths updates column widths based on a row of values and returns the table.
//
// It performs the following operations:
//   - Step 1: Calculates display width for each value using Unicode-aware measurement
//   - Step 2: Compares each value's width with the current column width
//   - Step 3: Keeps the larger width to ensure all content fits
//
// Parameters:
//   - values: Variable number of strings representing a data row
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) UpdateWidths(values ...string) *Table {
	for i, val := range values {
		if i < len(t.columns) {
			width := utils.DisplayWidth(val)
			if width > t.columns[i].Width {
				t.columns[i].Width = width
			}
		}
	}
	return t
}

func (t *Table) pad(col Column, val string) string {
	if col.Align == AlignRight {
		return utils.ToWidthLeft(val, col.Width)
	}
	return utils.ToWidth(val, col.Width)
}

// HeaderRow returns the formatted header row string.
//
// Trailing spaces are trimmed from the last column.
func (t *Table) HeaderRow() string {
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		parts[i] = t.pad(col, col.Header)
	}
	return strings.TrimRight(strings.Join(parts, t.separator), " ")
}

// SeparatorRow returns a separator row with dashes matching column widths.
func (t *Table) SeparatorRow() string {
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		parts[i] = strings.Repeat("-", col.Width)
	}
	return strings.Join(parts, t.separator)
}

// FormatRow formats a data row with proper padding for each column and returns the formatted string.
//
// Missing values (when fewer values than columns are provided) are treated as empty strings.
//
// Parameters:
//   - values: Variable number of strings representing the row data, one per column
//
// Returns:
//   - string: Formatted row with values separated by the separator
func (t *Table) FormatRow(values ...string) string {
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		val := ""
		if i < len(values) {
			val = values[i]
		}
		parts[i] = t.pad(col, val)
	}
	return strings.TrimRight(strings.Join(parts, t.separator), " ")
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.columns)
}

// GetColumnWidth returns the width of a column by index.
//
// Returns:
//   - int: The column's width in characters; returns 0 if index is out of bounds
func (t *Table) GetColumnWidth(index int) int {
	if index >= 0 && index < len(t.columns) {
		return t.columns[index].Width
	}
	return 0
}

// Fprint outputs the table header and separator to the given writer.
//
// Parameters:
//   - w: The writer to output to (e.g., os.Stdout, os.Stderr, or a buffer)
func (t *Table) Fprint(w io.Writer) {
	_, _ = fmt.Fprintln(w, t.HeaderRow())
	_, _ = fmt.Fprintln(w, t.SeparatorRow())
}

// String returns a string representation of the table structure for debugging.
//
// Returns:
//   - string: e.g. "Table{columns: [Module Name:11, Size:6 (right)]}"
func (t *Table) String() string {
	var sb strings.Builder
	sb.WriteString("Table{columns: [")
	for i, col := range t.columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		align := ""
		if col.Align == AlignRight {
			align = " (right)"
		}
		sb.WriteString(fmt.Sprintf("%s:%d%s", col.Header, col.Width, align))
	}
	sb.WriteString("]}")
	return sb.String()
}
