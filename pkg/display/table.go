package display

import (
	"strconv"

	"github.com/ajxudir/bundlestat/pkg/modules"
	"github.com/ajxudir/bundlestat/pkg/output"
	"github.com/ajxudir/bundlestat/pkg/sorting"
	"github.com/ajxudir/bundlestat/pkg/utils"
)

// ColumnDef defines a single table column's properties.
//
// Fields:
//   - Field: The module field shown in the column
//   - MinWidth: Minimum column width in characters
//   - Align: Text alignment within the column
type ColumnDef struct {
	Field    modules.Field
	MinWidth int
	Align    output.Alignment
}

// ModuleSchema defines the columns of the module table in display order.
//
// Numbers are right-aligned so magnitudes line up.
var ModuleSchema = []ColumnDef{
	{Field: modules.FieldName, MinWidth: 11},
	{Field: modules.FieldCumulativeSize, MinWidth: 8, Align: output.AlignRight},
	{Field: modules.FieldSize, MinWidth: 6, Align: output.AlignRight},
	{Field: modules.FieldRequiredByCount, MinWidth: 10, Align: output.AlignRight},
	{Field: modules.FieldRequirementsCount, MinWidth: 7, Align: output.AlignRight},
}

// TableOptions configures module table rendering.
//
// Fields:
//   - HumanSizes: Show sizes as "1.5 KiB" instead of raw bytes
//   - MaxNameWidth: Truncate module names wider than this (0 disables)
type TableOptions struct {
	HumanSizes   bool
	MaxNameWidth int
}

// NewModuleTable creates an output.Table with one column per module field.
//
// Headings carry the sort indicator of the sorted column.
//
// Parameters:
//   - spec: The sort in effect
//
// Returns:
//   - *output.Table: Table ready for UpdateWidths and FormatRow
func NewModuleTable(spec sorting.Spec) *output.Table {
	table := output.NewTable()
	for _, col := range ModuleSchema {
		table.AddAlignedColumn(SortLabel(col.Field, spec), col.MinWidth, col.Align)
	}
	return table
}

// ModuleRow returns the cell values of a module in ModuleSchema order.
//
// Parameters:
//   - m: The module
//   - opts: Rendering options
//
// Returns:
//   - []string: One value per column
func ModuleRow(m modules.Module, opts TableOptions) []string {
	name := m.Name
	if opts.MaxNameWidth > 0 {
		name = utils.TruncateWidth(name, opts.MaxNameWidth)
	}
	row := make([]string, 0, len(ModuleSchema))
	row = append(row, name)
	for _, col := range ModuleSchema[1:] {
		n, _ := m.Int(col.Field)
		row = append(row, FormatValue(col.Field, n, opts.HumanSizes))
	}
	return row
}

// FormatValue renders a numeric field value.
//
// Byte counts use binary units when human is set; counts are always plain.
func FormatValue(f modules.Field, n int64, human bool) string {
	if human && (f == modules.FieldSize || f == modules.FieldCumulativeSize) {
		return utils.FormatBytes(n)
	}
	return strconv.FormatInt(n, 10)
}
