package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajxudir/bundlestat/pkg/filtering"
	"github.com/ajxudir/bundlestat/pkg/modules"
	"github.com/ajxudir/bundlestat/pkg/sorting"
)

// PrintModuleTable writes the module table to w.
//
// It performs the following operations:
//   - Step 1: Builds a table with sort-labelled headings
//   - Step 2: Sizes every column from the rows
//   - Step 3: Writes header, separator and one line per module
//
// Parameters:
//   - w: Destination writer
//   - mods: Modules in display order
//   - spec: The sort in effect, for the heading indicator
//   - opts: Rendering options
func PrintModuleTable(w io.Writer, mods []modules.Module, spec sorting.Spec, opts TableOptions) {
	table := NewModuleTable(spec)
	rows := make([][]string, len(mods))
	for i, m := range mods {
		rows[i] = ModuleRow(m, opts)
		table.UpdateWidths(rows[i]...)
	}

	table.Fprint(w)
	for _, row := range rows {
		_, _ = fmt.Fprintln(w, table.FormatRow(row...))
	}
}

// PrintFilterSummary writes the active filters, one per line.
//
// Nothing is written when no filter is active. A name pattern that does not
// compile is reported so an empty table has an explanation.
//
// Parameters:
//   - w: Destination writer (typically os.Stderr)
//   - c: The current criteria
func PrintFilterSummary(w io.Writer, c filtering.Criteria) {
	summaries := ActiveSummaries(c)
	if len(summaries) == 0 {
		return
	}
	_, _ = fmt.Fprintf(w, "Filters: %s\n", strings.Join(summaries, "; "))
	if err := c.ModuleName.Err(); err != nil {
		_, _ = fmt.Fprintf(w, "%s Name pattern matches nothing: %v\n", IconWarn, err)
	}
}

// PrintCounts writes the "Showing N of M modules" footer.
func PrintCounts(w io.Writer, shown, total int) {
	_, _ = fmt.Fprintf(w, "\nShowing %d of %d modules\n", shown, total)
}

// PrintNoModulesMessage prints a message when no modules are shown.
//
// Parameters:
//   - w: Destination writer
//   - total: Number of loaded modules; 0 means the stats file itself was empty
func PrintNoModulesMessage(w io.Writer, total int) {
	if total == 0 {
		_, _ = fmt.Fprintln(w, "No modules found in stats file")
		return
	}
	_, _ = fmt.Fprintf(w, "No modules match the current filters (%d loaded)\n", total)
}

// Message prefixes.
const (
	IconWarn  = "⚠️"
	IconCheck = "✅"
)
