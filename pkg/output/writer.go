package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/iancoleman/orderedmap"
)

// WriteListResult writes list results in the specified format.
//
// It performs the following operations:
//   - Step 1: Creates a formatter for the requested format
//   - Step 2: Writes the list result using format-specific logic
//
// Parameters:
//   - w: Destination writer for the output
//   - format: Output format (FormatJSON, FormatXML, or FormatCSV)
//   - result: List result data to write
//
// Returns:
//   - error: When format is unsupported, returns an error; when write fails, returns the underlying error; otherwise returns nil
func WriteListResult(w io.Writer, format Format, result *ListResult) error {
	formatter := NewFormatter(format, w)

	switch format {
	case FormatJSON:
		return formatter.WriteJSON(result)
	case FormatXML:
		return formatter.WriteXML(result)
	case FormatCSV:
		return writeListCSV(formatter, result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// writeListCSV writes module entries in CSV format, one row per module.
func writeListCSV(f *Formatter, result *ListResult) error {
	headers := []string{"NAME", "CUMULATIVE_SIZE", "SIZE", "REQUIRED_BY_COUNT", "REQUIREMENTS_COUNT"}
	rows := make([][]string, 0, len(result.Modules))
	for _, m := range result.Modules {
		rows = append(rows, []string{
			m.Name,
			strconv.FormatInt(m.CumulativeSize, 10),
			strconv.FormatInt(m.Size, 10),
			strconv.Itoa(m.RequiredByCount),
			strconv.Itoa(m.RequirementsCount),
		})
	}
	return f.WriteCSV(headers, rows)
}

// KeyValue is one patch key with its current text.
type KeyValue struct {
	Key   string
	Value string
}

// StateEntry is one filter group of a state listing.
//
// Fields:
//   - Key: Group key (e.g., "requiredByCount")
//   - Active: Whether the group constrains the result
//   - Values: Patch keys of the group with their current text, in column order
type StateEntry struct {
	Key    string
	Active bool
	Values []KeyValue
}

// WriteStateJSON writes the filter and sort state as JSON with keys in column order.
//
// encoding/json sorts map keys alphabetically; the ordered map keeps groups and
// their min/max keys in the order they appear in the table.
//
// Parameters:
//   - w: Destination writer
//   - sort: The sort entry
//   - groups: Filter groups in column order
//
// Returns:
//   - error: When encoding fails
func WriteStateJSON(w io.Writer, sort SortEntry, groups []StateEntry) error {
	root := orderedmap.New()
	root.SetEscapeHTML(false)

	sortMap := orderedmap.New()
	sortMap.SetEscapeHTML(false)
	sortMap.Set("field", sort.Field)
	sortMap.Set("fieldType", sort.FieldType)
	sortMap.Set("direction", sort.Direction)
	root.Set("sort", sortMap)

	filters := orderedmap.New()
	filters.SetEscapeHTML(false)
	active := orderedmap.New()
	for _, g := range groups {
		for _, kv := range g.Values {
			filters.Set(kv.Key, kv.Value)
		}
		active.Set(g.Key, g.Active)
	}
	root.Set("filters", filters)
	root.Set("activeFilters", active)

	return NewFormatter(FormatJSON, w).WriteJSON(root)
}
