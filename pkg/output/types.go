package output

import "encoding/xml"

// ListResult represents the output data for the list command.
//
// Fields:
//   - XMLName: XML root element name (used only for XML marshaling)
//   - Source: Path of the stats file
//   - Summary: Aggregate statistics about the listing
//   - Sort: The order modules are listed in
//   - Filters: Summaries of the active filter groups (omitted if none)
//   - Modules: Module entries in display order
type ListResult struct {
	XMLName xml.Name      `json:"-" xml:"listResult"`
	Source  string        `json:"source" xml:"source"`
	Summary ListSummary   `json:"summary" xml:"summary"`
	Sort    SortEntry     `json:"sort" xml:"sort"`
	Filters []FilterEntry `json:"filters,omitempty" xml:"filters>filter,omitempty"`
	Modules []ModuleEntry `json:"modules" xml:"modules>module"`
}

// ListSummary holds summary statistics for list results.
//
// Fields:
//   - TotalModules: Number of modules in the stats file
//   - ShownModules: Number of modules that passed the filters
//   - TotalSize: Sum of the own sizes of all modules
//   - ShownSize: Sum of the own sizes of the shown modules
type ListSummary struct {
	TotalModules int   `json:"total_modules" xml:"totalModules"`
	ShownModules int   `json:"shown_modules" xml:"shownModules"`
	TotalSize    int64 `json:"total_size" xml:"totalSize"`
	ShownSize    int64 `json:"shown_size" xml:"shownSize"`
}

// SortEntry describes the sort order of a listing.
type SortEntry struct {
	Field     string `json:"field" xml:"field"`
	FieldType string `json:"field_type" xml:"fieldType"`
	Direction string `json:"direction" xml:"direction"`
}

// FilterEntry describes one active filter group.
//
// Fields:
//   - Group: Filter group key (e.g., "cumulativeSize")
//   - Summary: Display text (e.g., "1024 < ∞ bytes")
//   - Error: Compile error of a rejected name pattern (omitted if empty)
type FilterEntry struct {
	Group   string `json:"group" xml:"group,attr"`
	Summary string `json:"summary" xml:"summary"`
	Error   string `json:"error,omitempty" xml:"error,omitempty"`
}

// ModuleEntry represents a module in the list output.
type ModuleEntry struct {
	Name              string `json:"name" xml:"name"`
	CumulativeSize    int64  `json:"cumulative_size" xml:"cumulativeSize"`
	Size              int64  `json:"size" xml:"size"`
	RequiredByCount   int    `json:"required_by_count" xml:"requiredByCount"`
	RequirementsCount int    `json:"requirements_count" xml:"requirementsCount"`
}
