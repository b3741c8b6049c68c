// Package display renders the module table head and rows for terminal output.
//
// Filter summaries:
//
// Each filter group has a one-line summary shown under its column heading:
//
//	display.FilterSummary(c, filtering.GroupModuleName)     // "new RegExp(.*)"
//	display.FilterSummary(c, filtering.GroupCumulativeSize) // "1024 < ∞ bytes"
//
// Missing bounds are shown as 0 and ∞. These placeholders exist only here;
// the filtering package works on real optional bounds.
//
// Sort labels:
//
//	display.SortLabel(modules.FieldSize, spec) // "Size ▼" when sorted descending by size
//
// For table layout, see NewModuleTable which builds an output.Table.
package display
