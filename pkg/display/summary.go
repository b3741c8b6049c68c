package display

import (
	"fmt"

	"github.com/ajxudir/bundlestat/pkg/filtering"
	"github.com/ajxudir/bundlestat/pkg/modules"
	"github.com/ajxudir/bundlestat/pkg/sorting"
)

// Infinity is shown in place of a missing upper bound.
const Infinity = "∞"

// AnyPattern is shown in place of an empty name pattern.
const AnyPattern = ".*"

// FilterSummary returns the one-line description of a filter group.
//
// It performs the following operations:
//   - Step 1: For the name group, wraps the pattern (or ".*") in "new RegExp(...)"
//   - Step 2: For range groups, renders "<min or 0> < <max or ∞> <unit>"
//
// Parameters:
//   - c: The current criteria
//   - g: The group to describe
//
// Returns:
//   - string: Summary text; empty for an unknown group
//
// Example:
//
//	c := filtering.Criteria{}.Merge(filtering.Patch{filtering.KeyRequiredByCountMax: "3"})
//	display.FilterSummary(c, filtering.GroupRequiredByCount) // "0 < 3 modules"
func FilterSummary(c filtering.Criteria, g filtering.Group) string {
	if g == filtering.GroupModuleName {
		pattern := c.ModuleName.Pattern
		if pattern == "" {
			pattern = AnyPattern
		}
		return fmt.Sprintf("new RegExp(%s)", pattern)
	}

	r, ok := c.RangeFor(g)
	if !ok {
		return ""
	}
	lo := "0"
	if r.Min != nil {
		lo = filtering.FormatBound(r.Min)
	}
	hi := Infinity
	if r.Max != nil {
		hi = filtering.FormatBound(r.Max)
	}
	return fmt.Sprintf("%s < %s %s", lo, hi, RangeUnit(g))
}

// RangeUnit returns the unit shown after a range summary.
func RangeUnit(g filtering.Group) string {
	if g == filtering.GroupCumulativeSize {
		return "bytes"
	}
	return "modules"
}

// FilterLabel returns the menu label for filtering a group, e.g. "Filter by Size".
func FilterLabel(g filtering.Group) string {
	switch g {
	case filtering.GroupModuleName:
		return "Filter by Name"
	case filtering.GroupCumulativeSize:
		return "Filter by Size"
	case filtering.GroupRequiredByCount:
		return "Filter by Dependants"
	case filtering.GroupRequirementsCount:
		return "Filter by Imports"
	default:
		return "Filter"
	}
}

// ActiveSummaries returns "Heading: summary" for every active group, in column order.
//
// Parameters:
//   - c: The current criteria
//
// Returns:
//   - []string: One entry per active group; nil when nothing is filtered
func ActiveSummaries(c filtering.Criteria) []string {
	var out []string
	for _, g := range c.ActiveGroups() {
		out = append(out, fmt.Sprintf("%s: %s", g.Field().Title(), FilterSummary(c, g)))
	}
	return out
}

// SortLabel returns a column heading with the sort indicator when it is the sorted column.
//
// Parameters:
//   - f: The column
//   - spec: The sort in effect
//
// Returns:
//   - string: "Weighted ▲", or just "Weighted" for unsorted columns
func SortLabel(f modules.Field, spec sorting.Spec) string {
	if spec.Field != f {
		return f.Title()
	}
	return f.Title() + " " + spec.Direction.Arrow()
}

// IsFilterable reports whether a column has a filter group.
//
// Every column but Size can be filtered.
func IsFilterable(f modules.Field) bool {
	_, ok := filtering.ParseGroup(string(f))
	return ok
}
