package filtering

import (
	"slices"

	"github.com/ajxudir/bundlestat/pkg/modules"
	"github.com/ajxudir/bundlestat/pkg/verbose"
)

// FilterModules returns the modules that satisfy every active group.
//
// It performs the following operations:
//   - Step 1: Returns a copy of mods when no group is active
//   - Step 2: Builds the name matcher once (invalid patterns match nothing)
//   - Step 3: Keeps each module whose name matches and whose values lie
//     within every active range, bounds included
//
// Parameters:
//   - mods: Input modules; never modified
//   - c: The filter criteria
//
// Returns:
//   - []modules.Module: New slice of kept modules in input order
//
// Example:
//
//	c := filtering.Criteria{CumulativeSize: filtering.Range{Min: filtering.Int64(100)}}
//	big := filtering.FilterModules(mods, c)
func FilterModules(mods []modules.Module, c Criteria) []modules.Module {
	active := c.ActiveGroups()
	if len(active) == 0 {
		return slices.Clone(mods)
	}

	matcher := NewNameMatcher(c.ModuleName.Pattern)
	if none, ok := matcher.(*NoneMatcher); ok {
		verbose.PatternRejected(none.Pattern, none.Err)
	}

	result := make([]modules.Module, 0, len(mods))
	for _, m := range mods {
		if MatchesModule(m, c, matcher) {
			result = append(result, m)
		}
	}

	names := make([]string, len(active))
	for i, g := range active {
		names[i] = string(g)
	}
	verbose.FilterApplied(names, len(mods), len(result))

	return result
}

// MatchesModule reports whether one module satisfies the criteria.
//
// Parameters:
//   - m: The module to test
//   - c: The filter criteria
//   - matcher: Name matcher built from c.ModuleName (see NewNameMatcher)
//
// Returns:
//   - bool: true if every active group accepts the module
func MatchesModule(m modules.Module, c Criteria, matcher Matcher) bool {
	if c.ModuleName.IsActive() && !matcher.Match(m.Name) {
		return false
	}
	for _, g := range Groups[1:] {
		r, _ := c.RangeFor(g)
		if !r.IsActive() {
			continue
		}
		n, _ := m.Int(g.Field())
		if !r.Contains(n) {
			return false
		}
	}
	return true
}
