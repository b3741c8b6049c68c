// Package filtering reduces a module list to the modules matching a set of
// typed filter criteria.
//
// Criteria:
//
// Each filterable column has one filter group. The name column takes a
// regular expression; the weighted size, dependants and imports columns take
// an optional inclusive min/max range:
//
//	c := filtering.Criteria{}
//	c = c.Merge(filtering.Patch{
//	    filtering.KeyModuleName:        "^lodash",
//	    filtering.KeyCumulativeSizeMin: "1024",
//	})
//	shown := filtering.FilterModules(mods, c)
//
// A module is kept only if it satisfies every active group. Groups without a
// value are inactive and are not evaluated at all.
//
// Failure handling:
//
// Filtering never returns an error. A name pattern that does not compile
// matches no module, so the table shows zero rows instead of failing. A bound
// that is not a number is treated as absent.
package filtering
