package filtering

import (
	"github.com/ajxudir/bundlestat/pkg/modules"
)

// ModuleFilter defines the interface for filtering module records.
//
// state.FilterState hands out a CriteriaFilter through this interface, so
// callers that only need the filtering step do not depend on Criteria.
//
// Example:
//
//	type mockFilter struct {
//	    result []modules.Module
//	}
//	func (m *mockFilter) Filter(mods []modules.Module) []modules.Module {
//	    return m.result
//	}
type ModuleFilter interface {
	// Filter applies filtering logic to a slice of modules.
	//
	// Parameters:
	//   - mods: Modules to filter; must not be modified
	//
	// Returns:
	//   - []modules.Module: A new slice holding the kept modules in input order
	Filter(mods []modules.Module) []modules.Module
}

// CriteriaFilter is an adapter that implements ModuleFilter using Criteria.
//
// Example:
//
//	c := filtering.Criteria{}.Merge(filtering.Patch{filtering.KeyModuleName: "^react"})
//	filter := &filtering.CriteriaFilter{Criteria: c}
//	result := filter.Filter(mods)
type CriteriaFilter struct {
	Criteria Criteria
}

// Filter applies the criteria to modules.
func (f *CriteriaFilter) Filter(mods []modules.Module) []modules.Module {
	return FilterModules(mods, f.Criteria)
}

// Verify that CriteriaFilter implements the ModuleFilter interface.
var _ ModuleFilter = (*CriteriaFilter)(nil)
