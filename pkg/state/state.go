// Package state holds the filter criteria and sort spec of a module table.
//
// FilterState is the single source of truth for what the table shows. The
// presentation layer turns user input into patches and column choices and
// passes them to SetFilter, ClearFilter and SetSort; it reads the result
// through Snapshot and Apply.
//
// FilterState is not safe for concurrent use. It is owned by the goroutine
// that runs the UI event loop.
package state

import (
	"github.com/ajxudir/bundlestat/pkg/filtering"
	"github.com/ajxudir/bundlestat/pkg/modules"
	"github.com/ajxudir/bundlestat/pkg/sorting"
)

// FilterState owns the current criteria and sort spec.
type FilterState struct {
	criteria filtering.Criteria
	sort     sorting.Spec
}

// Option configures a FilterState at construction.
type Option func(*FilterState)

// WithCriteria sets the initial filter criteria.
func WithCriteria(c filtering.Criteria) Option {
	return func(s *FilterState) {
		s.criteria = c
	}
}

// WithSort sets the initial sort spec.
//
// The spec should already be validated; see sorting.Spec.Validate.
func WithSort(spec sorting.Spec) Option {
	return func(s *FilterState) {
		s.sort = spec
	}
}

// New creates a FilterState with no active filter, sorted by name ascending
// unless options say otherwise.
//
// Parameters:
//   - opts: Options applied in order
//
// Returns:
//   - *FilterState: The new state
func New(opts ...Option) *FilterState {
	s := &FilterState{sort: sorting.DefaultSpec}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetFilter merges a patch into the criteria.
//
// Keys present in the patch overwrite the current value, keys absent are
// untouched. Non-numeric bound text clears that bound.
func (s *FilterState) SetFilter(p filtering.Patch) {
	s.criteria = s.criteria.Merge(p)
}

// ClearFilter deactivates every key of one filter group at once.
//
// Clearing a range group removes both its bounds.
func (s *FilterState) ClearFilter(g filtering.Group) {
	s.criteria = s.criteria.Clear(g)
}

// ClearAll deactivates every filter group.
func (s *FilterState) ClearAll() {
	s.criteria = filtering.Criteria{}
}

// SetSort selects the column to sort by.
//
// Selecting the current column flips the direction; selecting another column
// sorts it ascending with the given field type.
func (s *FilterState) SetSort(field modules.Field, fieldType sorting.FieldType) {
	s.sort = sorting.Toggle(s.sort, field, fieldType)
}

// Snapshot is a read-only view of a FilterState.
//
// Fields:
//   - Criteria: The filter criteria
//   - Sort: The sort spec
//   - ActiveFilters: Whether each filter group currently constrains the result
type Snapshot struct {
	Criteria      filtering.Criteria        `json:"criteria" yaml:"criteria"`
	Sort          sorting.Spec              `json:"sort" yaml:"sort"`
	ActiveFilters map[filtering.Group]bool `json:"activeFilters" yaml:"activeFilters"`
}

// Snapshot returns the current criteria, sort spec and active-filter flags.
//
// The returned value shares nothing mutable with the state.
func (s *FilterState) Snapshot() Snapshot {
	active := make(map[filtering.Group]bool, len(filtering.Groups))
	for _, g := range filtering.Groups {
		active[g] = s.criteria.IsActive(g)
	}
	return Snapshot{
		Criteria:      s.criteria,
		Sort:          s.sort,
		ActiveFilters: active,
	}
}

// Criteria returns the current filter criteria.
func (s *FilterState) Criteria() filtering.Criteria {
	return s.criteria
}

// Sort returns the current sort spec.
func (s *FilterState) Sort() sorting.Spec {
	return s.sort
}

// Filter returns a ModuleFilter bound to the current criteria.
//
// Later changes to the state do not affect the returned filter.
func (s *FilterState) Filter() filtering.ModuleFilter {
	return &filtering.CriteriaFilter{Criteria: s.criteria}
}

// Apply filters and sorts mods with the current state.
//
// The result is recomputed on every call.
//
// Parameters:
//   - mods: All loaded modules; never modified
//
// Returns:
//   - []modules.Module: The modules to show, in display order
func (s *FilterState) Apply(mods []modules.Module) []modules.Module {
	return sorting.SortModules(s.Filter().Filter(mods), s.sort)
}
