package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/bundlestat/pkg/filtering"
	"github.com/ajxudir/bundlestat/pkg/modules"
	"github.com/ajxudir/bundlestat/pkg/sorting"
)

// TestNew tests the initial state.
//
// It verifies:
//   - No filter group is active by default
//   - The default sort is name, alpha, ascending
//   - Options override the defaults
func TestNew(t *testing.T) {
	s := New()
	snap := s.Snapshot()
	assert.True(t, snap.Criteria.IsEmpty())
	assert.Equal(t, sorting.DefaultSpec, snap.Sort)
	for _, g := range filtering.Groups {
		assert.False(t, snap.ActiveFilters[g], g)
	}

	spec := sorting.Spec{Field: modules.FieldSize, FieldType: sorting.FieldTypeNumeric, Direction: sorting.Descending}
	c := filtering.Criteria{ModuleName: filtering.NamePattern{Pattern: "x"}}
	s = New(WithSort(spec), WithCriteria(c))
	assert.Equal(t, spec, s.Sort())
	assert.Equal(t, c, s.Criteria())
	assert.True(t, s.Snapshot().ActiveFilters[filtering.GroupModuleName])
}

// TestSetFilter tests the behavior of SetFilter.
//
// It verifies:
//   - Patches merge key by key
//   - Non-numeric bounds are accepted and leave the bound unset
//   - ActiveFilters follows the criteria
func TestSetFilter(t *testing.T) {
	s := New()
	s.SetFilter(filtering.Patch{filtering.KeyCumulativeSizeMin: "10"})
	s.SetFilter(filtering.Patch{filtering.KeyCumulativeSizeMax: "20"})
	s.SetFilter(filtering.Patch{filtering.KeyRequiredByCountMin: "lots"})

	snap := s.Snapshot()
	assert.Equal(t, filtering.Int64(10), snap.Criteria.CumulativeSize.Min)
	assert.Equal(t, filtering.Int64(20), snap.Criteria.CumulativeSize.Max)
	assert.True(t, snap.ActiveFilters[filtering.GroupCumulativeSize])
	assert.False(t, snap.ActiveFilters[filtering.GroupRequiredByCount])
}

// TestClearFilter tests that ClearFilter removes both bounds together.
func TestClearFilter(t *testing.T) {
	s := New()
	s.SetFilter(filtering.Patch{
		filtering.KeyModuleName:           "^src",
		filtering.KeyRequirementsCountMin: "1",
		filtering.KeyRequirementsCountMax: "5",
	})

	s.ClearFilter(filtering.GroupRequirementsCount)
	snap := s.Snapshot()
	assert.Equal(t, filtering.Range{}, snap.Criteria.RequirementsCount)
	assert.True(t, snap.ActiveFilters[filtering.GroupModuleName])

	s.ClearAll()
	assert.True(t, s.Criteria().IsEmpty())
}

// TestSetSort tests the behavior of SetSort.
//
// It verifies:
//   - The same field twice returns to the original direction
//   - A new field starts ascending
func TestSetSort(t *testing.T) {
	s := New()
	s.SetSort(modules.FieldName, sorting.FieldTypeAlpha)
	assert.Equal(t, sorting.Descending, s.Sort().Direction)
	s.SetSort(modules.FieldName, sorting.FieldTypeAlpha)
	assert.Equal(t, sorting.Ascending, s.Sort().Direction)

	s.SetSort(modules.FieldName, sorting.FieldTypeAlpha)
	s.SetSort(modules.FieldRequiredByCount, sorting.FieldTypeNumeric)
	assert.Equal(t, sorting.Spec{Field: modules.FieldRequiredByCount, FieldType: sorting.FieldTypeNumeric, Direction: sorting.Ascending}, s.Sort())
}

// TestSetSortIncompatibleFieldType tests a field type the column cannot use.
//
// It verifies:
//   - Numeric sorting on the name column falls back to alpha
//   - The stored spec validates and Apply does not panic
//   - Toggling the same column again still flips the direction
func TestSetSortIncompatibleFieldType(t *testing.T) {
	mods := []modules.Module{{Name: "b", Size: 1}, {Name: "a", Size: 2}}

	s := New()
	s.SetSort(modules.FieldSize, sorting.FieldTypeNumeric)
	s.SetSort(modules.FieldName, sorting.FieldTypeNumeric)

	assert.Equal(t, sorting.Spec{Field: modules.FieldName, FieldType: sorting.FieldTypeAlpha, Direction: sorting.Ascending}, s.Sort())
	require.NoError(t, s.Sort().Validate())
	assert.NotPanics(t, func() {
		assert.Equal(t, []modules.Module{mods[1], mods[0]}, s.Apply(mods))
	})

	s.SetSort(modules.FieldName, sorting.FieldTypeNumeric)
	assert.Equal(t, sorting.Descending, s.Sort().Direction)
	assert.Equal(t, sorting.FieldTypeAlpha, s.Sort().FieldType)
}

// TestFilter tests the ModuleFilter handed out by the state.
//
// It verifies:
//   - The filter applies the current criteria
//   - A filter taken earlier keeps the criteria it was created with
func TestFilter(t *testing.T) {
	mods := []modules.Module{{Name: "./src/a.js"}, {Name: "./node_modules/b.js"}}

	s := New()
	s.SetFilter(filtering.Patch{filtering.KeyModuleName: "^./src"})
	f := s.Filter()
	assert.Equal(t, []modules.Module{mods[0]}, f.Filter(mods))

	s.ClearAll()
	assert.Equal(t, []modules.Module{mods[0]}, f.Filter(mods))
	assert.Equal(t, mods, s.Filter().Filter(mods))
}

// TestSnapshotIsolated tests that a snapshot does not change with the state.
func TestSnapshotIsolated(t *testing.T) {
	s := New()
	before := s.Snapshot()
	s.SetFilter(filtering.Patch{filtering.KeyModuleName: "a"})
	s.SetSort(modules.FieldSize, sorting.FieldTypeNumeric)

	assert.False(t, before.ActiveFilters[filtering.GroupModuleName])
	assert.Equal(t, sorting.DefaultSpec, before.Sort)
	assert.Equal(t, "", before.Criteria.ModuleName.Pattern)
}

// TestApply tests filtering and sorting together.
func TestApply(t *testing.T) {
	mods := []modules.Module{
		{Name: "a", Size: 10, CumulativeSize: 100},
		{Name: "b", Size: 5, CumulativeSize: 50},
		{Name: "c", Size: 10, CumulativeSize: 300},
		{Name: "d", Size: 1, CumulativeSize: 10},
	}

	s := New()
	s.SetFilter(filtering.Patch{filtering.KeyCumulativeSizeMin: "50"})
	s.SetSort(modules.FieldSize, sorting.FieldTypeNumeric)

	got := s.Apply(mods)
	assert.Equal(t, []modules.Module{mods[1], mods[0], mods[2]}, got)

	s.SetFilter(filtering.Patch{filtering.KeyModuleName: "["})
	assert.Empty(t, s.Apply(mods))
}
