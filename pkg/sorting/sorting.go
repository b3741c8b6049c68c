// Package sorting orders module lists by one column.
//
// A Spec names the column, how values are compared (alpha or numeric) and the
// direction. Sorting is stable in both directions: modules with equal values
// keep their input order.
package sorting

import (
	"cmp"
	"fmt"
	"sort"
	"strings"

	"github.com/ajxudir/bundlestat/pkg/errors"
	"github.com/ajxudir/bundlestat/pkg/modules"
)

// FieldType selects the comparator for a column.
type FieldType string

const (
	// FieldTypeAlpha compares the text value in code-point order.
	FieldTypeAlpha FieldType = "alpha"
	// FieldTypeNumeric compares the integer value.
	FieldTypeNumeric FieldType = "numeric"
)

// Direction is the sort direction.
type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// Spec describes how a module list is ordered.
//
// Fields:
//   - Field: Column to sort by
//   - FieldType: Comparator to use
//   - Direction: Ascending or descending
type Spec struct {
	Field     modules.Field `json:"field" yaml:"field"`
	FieldType FieldType     `json:"fieldType" yaml:"fieldType"`
	Direction Direction     `json:"direction" yaml:"direction"`
}

// DefaultSpec is the initial order: module name, A to Z.
var DefaultSpec = Spec{Field: modules.FieldName, FieldType: FieldTypeAlpha, Direction: Ascending}

// DefaultFieldType returns the comparator used for a column when none is given.
//
// The name column compares as text; every other column is numeric.
func DefaultFieldType(f modules.Field) FieldType {
	if f.IsNumeric() {
		return FieldTypeNumeric
	}
	return FieldTypeAlpha
}

// ParseFieldType converts a string into a FieldType.
//
// "size" is accepted as an alias of numeric.
func ParseFieldType(s string) (FieldType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "alpha":
		return FieldTypeAlpha, true
	case "numeric", "size":
		return FieldTypeNumeric, true
	default:
		return "", false
	}
}

// ParseDirection converts a string into a Direction.
//
// Parameters:
//   - s: "asc", "ascending", "desc" or "descending" (case-insensitive)
//
// Returns:
//   - Direction: The matching direction
//   - bool: false if s is not a direction
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, true
	case "desc", "descending":
		return Descending, true
	default:
		return "", false
	}
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// Arrow returns the indicator shown next to a sorted column heading.
func (d Direction) Arrow() string {
	if d == Descending {
		return "▼"
	}
	return "▲"
}

// Validate checks that every part of the spec is known.
//
// A numeric comparator on the name column is rejected, since names have no
// integer value.
//
// Returns:
//   - error: A flag validation error naming the bad part, or nil
func (s Spec) Validate() error {
	if _, ok := modules.ParseField(string(s.Field)); !ok {
		return errors.NewFlagValidationError("--sort", fmt.Sprintf("unknown sort field %q", s.Field), fieldNames())
	}
	switch s.FieldType {
	case FieldTypeAlpha:
	case FieldTypeNumeric:
		if !s.Field.IsNumeric() {
			return errors.NewFlagValidationError("--sort", fmt.Sprintf("field %q cannot be sorted numerically", s.Field), nil)
		}
	default:
		return errors.NewFlagValidationError("--sort", fmt.Sprintf("unknown field type %q", s.FieldType), []string{string(FieldTypeAlpha), string(FieldTypeNumeric)})
	}
	switch s.Direction {
	case Ascending, Descending:
	default:
		return errors.NewFlagValidationError("--sort", fmt.Sprintf("unknown direction %q", s.Direction), []string{string(Ascending), string(Descending)})
	}
	return nil
}

// String renders the spec as "field direction".
func (s Spec) String() string {
	return fmt.Sprintf("%s %s", s.Field, s.Direction)
}

func fieldNames() []string {
	out := make([]string, len(modules.Fields))
	for i, f := range modules.Fields {
		out[i] = string(f)
	}
	return out
}

// Compare returns the ordering of two modules under the spec.
//
// Descending negates the result, so equal modules still compare as 0.
//
// Returns:
//   - int: Negative if a sorts first, positive if b sorts first, 0 on a tie
func (s Spec) Compare(a, b modules.Module) int {
	var c int
	if s.FieldType == FieldTypeNumeric {
		x, _ := a.Int(s.Field)
		y, _ := b.Int(s.Field)
		c = cmp.Compare(x, y)
	} else {
		c = strings.Compare(a.Text(s.Field), b.Text(s.Field))
	}
	if s.Direction == Descending {
		return -c
	}
	return c
}

// SortModules returns a sorted copy of mods.
//
// It performs the following operations:
//   - Step 1: Panics if the spec is invalid; callers validate specs built
//     from user input with Spec.Validate
//   - Step 2: Copies the input
//   - Step 3: Stable-sorts the copy with Spec.Compare
//
// Parameters:
//   - mods: Input modules; never modified
//   - s: The sort spec
//
// Returns:
//   - []modules.Module: New slice in sorted order
func SortModules(mods []modules.Module, s Spec) []modules.Module {
	if err := s.Validate(); err != nil {
		panic(fmt.Sprintf("sorting: invalid spec: %v", err))
	}

	sorted := make([]modules.Module, len(mods))
	copy(sorted, mods)

	sort.SliceStable(sorted, func(i, j int) bool {
		return s.Compare(sorted[i], sorted[j]) < 0
	})
	return sorted
}

// Toggle returns the spec that results from choosing a column to sort by.
//
// Choosing the current column flips the direction. Choosing another column
// adopts it with the given field type, ascending. A field type the column
// cannot use falls back to DefaultFieldType, so the result always validates
// for a known field.
//
// Parameters:
//   - current: The spec in effect
//   - field: The chosen column
//   - fieldType: Comparator for the column
//
// Returns:
//   - Spec: The next spec
func Toggle(current Spec, field modules.Field, fieldType FieldType) Spec {
	if current.Field == field {
		current.FieldType = fieldTypeFor(field, current.FieldType)
		current.Direction = current.Direction.Reverse()
		return current
	}
	return Spec{Field: field, FieldType: fieldTypeFor(field, fieldType), Direction: Ascending}
}

// fieldTypeFor returns ft when the column can be compared with it.
func fieldTypeFor(f modules.Field, ft FieldType) FieldType {
	switch {
	case ft == FieldTypeAlpha:
		return ft
	case ft == FieldTypeNumeric && f.IsNumeric():
		return ft
	default:
		return DefaultFieldType(f)
	}
}
