// Package modules defines the bundle module record and loads it from stats files.
//
// A stats file lists every module of a bundle with its own size, its weighted
// (cumulative) size and how many modules it requires or is required by:
//
//	mods, err := modules.Load("stats.json")
//
// Records are never modified after loading. The filtering and sorting packages
// always return new slices.
package modules

import (
	"fmt"
	"strconv"
)

// Module is one row of the module table.
//
// Fields:
//   - Name: Module identifier as reported by the bundler (free-form)
//   - Size: Own size in bytes
//   - CumulativeSize: Size in bytes including everything the module pulls in
//   - RequiredByCount: Number of modules that depend on this module
//   - RequirementsCount: Number of modules this module imports
type Module struct {
	Name              string `json:"name" yaml:"name" xml:"name"`
	Size              int64  `json:"size" yaml:"size" xml:"size"`
	CumulativeSize    int64  `json:"cumulativeSize" yaml:"cumulativeSize" xml:"cumulativeSize"`
	RequiredByCount   int    `json:"requiredByCount" yaml:"requiredByCount" xml:"requiredByCount"`
	RequirementsCount int    `json:"requirementsCount" yaml:"requirementsCount" xml:"requirementsCount"`
}

// Field names a column of the module table.
//
// The string values match the keys used by the stats file and by the
// interactive table's sort callbacks.
type Field string

const (
	// FieldName is the module name column.
	FieldName Field = "name"
	// FieldCumulativeSize is the weighted size column.
	FieldCumulativeSize Field = "cumulativeSize"
	// FieldSize is the own size column.
	FieldSize Field = "size"
	// FieldRequiredByCount is the dependants column.
	FieldRequiredByCount Field = "requiredByCount"
	// FieldRequirementsCount is the imports column.
	FieldRequirementsCount Field = "requirementsCount"
)

// Fields lists every column in display order.
var Fields = []Field{
	FieldName,
	FieldCumulativeSize,
	FieldSize,
	FieldRequiredByCount,
	FieldRequirementsCount,
}

// ParseField converts a string into a Field.
//
// Parameters:
//   - s: Field key (e.g., "name", "cumulativeSize")
//
// Returns:
//   - Field: The matching field
//   - bool: false if s names no known column
func ParseField(s string) (Field, bool) {
	for _, f := range Fields {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

// IsNumeric reports whether the field holds an integer value.
func (f Field) IsNumeric() bool {
	switch f {
	case FieldCumulativeSize, FieldSize, FieldRequiredByCount, FieldRequirementsCount:
		return true
	default:
		return false
	}
}

// Title returns the column heading shown in tables.
//
// Returns:
//   - string: Human-readable heading, or the raw field key if unknown
func (f Field) Title() string {
	switch f {
	case FieldName:
		return "Module Name"
	case FieldCumulativeSize:
		return "Weighted"
	case FieldSize:
		return "Size"
	case FieldRequiredByCount:
		return "Dependants"
	case FieldRequirementsCount:
		return "Imports"
	default:
		return string(f)
	}
}

// Text returns the value of a field as text.
//
// Numeric fields are rendered in base 10.
//
// Parameters:
//   - f: The field to read
//
// Returns:
//   - string: Field value as text
func (m Module) Text(f Field) string {
	if f == FieldName {
		return m.Name
	}
	n, _ := m.Int(f)
	return strconv.FormatInt(n, 10)
}

// Int returns the integer value of a numeric field.
//
// Parameters:
//   - f: The field to read
//
// Returns:
//   - int64: Field value
//   - bool: false if f is not a numeric field
func (m Module) Int(f Field) (int64, bool) {
	switch f {
	case FieldSize:
		return m.Size, true
	case FieldCumulativeSize:
		return m.CumulativeSize, true
	case FieldRequiredByCount:
		return int64(m.RequiredByCount), true
	case FieldRequirementsCount:
		return int64(m.RequirementsCount), true
	default:
		return 0, false
	}
}

// Validate checks the invariants of a loaded record.
//
// Returns:
//   - error: When a count or size is negative; otherwise nil
func (m Module) Validate() error {
	for _, f := range Fields {
		if n, ok := m.Int(f); ok && n < 0 {
			return fmt.Errorf("module %q: %s must not be negative (got %d)", m.Name, f, n)
		}
	}
	return nil
}

// StatsFile is the on-disk shape of a stats file.
//
// A bare array of modules is also accepted by the loaders.
type StatsFile struct {
	Modules []Module `json:"modules" yaml:"modules"`
}
