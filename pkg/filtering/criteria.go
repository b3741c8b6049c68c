package filtering

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ajxudir/bundlestat/pkg/modules"
	"github.com/ajxudir/bundlestat/pkg/utils"
)

// Group identifies one logical filter: the name pattern or one min/max pair.
type Group string

const (
	// GroupModuleName filters on the module name pattern.
	GroupModuleName Group = "moduleName"
	// GroupCumulativeSize filters on the weighted size range.
	GroupCumulativeSize Group = "cumulativeSize"
	// GroupRequiredByCount filters on the dependants range.
	GroupRequiredByCount Group = "requiredByCount"
	// GroupRequirementsCount filters on the imports range.
	GroupRequirementsCount Group = "requirementsCount"
)

// Groups lists every filter group in column order.
var Groups = []Group{
	GroupModuleName,
	GroupCumulativeSize,
	GroupRequiredByCount,
	GroupRequirementsCount,
}

// ParseGroup converts a string into a Group.
//
// Returns:
//   - Group: The matching group
//   - bool: false if s names no filter group
func ParseGroup(s string) (Group, bool) {
	for _, g := range Groups {
		if string(g) == s {
			return g, true
		}
	}
	return "", false
}

// Field returns the module column a group constrains.
func (g Group) Field() modules.Field {
	return modules.Field(g)
}

// Keys returns the patch keys that belong to the group.
//
// Clearing a group resets all of them together.
func (g Group) Keys() []Key {
	switch g {
	case GroupModuleName:
		return []Key{KeyModuleName}
	case GroupCumulativeSize:
		return []Key{KeyCumulativeSizeMin, KeyCumulativeSizeMax}
	case GroupRequiredByCount:
		return []Key{KeyRequiredByCountMin, KeyRequiredByCountMax}
	case GroupRequirementsCount:
		return []Key{KeyRequirementsCountMin, KeyRequirementsCountMax}
	default:
		return nil
	}
}

// NamePattern is the regular expression filter on module names.
//
// An empty Pattern is inactive.
type NamePattern struct {
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
}

// IsActive reports whether the pattern constrains the result.
func (p NamePattern) IsActive() bool {
	return p.Pattern != ""
}

// Compile returns the compiled pattern.
//
// Results are cached, so calling this on every render is cheap.
//
// Returns:
//   - *regexp.Regexp: Compiled expression, nil for an invalid pattern
//   - error: The compile error for an invalid pattern
func (p NamePattern) Compile() (*regexp.Regexp, error) {
	return utils.CompileRegex(p.Pattern)
}

// Err returns the compile error of an active pattern, or nil.
//
// The UI uses this to explain why the table is empty.
func (p NamePattern) Err() error {
	if !p.IsActive() {
		return nil
	}
	_, err := p.Compile()
	return err
}

// Range is an inclusive numeric range with optional bounds.
//
// A nil bound is unbounded on that side. Both nil means inactive.
type Range struct {
	Min *int64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max *int64 `json:"max,omitempty" yaml:"max,omitempty"`
}

// IsActive reports whether either bound is set.
func (r Range) IsActive() bool {
	return r.Min != nil || r.Max != nil
}

// Contains reports whether n lies within the range, bounds included.
//
// Parameters:
//   - n: The value to test
//
// Returns:
//   - bool: true if min <= n <= max for every bound that is set
func (r Range) Contains(n int64) bool {
	if r.Min != nil && n < *r.Min {
		return false
	}
	if r.Max != nil && n > *r.Max {
		return false
	}
	return true
}

// Criteria holds the filter state of every group.
//
// The zero value has no active group and matches every module.
type Criteria struct {
	ModuleName        NamePattern `json:"moduleName" yaml:"moduleName,omitempty"`
	CumulativeSize    Range       `json:"cumulativeSize" yaml:"cumulativeSize,omitempty"`
	RequiredByCount   Range       `json:"requiredByCount" yaml:"requiredByCount,omitempty"`
	RequirementsCount Range       `json:"requirementsCount" yaml:"requirementsCount,omitempty"`
}

// RangeFor returns the range of a numeric group.
//
// Returns:
//   - Range: The group's range
//   - bool: false for GroupModuleName or an unknown group
func (c Criteria) RangeFor(g Group) (Range, bool) {
	switch g {
	case GroupCumulativeSize:
		return c.CumulativeSize, true
	case GroupRequiredByCount:
		return c.RequiredByCount, true
	case GroupRequirementsCount:
		return c.RequirementsCount, true
	default:
		return Range{}, false
	}
}

// rangeRef returns a pointer to the range of a numeric group, or nil.
func (c *Criteria) rangeRef(g Group) *Range {
	switch g {
	case GroupCumulativeSize:
		return &c.CumulativeSize
	case GroupRequiredByCount:
		return &c.RequiredByCount
	case GroupRequirementsCount:
		return &c.RequirementsCount
	default:
		return nil
	}
}

// IsActive reports whether a group currently constrains the result.
func (c Criteria) IsActive(g Group) bool {
	if g == GroupModuleName {
		return c.ModuleName.IsActive()
	}
	r, ok := c.RangeFor(g)
	return ok && r.IsActive()
}

// ActiveGroups returns the active groups in column order.
func (c Criteria) ActiveGroups() []Group {
	var active []Group
	for _, g := range Groups {
		if c.IsActive(g) {
			active = append(active, g)
		}
	}
	return active
}

// IsEmpty reports whether no group is active.
func (c Criteria) IsEmpty() bool {
	return len(c.ActiveGroups()) == 0
}

// Clear returns a copy with every key of one group reset to inactive.
//
// Parameters:
//   - g: The group to clear
//
// Returns:
//   - Criteria: Copy with g inactive; other groups untouched
func (c Criteria) Clear(g Group) Criteria {
	if g == GroupModuleName {
		c.ModuleName = NamePattern{}
		return c
	}
	if r := c.rangeRef(g); r != nil {
		*r = Range{}
	}
	return c
}

// ParseMin parses a lower bound typed by the user.
//
// Empty or non-numeric text yields nil (unbounded). Fractions are rounded up,
// which keeps the comparison exact for integer fields (n >= 1.5 iff n >= 2).
//
// Parameters:
//   - s: Raw bound text
//
// Returns:
//   - *int64: The bound, or nil when absent
func ParseMin(s string) *int64 {
	return parseBound(s, math.Ceil, math.Inf(-1))
}

// ParseMax parses an upper bound typed by the user.
//
// Empty or non-numeric text yields nil (unbounded). Fractions are rounded down.
func ParseMax(s string) *int64 {
	return parseBound(s, math.Floor, math.Inf(1))
}

func parseBound(s string, round func(float64) float64, unbounded float64) *int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return &n
	}

	if !isDecimal(s) {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || f == unbounded {
		return nil
	}

	f = round(f)
	var n int64
	switch {
	case f >= math.MaxInt64:
		n = math.MaxInt64
	case f <= math.MinInt64:
		n = math.MinInt64
	default:
		n = int64(f)
	}
	return &n
}

// isDecimal rejects Go literal forms that ParseFloat accepts but users do not
// type as sizes: digit separators and hexadecimal mantissas.
func isDecimal(s string) bool {
	if strings.Contains(s, "_") {
		return false
	}
	s = strings.TrimLeft(s, "+-")
	return !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X")
}

// FormatBound renders a bound back into patch text; nil becomes "".
func FormatBound(b *int64) string {
	if b == nil {
		return ""
	}
	return strconv.FormatInt(*b, 10)
}

// Int64 returns a pointer to n, for building ranges in code.
func Int64(n int64) *int64 {
	return &n
}
