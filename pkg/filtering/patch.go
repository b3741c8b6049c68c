package filtering

import (
	"fmt"
	"sort"

	"github.com/ajxudir/bundlestat/pkg/errors"
	"github.com/ajxudir/bundlestat/pkg/utils"
)

// Key is a patch key as emitted by the table's filter inputs.
type Key string

const (
	KeyModuleName           Key = "moduleName"
	KeyCumulativeSizeMin    Key = "cumulativeSizeMin"
	KeyCumulativeSizeMax    Key = "cumulativeSizeMax"
	KeyRequiredByCountMin   Key = "requiredByCountMin"
	KeyRequiredByCountMax   Key = "requiredByCountMax"
	KeyRequirementsCountMin Key = "requirementsCountMin"
	KeyRequirementsCountMax Key = "requirementsCountMax"
)

// Keys lists every patch key in column order, min before max.
var Keys = []Key{
	KeyModuleName,
	KeyCumulativeSizeMin,
	KeyCumulativeSizeMax,
	KeyRequiredByCountMin,
	KeyRequiredByCountMax,
	KeyRequirementsCountMin,
	KeyRequirementsCountMax,
}

// KeyNames returns the patch keys as strings, for flag help and errors.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = string(k)
	}
	return names
}

// ParseKey converts a string into a Key.
func ParseKey(s string) (Key, bool) {
	for _, k := range Keys {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Group returns the filter group a key belongs to.
func (k Key) Group() Group {
	switch k {
	case KeyModuleName:
		return GroupModuleName
	case KeyCumulativeSizeMin, KeyCumulativeSizeMax:
		return GroupCumulativeSize
	case KeyRequiredByCountMin, KeyRequiredByCountMax:
		return GroupRequiredByCount
	case KeyRequirementsCountMin, KeyRequirementsCountMax:
		return GroupRequirementsCount
	default:
		return ""
	}
}

// isMin reports whether the key is the lower bound of its group.
func (k Key) isMin() bool {
	return k == KeyCumulativeSizeMin || k == KeyRequiredByCountMin || k == KeyRequirementsCountMin
}

// Patch is a partial update of the criteria, keyed like the UI inputs.
//
// An empty value clears that key. Keys not present are left untouched by Merge.
type Patch map[Key]string

// SortedKeys returns the keys of the patch in column order.
func (p Patch) SortedKeys() []Key {
	keys := make([]Key, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	order := make(map[Key]int, len(Keys))
	for i, k := range Keys {
		order[k] = i
	}
	sort.Slice(keys, func(i, j int) bool {
		oi, iok := order[keys[i]]
		oj, jok := order[keys[j]]
		if iok != jok {
			return iok
		}
		if !iok {
			return keys[i] < keys[j]
		}
		return oi < oj
	})
	return keys
}

// Merge returns a copy of c with the patch applied key by key.
//
// Name patterns are stored verbatim. Bounds are parsed with ParseMin/ParseMax,
// so non-numeric text clears the bound. Unknown keys are ignored.
//
// Parameters:
//   - p: The patch to apply
//
// Returns:
//   - Criteria: Updated copy; c itself is not modified
func (c Criteria) Merge(p Patch) Criteria {
	for key, value := range p {
		if key == KeyModuleName {
			c.ModuleName = NamePattern{Pattern: value}
			continue
		}
		r := c.rangeRef(key.Group())
		if r == nil {
			continue
		}
		if key.isMin() {
			r.Min = ParseMin(value)
		} else {
			r.Max = ParseMax(value)
		}
	}
	return c
}

// Patch renders the criteria as a patch holding every key.
//
// Inactive keys map to "". Merging the result into any criteria reproduces c.
func (c Criteria) Patch() Patch {
	p := Patch{KeyModuleName: c.ModuleName.Pattern}
	for _, g := range Groups[1:] {
		r, _ := c.RangeFor(g)
		keys := g.Keys()
		p[keys[0]] = FormatBound(r.Min)
		p[keys[1]] = FormatBound(r.Max)
	}
	return p
}

// ParsePatch builds a patch from "key=value" arguments.
//
// Later arguments win over earlier ones for the same key.
//
// Parameters:
//   - args: Arguments such as "moduleName=^react" or "cumulativeSizeMax="
//
// Returns:
//   - Patch: The parsed patch
//   - error: A flag validation error for malformed arguments or unknown keys
func ParsePatch(args []string) (Patch, error) {
	p := make(Patch, len(args))
	for _, arg := range args {
		rawKey, value, err := utils.SplitKeyValue(arg)
		if err != nil {
			return nil, errors.NewFlagValidationError("--filter", err.Error(), KeyNames())
		}
		key, ok := ParseKey(rawKey)
		if !ok {
			return nil, errors.NewFlagValidationError("--filter", fmt.Sprintf("unknown filter key %q", rawKey), KeyNames())
		}
		p[key] = value
	}
	return p, nil
}
