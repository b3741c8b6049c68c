package config

import (
	"maps"

	"github.com/ajxudir/bundlestat/pkg/verbose"
)

// mergeConfigs merges two configurations with custom taking precedence.
//
// Scalar settings from custom win when they are set. Default filters are
// merged key by key, like a filter patch; an empty value in custom clears the
// key inherited from base.
//
// Parameters:
//   - base: the base configuration
//   - custom: the custom configuration that overrides base
//
// Returns:
//   - *Config: the merged configuration; base and custom are not modified
func mergeConfigs(base, custom *Config) *Config {
	if custom == nil {
		return base
	}

	merged := *base
	merged.Extends = nil
	merged.Defaults.Filters = maps.Clone(base.Defaults.Filters)
	merged.Watch.Patterns = append([]string(nil), base.Watch.Patterns...)

	if custom.Stats.Path != "" {
		merged.Stats.Path = custom.Stats.Path
	}
	if custom.Stats.MaxFileSize != 0 {
		merged.Stats.MaxFileSize = custom.Stats.MaxFileSize
	}

	merged.Defaults.Sort = mergeSort(base.Defaults.Sort, custom.Defaults.Sort)
	for key, value := range custom.Defaults.Filters {
		if merged.Defaults.Filters == nil {
			merged.Defaults.Filters = make(map[string]string)
		}
		if value == "" {
			delete(merged.Defaults.Filters, key)
			continue
		}
		merged.Defaults.Filters[key] = value
	}

	if custom.Output.Format != "" {
		merged.Output.Format = custom.Output.Format
	}
	if custom.Output.HumanSizes != nil {
		merged.Output.HumanSizes = custom.Output.HumanSizes
	}
	if custom.Output.MaxNameWidth != 0 {
		merged.Output.MaxNameWidth = custom.Output.MaxNameWidth
	}

	if custom.Watch.Enabled {
		merged.Watch.Enabled = true
	}
	if custom.Watch.DebounceMS != 0 {
		merged.Watch.DebounceMS = custom.Watch.DebounceMS
	}
	merged.Watch.Patterns = mergeStringLists(merged.Watch.Patterns, custom.Watch.Patterns)

	if custom.Security != nil {
		merged.Security = custom.Security
	}
	if custom.Source != "" {
		merged.Source = custom.Source
	}

	verbose.Printf("Config merged: sort=%s filters=%d", merged.Defaults.Sort.Field, len(merged.Defaults.Filters))
	return &merged
}

// mergeSort overlays the set parts of custom onto base.
//
// Choosing a new field without a field type drops the inherited field type,
// since it belonged to the old field.
func mergeSort(base, custom SortCfg) SortCfg {
	if custom.Field != "" && custom.Field != base.Field {
		base.Field = custom.Field
		base.FieldType = ""
	}
	if custom.FieldType != "" {
		base.FieldType = custom.FieldType
	}
	if custom.Direction != "" {
		base.Direction = custom.Direction
	}
	return base
}

// mergeStringLists appends the items of custom not already in base.
func mergeStringLists(base, custom []string) []string {
	seen := make(map[string]bool, len(base))
	for _, s := range base {
		seen[s] = true
	}
	result := base
	for _, s := range custom {
		if !seen[s] {
			result = append(result, s)
			seen[s] = true
		}
	}
	return result
}
