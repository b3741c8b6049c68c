package config

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/ajxudir/bundlestat/pkg/errors"
	"github.com/ajxudir/bundlestat/pkg/filtering"
	"github.com/ajxudir/bundlestat/pkg/modules"
	"github.com/ajxudir/bundlestat/pkg/output"
	"github.com/ajxudir/bundlestat/pkg/sorting"
)

// ValidationResult holds the results of configuration validation.
type ValidationResult struct {
	Errors []*errors.ValidationError
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

func (r *ValidationResult) add(err *errors.ValidationError) {
	r.Errors = append(r.Errors, err)
}

// ErrorMessages returns all error messages as a formatted string.
//
// Returns:
//   - string: formatted error messages, or empty string if no errors
func (r *ValidationResult) ErrorMessages() string {
	if len(r.Errors) == 0 {
		return ""
	}
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = "  - " + e.Error()
	}
	return "Configuration validation failed:\n" + strings.Join(msgs, "\n")
}

// Err returns the validation outcome as a single error.
//
// Returns:
//   - error: nil when valid, the only error when there is one, otherwise a
//     config validation error listing all of them
func (r *ValidationResult) Err() error {
	switch len(r.Errors) {
	case 0:
		return nil
	case 1:
		return r.Errors[0]
	default:
		return errors.NewConfigValidationError("", r.ErrorMessages())
	}
}

// Validate checks every setting that names a column, filter key, format or pattern.
//
// Parameters:
//   - cfg: the configuration to check
//
// Returns:
//   - *ValidationResult: all problems found; never nil
func Validate(cfg *Config) *ValidationResult {
	result := &ValidationResult{}

	if _, err := cfg.SortSpec(); err != nil {
		if ve, ok := errors.IsValidationError(err); ok {
			result.add(ve)
		}
	}

	for key := range cfg.Defaults.Filters {
		if _, ok := filtering.ParseKey(key); !ok {
			ve := errors.NewConfigValidationError("defaults.filters."+key, "unknown filter key")
			ve.ValidKeys = filtering.KeyNames()
			result.add(ve)
		}
	}

	if _, err := output.ParseFormatStrict(cfg.Output.Format); err != nil {
		ve := errors.NewConfigValidationError("output.format", fmt.Sprintf("unknown output format %q", cfg.Output.Format))
		ve.ValidKeys = output.ValidFormats
		result.add(ve)
	}
	if cfg.Output.MaxNameWidth < 0 {
		result.add(errors.NewConfigValidationError("output.max_name_width", "must not be negative"))
	}

	if cfg.Watch.DebounceMS < 0 {
		result.add(errors.NewConfigValidationError("watch.debounce_ms", "must not be negative"))
	}
	for _, p := range cfg.Watch.Patterns {
		if _, err := glob.Compile(p); err != nil {
			result.add(errors.NewConfigValidationError("watch.patterns", fmt.Sprintf("invalid glob %q: %v", p, err)))
		}
	}

	if cfg.Stats.MaxFileSize < 0 {
		result.add(errors.NewConfigValidationError("stats.max_file_size", "must not be negative"))
	}

	return result
}

// SortSpec converts defaults.sort into a validated sort spec.
//
// Missing parts fall back to sorting.DefaultSpec; a missing field type is
// derived from the field.
//
// Returns:
//   - sorting.Spec: the initial sort
//   - error: a config validation error for unknown values
func (c *Config) SortSpec() (sorting.Spec, error) {
	spec := sorting.DefaultSpec
	s := c.Defaults.Sort

	if s.Field != "" {
		f, ok := modules.ParseField(s.Field)
		if !ok {
			ve := errors.NewConfigValidationError("defaults.sort.field", fmt.Sprintf("unknown field %q", s.Field))
			for _, field := range modules.Fields {
				ve.ValidKeys = append(ve.ValidKeys, string(field))
			}
			return spec, ve
		}
		spec.Field = f
		spec.FieldType = sorting.DefaultFieldType(f)
	}
	if s.FieldType != "" {
		ft, ok := sorting.ParseFieldType(s.FieldType)
		if !ok {
			ve := errors.NewConfigValidationError("defaults.sort.field_type", fmt.Sprintf("unknown field type %q", s.FieldType))
			ve.ValidKeys = []string{string(sorting.FieldTypeAlpha), string(sorting.FieldTypeNumeric)}
			return spec, ve
		}
		spec.FieldType = ft
	}
	if s.Direction != "" {
		d, ok := sorting.ParseDirection(s.Direction)
		if !ok {
			ve := errors.NewConfigValidationError("defaults.sort.direction", fmt.Sprintf("unknown direction %q", s.Direction))
			ve.ValidKeys = []string{string(sorting.Ascending), string(sorting.Descending)}
			return spec, ve
		}
		spec.Direction = d
	}

	if err := spec.Validate(); err != nil {
		return spec, errors.NewConfigValidationError("defaults.sort", err.Error())
	}
	return spec, nil
}

// Criteria converts defaults.filters into filter criteria.
//
// Unknown keys are skipped here; Validate reports them.
func (c *Config) Criteria() filtering.Criteria {
	patch := make(filtering.Patch, len(c.Defaults.Filters))
	for key, value := range c.Defaults.Filters {
		if k, ok := filtering.ParseKey(key); ok {
			patch[k] = value
		}
	}
	return filtering.Criteria{}.Merge(patch)
}
