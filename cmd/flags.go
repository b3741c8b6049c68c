package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajxudir/bundlestat/pkg/config"
	"github.com/ajxudir/bundlestat/pkg/errors"
	"github.com/ajxudir/bundlestat/pkg/filtering"
	"github.com/ajxudir/bundlestat/pkg/modules"
	"github.com/ajxudir/bundlestat/pkg/sorting"
	"github.com/ajxudir/bundlestat/pkg/state"
)

// viewFlags holds the filter and sort flags shared by list, state and ui.
type viewFlags struct {
	sort      string
	fieldType string
	filters   []string
	name      string
	noDefault bool
}

// register adds the view flags to cmd.
func (f *viewFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.sort, "sort", "s", "", "Sort column, optionally with direction: field[:asc|desc]")
	cmd.Flags().StringVar(&f.fieldType, "field-type", "", "Sort comparator: alpha, numeric (size is an alias of numeric)")
	cmd.Flags().StringArrayVarP(&f.filters, "filter", "f", nil, "Filter as key=value (repeatable), e.g. cumulativeSizeMin=1024")
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "Module name pattern (regular expression, unanchored)")
	cmd.Flags().BoolVar(&f.noDefault, "no-default-filters", false, "Ignore defaults.filters from the config")
}

// reset restores the zero values, for tests that run commands repeatedly.
func (f *viewFlags) reset() {
	*f = viewFlags{}
}

// buildState creates the filter state from config defaults and flags.
//
// It performs the following operations:
//   - Step 1: Starts from the config's default sort and filters
//   - Step 2: Applies --sort and --field-type
//   - Step 3: Merges --filter patches, then --name
//
// Parameters:
//   - cfg: The effective configuration
//
// Returns:
//   - *state.FilterState: The initial state
//   - error: A flag validation error for unknown fields, keys or directions
func (f *viewFlags) buildState(cfg *config.Config) (*state.FilterState, error) {
	spec, err := cfg.SortSpec()
	if err != nil {
		return nil, err
	}
	if spec, err = f.applySort(spec); err != nil {
		return nil, err
	}

	criteria := filtering.Criteria{}
	if !f.noDefault {
		criteria = cfg.Criteria()
	}

	patch, err := filtering.ParsePatch(f.filters)
	if err != nil {
		return nil, err
	}
	if f.name != "" {
		patch[filtering.KeyModuleName] = f.name
	}

	return state.New(state.WithCriteria(criteria.Merge(patch)), state.WithSort(spec)), nil
}

// applySort overlays --sort and --field-type on spec.
func (f *viewFlags) applySort(spec sorting.Spec) (sorting.Spec, error) {
	if f.sort != "" {
		name, dir, _ := strings.Cut(f.sort, ":")
		field, ok := modules.ParseField(name)
		if !ok {
			return spec, errors.NewFlagValidationError("--sort", fmt.Sprintf("unknown sort field %q", name), fieldNames())
		}
		spec = sorting.Spec{Field: field, FieldType: sorting.DefaultFieldType(field), Direction: sorting.Ascending}
		if dir != "" {
			d, ok := sorting.ParseDirection(dir)
			if !ok {
				return spec, errors.NewFlagValidationError("--sort", fmt.Sprintf("unknown direction %q", dir), []string{"asc", "desc"})
			}
			spec.Direction = d
		}
	}

	if f.fieldType != "" {
		ft, ok := sorting.ParseFieldType(f.fieldType)
		if !ok {
			return spec, errors.NewFlagValidationError("--field-type", fmt.Sprintf("unknown field type %q", f.fieldType),
				[]string{string(sorting.FieldTypeAlpha), string(sorting.FieldTypeNumeric)})
		}
		spec.FieldType = ft
	}

	return spec, spec.Validate()
}

func fieldNames() []string {
	out := make([]string, len(modules.Fields))
	for i, f := range modules.Fields {
		out[i] = string(f)
	}
	return out
}

// resolveStatsPath returns the stats file argument or the configured path.
//
// Returns:
//   - string: The stats file path
//   - error: A stats validation error when neither gives a path
func resolveStatsPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}
	if path := strings.TrimSpace(cfg.Stats.Path); path != "" {
		return path, nil
	}
	return "", errors.NewStatsValidationError("stats.path", "no stats file given",
		"pass the stats file as an argument, set stats.path or "+config.EnvStats)
}

// loadModules reads the stats file with the configured size limit.
func loadModules(path string, cfg *config.Config) ([]modules.Module, error) {
	max := cfg.GetMaxStatsFileSize()
	if max == 0 {
		max = modules.DefaultMaxStatsFileSize
	}
	return modules.LoadWithLimit(path, max)
}
