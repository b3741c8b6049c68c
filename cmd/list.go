package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ajxudir/bundlestat/pkg/display"
	"github.com/ajxudir/bundlestat/pkg/filtering"
	"github.com/ajxudir/bundlestat/pkg/modules"
	"github.com/ajxudir/bundlestat/pkg/output"
	"github.com/ajxudir/bundlestat/pkg/state"
	"github.com/ajxudir/bundlestat/pkg/warnings"
)

var (
	listView          viewFlags
	listOutputFlag    string
	listHumanFlag     bool
	listNameWidthFlag int
)

var listCmd = &cobra.Command{
	Use:     "list [stats-file]",
	Aliases: []string{"ls"},
	Short:   "Print the filtered and sorted module table",
	Long: `Load a bundle stats file and print its modules, filtered and sorted.

Filters and sort start from defaults in .bundlestat.yml and are refined by flags:

  bundlestat list dist/stats.json --sort cumulativeSize:desc -f cumulativeSizeMin=1024
  bundlestat list --name 'node_modules/(react|lodash)' -o json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listView.register(listCmd)
	listCmd.Flags().StringVarP(&listOutputFlag, "output", "o", "", "Output format: table, json, csv, xml (default: output.format from config)")
	listCmd.Flags().BoolVar(&listHumanFlag, "human", true, "Show byte sizes in KiB/MiB in tables")
	listCmd.Flags().IntVar(&listNameWidthFlag, "max-name-width", 0, "Truncate module names wider than this in tables (0: config value)")
}

// runList executes the list command.
//
// It performs the following operations:
//   - Step 1: Loads the effective configuration and builds the filter state
//   - Step 2: Resolves the output format from --output or the config
//   - Step 3: Loads the stats file and applies filters and sort
//   - Step 4: Prints a table, or writes JSON/CSV/XML
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Optional stats file path
//
// Returns:
//   - error: Config, flag or stats errors, or a write error
func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadEffectiveConfig()
	if err != nil {
		return err
	}

	st, err := listView.buildState(cfg)
	if err != nil {
		return err
	}

	formatValue := cfg.Output.Format
	if listOutputFlag != "" {
		formatValue = listOutputFlag
	}
	format, err := output.ParseFormatStrict(formatValue)
	if err != nil {
		return err
	}

	path, err := resolveStatsPath(args, cfg)
	if err != nil {
		return err
	}
	mods, err := loadModules(path, cfg)
	if err != nil {
		return err
	}
	shown := st.Apply(mods)

	if output.IsStructuredFormat(format) {
		if err := st.Criteria().ModuleName.Err(); err != nil {
			warnings.PatternRejected(st.Criteria().ModuleName.Pattern, err)
		}
		if cmd != nil && cmd.Flags().Changed("human") {
			warnings.IgnoredFlag("--human", "structured output always reports bytes")
		}
		return output.WriteListResult(os.Stdout, format, buildListResult(path, mods, shown, st))
	}

	opts := display.TableOptions{
		HumanSizes:   cfg.UseHumanSizes(),
		MaxNameWidth: cfg.Output.MaxNameWidth,
	}
	if cmd != nil && cmd.Flags().Changed("human") {
		opts.HumanSizes = listHumanFlag
	}
	if listNameWidthFlag > 0 {
		opts.MaxNameWidth = listNameWidthFlag
	}

	printList(mods, shown, st, opts)
	return nil
}

// printList writes the table view of a listing to stdout.
func printList(mods, shown []modules.Module, st *state.FilterState, opts display.TableOptions) {
	display.PrintFilterSummary(os.Stdout, st.Criteria())
	if len(shown) == 0 {
		display.PrintNoModulesMessage(os.Stdout, len(mods))
		return
	}
	display.PrintModuleTable(os.Stdout, shown, st.Sort(), opts)
	display.PrintCounts(os.Stdout, len(shown), len(mods))
}

// buildListResult converts a listing into its structured output form.
//
// Parameters:
//   - source: Stats file path
//   - mods: All loaded modules
//   - shown: Modules after filtering and sorting
//   - st: The state that produced shown
//
// Returns:
//   - *output.ListResult: Result ready for output.WriteListResult
func buildListResult(source string, mods, shown []modules.Module, st *state.FilterState) *output.ListResult {
	spec := st.Sort()
	result := &output.ListResult{
		Source: source,
		Summary: output.ListSummary{
			TotalModules: len(mods),
			ShownModules: len(shown),
			TotalSize:    sumSizes(mods),
			ShownSize:    sumSizes(shown),
		},
		Sort: output.SortEntry{
			Field:     string(spec.Field),
			FieldType: string(spec.FieldType),
			Direction: string(spec.Direction),
		},
		Modules: make([]output.ModuleEntry, 0, len(shown)),
	}

	c := st.Criteria()
	for _, g := range c.ActiveGroups() {
		entry := output.FilterEntry{Group: string(g), Summary: display.FilterSummary(c, g)}
		if g == filtering.GroupModuleName {
			if err := c.ModuleName.Err(); err != nil {
				entry.Error = err.Error()
			}
		}
		result.Filters = append(result.Filters, entry)
	}

	for _, m := range shown {
		result.Modules = append(result.Modules, output.ModuleEntry{
			Name:              m.Name,
			CumulativeSize:    m.CumulativeSize,
			Size:              m.Size,
			RequiredByCount:   m.RequiredByCount,
			RequirementsCount: m.RequirementsCount,
		})
	}
	return result
}

func sumSizes(mods []modules.Module) int64 {
	var total int64
	for _, m := range mods {
		total += m.Size
	}
	return total
}
