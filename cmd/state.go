package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ajxudir/bundlestat/pkg/filtering"
	"github.com/ajxudir/bundlestat/pkg/output"
	"github.com/ajxudir/bundlestat/pkg/state"
)

var stateView viewFlags

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print the initial filter and sort state as JSON",
	Long: `Print the filter and sort state that list and ui start from, after
config defaults, environment and flags are applied.

Every filter key is listed in column order; inactive keys have an empty value.`,
	Args: cobra.NoArgs,
	RunE: runState,
}

func init() {
	stateView.register(stateCmd)
}

// runState executes the state command.
func runState(cmd *cobra.Command, args []string) error {
	cfg, err := loadEffectiveConfig()
	if err != nil {
		return err
	}
	st, err := stateView.buildState(cfg)
	if err != nil {
		return err
	}
	return writeState(st)
}

// writeState writes a snapshot of st to stdout.
func writeState(st *state.FilterState) error {
	snap := st.Snapshot()
	patch := snap.Criteria.Patch()

	groups := make([]output.StateEntry, 0, len(filtering.Groups))
	for _, g := range filtering.Groups {
		entry := output.StateEntry{Key: string(g), Active: snap.ActiveFilters[g]}
		for _, k := range g.Keys() {
			entry.Values = append(entry.Values, output.KeyValue{Key: string(k), Value: patch[k]})
		}
		groups = append(groups, entry)
	}

	sort := output.SortEntry{
		Field:     string(snap.Sort.Field),
		FieldType: string(snap.Sort.FieldType),
		Direction: string(snap.Sort.Direction),
	}
	return output.WriteStateJSON(os.Stdout, sort, groups)
}
