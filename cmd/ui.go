package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ajxudir/bundlestat/pkg/display"
	"github.com/ajxudir/bundlestat/pkg/ui"
)

var (
	uiView      viewFlags
	uiWatchFlag bool
)

var runUIFunc = ui.Run

var uiCmd = &cobra.Command{
	Use:     "ui [stats-file]",
	Aliases: []string{"tui"},
	Short:   "Explore modules in an interactive table",
	Long: `Open the module table in the terminal.

Keys: 1-5 sort by column (again to flip), tab moves the filter focus,
/ edits the name pattern, [ and ] edit the minimum and maximum of the
focused filter, c clears it, C clears all, r reloads, q quits.

With --watch (or watch.enabled in the config) the table reloads when the
stats file changes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUI,
}

func init() {
	uiView.register(uiCmd)
	uiCmd.Flags().BoolVarP(&uiWatchFlag, "watch", "w", false, "Reload when the stats file changes")
}

// runUI executes the ui command.
//
// It performs the following operations:
//   - Step 1: Loads the effective configuration and builds the filter state
//   - Step 2: Loads the stats file
//   - Step 3: Runs the interactive table, watching the file when enabled
//
// Parameters:
//   - cmd: Cobra command instance; its context cancels the program
//   - args: Optional stats file path
//
// Returns:
//   - error: Config, flag or stats errors, or a terminal error
func runUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadEffectiveConfig()
	if err != nil {
		return err
	}
	st, err := uiView.buildState(cfg)
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

	model := ui.NewModel(mods, st, ui.Options{
		Table:       display.TableOptions{HumanSizes: cfg.UseHumanSizes(), MaxNameWidth: cfg.Output.MaxNameWidth},
		Source:      path,
		MaxFileSize: cfg.GetMaxStatsFileSize(),
	})

	return runUIFunc(cmd.Context(), model, ui.WatchOptions{
		Enabled:  uiWatchFlag || cfg.Watch.Enabled,
		Debounce: time.Duration(cfg.GetDebounceMS()) * time.Millisecond,
		Patterns: cfg.Watch.Patterns,
	})
}
