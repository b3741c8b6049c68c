package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ajxudir/bundlestat/pkg/modules"
	"github.com/ajxudir/bundlestat/pkg/verbose"
	"github.com/ajxudir/bundlestat/pkg/watch"
)

// WatchOptions enables reloading the table when the stats file changes.
//
// Fields:
//   - Enabled: Watch the stats file
//   - Debounce: Quiet period before reloading
//   - Patterns: Extra file patterns that trigger a reload
type WatchOptions struct {
	Enabled  bool
	Debounce time.Duration
	Patterns []string
}

// LoadCmd returns a command that loads a stats file into a ModulesMsg.
//
// Parameters:
//   - path: The stats file
//   - maxSize: Size limit in bytes; 0 selects modules.DefaultMaxStatsFileSize
func LoadCmd(path string, maxSize int64) tea.Cmd {
	if maxSize <= 0 {
		maxSize = modules.DefaultMaxStatsFileSize
	}
	return func() tea.Msg {
		mods, err := modules.LoadWithLimit(path, maxSize)
		return ModulesMsg{Modules: mods, Err: err}
	}
}

// Run starts the interactive table and blocks until the user quits.
//
// It performs the following operations:
//   - Step 1: Creates a full-screen program for m
//   - Step 2: When watching, starts a watcher that sends a ModulesMsg per change
//   - Step 3: Runs the program until quit or ctx is cancelled
//
// Parameters:
//   - ctx: Cancels the program and the watcher
//   - m: The table model; its Source is watched
//   - w: Watch options
//
// Returns:
//   - error: When the watcher cannot start or the program fails
func Run(ctx context.Context, m Model, w WatchOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if w.Enabled && m.opts.Source != "" {
		load := LoadCmd(m.opts.Source, m.opts.MaxFileSize)
		watcher, err := watch.New(m.opts.Source, w.Debounce, w.Patterns, func(string) {
			p.Send(load())
		})
		if err != nil {
			return err
		}
		if err := watcher.Start(ctx); err != nil {
			return err
		}
		defer watcher.Stop()
		verbose.Infof("Live reload enabled for %s", m.opts.Source)
	}

	_, err := p.Run()
	return err
}
