// Package watch reloads a stats file when it changes on disk.
//
// The directory holding the file is watched rather than the file itself, so
// bundlers that replace the file atomically are picked up too. Bursts of
// events are collapsed into one callback after a debounce delay.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"

	"github.com/ajxudir/bundlestat/pkg/verbose"
)

// DefaultDebounce is used when a zero debounce is given.
const DefaultDebounce = 200 * time.Millisecond

// Watcher calls OnChange when the stats file, or a file matching one of the
// extra patterns, is written, created or removed.
type Watcher struct {
	path     string
	debounce time.Duration
	patterns []glob.Glob
	onChange func(path string)

	fsWatcher *fsnotify.Watcher
	stop      chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	timerMu sync.Mutex
	timer   *time.Timer
}

// New creates a watcher for a stats file.
//
// Parameters:
//   - path: The stats file
//   - debounce: Quiet period before OnChange fires; 0 selects DefaultDebounce
//   - patterns: Extra glob patterns matched against file base names in the same directory
//   - onChange: Called with the stats file path after a change settles
//
// Returns:
//   - *Watcher: The watcher, not yet started
//   - error: When a pattern does not compile
func New(path string, debounce time.Duration, patterns []string, onChange func(path string)) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		onChange: onChange,
		stop:     make(chan struct{}),
	}
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid watch pattern %q: %w", p, err)
		}
		w.patterns = append(w.patterns, g)
	}
	return w, nil
}

// Matches reports whether an event for name should trigger a reload.
func (w *Watcher) Matches(name string) bool {
	name = filepath.Clean(name)
	if name == w.path {
		return true
	}
	if filepath.Dir(name) != filepath.Dir(w.path) {
		return false
	}
	base := filepath.Base(name)
	for _, g := range w.patterns {
		if g.Match(base) {
			return true
		}
	}
	return false
}

// Start begins watching in a background goroutine.
//
// The goroutine exits when ctx is cancelled or Stop is called.
//
// Parameters:
//   - ctx: Cancels the watch loop
//
// Returns:
//   - error: When the directory cannot be watched
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.fsWatcher = fsw

	verbose.Infof("Watching %s (debounce %s)", w.path, w.debounce)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer fsw.Close()
		w.run(ctx)
	}()
	return nil
}

func (w *Watcher) run(ctx context.Context) {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.Matches(event.Name) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				verbose.Printf("Change detected: %s %s", event.Op, event.Name)
				w.schedule()
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			verbose.Printf("Watcher error: %v", err)

		case <-w.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (w *Watcher) schedule() {
	w.timerMu.Lock()
	defer w.timerMu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case <-w.stop:
			return
		default:
		}
		if w.onChange != nil {
			w.onChange(w.path)
		}
	})
}

// Stop ends the watch loop and cancels a pending callback.
//
// It is safe to call Stop more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stop)
	})
	w.timerMu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timerMu.Unlock()
	w.wg.Wait()
}
