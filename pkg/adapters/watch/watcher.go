// Package watch triggers a callback when files under a set of roots change.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// DefaultIgnore skips editor swap and backup files.
var DefaultIgnore = []string{"**/*~", "**/.*.swp", "**/.*.swx", "**/.#*", "**/4913"}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before the callback fires.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithIgnore replaces the ignored path patterns (doublestar syntax, slash-separated).
func WithIgnore(patterns ...string) Option {
	return func(w *Watcher) {
		w.ignore = patterns
	}
}

// WithLogger sets the logger for the watcher.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// Watcher observes directory trees and calls onChange once per burst of events.
// The callback runs on the watcher goroutine, so runs never overlap.
type Watcher struct {
	roots    []string
	onChange func(ctx context.Context)
	debounce time.Duration
	ignore   []string
	logger   *slog.Logger

	mu       sync.RWMutex
	active   bool
	watched  int
	triggers int
}

// New creates a Watcher over roots. Roots that do not exist are skipped.
func New(roots []string, onChange func(ctx context.Context), opts ...Option) *Watcher {
	w := &Watcher{
		roots:    roots,
		onChange: onChange,
		debounce: 100 * time.Millisecond,
		ignore:   DefaultIgnore,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run blocks until ctx is done or the watcher fails.
func (w *Watcher) Run(ctx context.Context) error {
	for _, p := range w.ignore {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid ignore pattern %q: %w", p, doublestar.ErrBadPattern)
		}
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	for _, root := range w.roots {
		if err := w.addTree(fw, root); err != nil {
			_ = fw.Close()
			return err
		}
	}

	done := make(chan error, 1)
	finish := func(err error) {
		select {
		case done <- err:
		default:
		}
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		err := w.loop(ctx, fw)
		finish(err)
		return err
	}, lifecycle.WithErrorHandler(func(err error) {
		w.logger.Error("watcher panic", "error", err)
		finish(fmt.Errorf("watcher panic: %w", err))
	}))

	return <-done
}

func (w *Watcher) loop(ctx context.Context, fw *fsnotify.Watcher) error {
	w.setActive(true)
	defer w.setActive(false)
	defer fw.Close()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return errors.New("watcher events channel closed")
			}
			if w.ignored(event.Name) {
				continue
			}
			w.logger.Debug("event received", "name", event.Name, "op", event.Op.String())

			// fsnotify is not recursive: follow new directories.
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(fw, event.Name); err != nil {
						w.logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
					}
				}
			}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.trigger(ctx)

		case wErr, ok := <-fw.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return errors.New("watcher errors channel closed")
			}
			w.logger.Error("fsnotify error", "error", wErr)
		}
	}
}

func (w *Watcher) trigger(ctx context.Context) {
	w.mu.Lock()
	w.triggers++
	w.mu.Unlock()
	w.onChange(ctx)
}

func (w *Watcher) addTree(fw *fsnotify.Watcher, root string) error {
	if _, err := os.Stat(root); errors.Is(err, os.ErrNotExist) {
		w.logger.Debug("watch root does not exist, skipping", "root", root)
		return nil
	}

	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := fw.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		w.mu.Lock()
		w.watched++
		w.mu.Unlock()
		return nil
	})
}

func (w *Watcher) ignored(name string) bool {
	name = filepath.ToSlash(name)
	for _, p := range w.ignore {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}

func (w *Watcher) setActive(active bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.active = active
}
