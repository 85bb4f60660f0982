package watch

import "github.com/aretw0/introspection"

// WatcherState exposes internal state for observability.
type WatcherState struct {
	Roots       []string `json:"roots"`
	Active      bool     `json:"active"`
	WatchedDirs int      `json:"watched_dirs"`
	Triggers    int      `json:"triggers"`
}

// State implements introspection.Introspectable.
func (w *Watcher) State() any {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return WatcherState{
		Roots:       append([]string(nil), w.roots...),
		Active:      w.active,
		WatchedDirs: w.watched,
		Triggers:    w.triggers,
	}
}

// ComponentType implements introspection.Component.
func (w *Watcher) ComponentType() string {
	return "watcher"
}

var _ introspection.Introspectable = (*Watcher)(nil)
var _ introspection.Component = (*Watcher)(nil)
