package platform

import (
	"log/slog"
	"time"
)

// options holds the internal configuration for a validation run.
type options struct {
	logger         *slog.Logger
	configPath     string
	configRequired bool
	dirs           map[string]string
	debounce       time.Duration
}

// Option defines a functional option for configuring a run.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger:   nil, // slog.Default() at resolve time
		dirs:     make(map[string]string),
		debounce: 100 * time.Millisecond,
	}
}

// WithLogger sets the logger for the runner and watcher.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithConfigFile reads overrides from path instead of <root>/assetlint.yaml.
// An explicit file must exist.
func WithConfigFile(path string) Option {
	return func(o *options) {
		o.configPath = path
		o.configRequired = true
	}
}

// WithDir replaces the root directory of one kind, taking precedence over the config file.
func WithDir(kind, dir string) Option {
	return func(o *options) {
		o.dirs[kind] = dir
	}
}

// WithDebounce sets the quiet period the watcher waits before re-validating.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		o.debounce = d
	}
}
