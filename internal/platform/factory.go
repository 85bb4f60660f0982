package platform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/assetlint/pkg/adapters/watch"
	"github.com/aretw0/assetlint/pkg/core"
	"github.com/aretw0/assetlint/pkg/engine"
)

// Resolve loads the project configuration and returns the named kinds
// (all built-in kinds when names is empty).
func Resolve(projectRoot string, names []string, opts ...Option) ([]engine.Kind, error) {
	o := apply(opts)
	return o.resolve(projectRoot, names)
}

// Validate runs the named kinds under projectRoot in order.
func Validate(ctx context.Context, projectRoot string, names []string, opts ...Option) ([]core.Result, error) {
	o := apply(opts)
	kinds, err := o.resolve(projectRoot, names)
	if err != nil {
		return nil, err
	}

	runner := engine.NewRunner(o.logger)
	results, err := runner.RunAll(ctx, kinds...)
	o.logger.Debug("runner state", "state", runner.State())
	return results, err
}

// Watch validates the named kinds once, then again after every change under
// their roots, until ctx is done. onResults receives every outcome.
// Roots missing when Watch starts are not picked up later.
func Watch(ctx context.Context, projectRoot string, names []string, onResults func([]core.Result, error), opts ...Option) error {
	o := apply(opts)
	kinds, err := o.resolve(projectRoot, names)
	if err != nil {
		return err
	}

	runner := engine.NewRunner(o.logger)
	validate := func(ctx context.Context) {
		results, err := runner.RunAll(ctx, kinds...)
		if errors.Is(err, context.Canceled) {
			return
		}
		onResults(results, err)
	}

	roots := make([]string, 0, len(kinds))
	for _, k := range kinds {
		roots = append(roots, k.Root)
	}

	validate(ctx)

	w := watch.New(roots, validate,
		watch.WithLogger(o.logger),
		watch.WithDebounce(o.debounce),
	)
	err = w.Run(ctx)
	o.logger.Debug("watcher stopped", "state", w.State(), "runner", runner.State())
	return err
}

func apply(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

func (o *options) resolve(projectRoot string, names []string) ([]engine.Kind, error) {
	path := o.configPath
	if path == "" {
		path = filepath.Join(projectRoot, ConfigFile)
	}
	cfg, err := LoadConfig(path, o.configRequired)
	if err != nil {
		return nil, err
	}

	for name, dir := range o.dirs {
		if _, ok := find(name); !ok {
			return nil, fmt.Errorf("%w: %q", core.ErrUnknownKind, name)
		}
		kc := cfg.lookup(name)
		kc.Dir = dir
		cfg = cfg.with(name, kc)
	}

	kinds, err := cfg.Kinds(projectRoot, names...)
	if err != nil {
		return nil, err
	}
	for _, k := range kinds {
		if err := k.Walk.Validate(); err != nil {
			return nil, fmt.Errorf("invalid %s configuration: %w", k.Name, err)
		}
	}
	return kinds, nil
}
