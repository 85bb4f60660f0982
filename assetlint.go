package assetlint

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/assetlint/internal/platform"
	"github.com/aretw0/assetlint/pkg/core"
)

// --- Kinds ---

// Built-in asset kinds.
const (
	KindWorkflows = platform.KindWorkflows
	KindSkills    = platform.KindSkills
	KindRules     = platform.KindRules
)

// Kinds returns the built-in kind names in the order ValidateAll runs them.
func Kinds() []string {
	return platform.Names()
}

// --- Configuration ---

// Option defines a functional option for configuring a run.
type Option = platform.Option

// WithLogger sets the logger used by the runner and the watcher.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithConfigFile reads overrides from path instead of <root>/assetlint.yaml.
// The file must exist.
func WithConfigFile(path string) Option {
	return platform.WithConfigFile(path)
}

// WithDir replaces the directory validated for kind.
func WithDir(kind, dir string) Option {
	return platform.WithDir(kind, dir)
}

// WithDebounce sets how long Watch waits for changes to settle.
func WithDebounce(d time.Duration) Option {
	return platform.WithDebounce(d)
}

// --- Operations ---

// Validate runs a single kind under projectRoot.
func Validate(ctx context.Context, projectRoot, kind string, opts ...Option) (core.Result, error) {
	results, err := platform.Validate(ctx, projectRoot, []string{kind}, opts...)
	if err != nil {
		return core.Result{}, err
	}
	if len(results) != 1 {
		return core.Result{}, fmt.Errorf("expected one result for %s, got %d", kind, len(results))
	}
	return results[0], nil
}

// ValidateAll runs the given kinds in order, or every built-in kind when
// kinds is empty.
func ValidateAll(ctx context.Context, projectRoot string, kinds []string, opts ...Option) ([]core.Result, error) {
	return platform.Validate(ctx, projectRoot, kinds, opts...)
}

// Watch validates kinds (all of them when empty) and re-validates after every
// change under their directories until ctx is done.
func Watch(ctx context.Context, projectRoot string, kinds []string, onResults func([]core.Result, error), opts ...Option) error {
	return platform.Watch(ctx, projectRoot, kinds, onResults, opts...)
}

// FindProjectRoot walks up from start looking for assetlint.yaml or .git.
func FindProjectRoot(start string) (string, error) {
	return platform.FindRoot(start)
}
