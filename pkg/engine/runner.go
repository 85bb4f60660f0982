package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/aretw0/assetlint/pkg/adapters/fs"
	"github.com/aretw0/assetlint/pkg/core"
	"github.com/aretw0/assetlint/pkg/policy"
)

// Kind is one family of assets validated the same way.
type Kind struct {
	Name   string // e.g. "workflows"
	Unit   string // e.g. "workflow files", used in the summary line
	Root   string
	Walk   fs.Spec
	Policy policy.Policy
}

// Runner validates kinds sequentially.
type Runner struct {
	logger *slog.Logger

	mu   sync.RWMutex
	runs int
	last *core.Result
}

// NewRunner creates a Runner. A nil logger falls back to slog.Default().
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{logger: logger}
}

// Run validates every candidate of kind and returns the aggregated result.
//
// A missing root is a successful, empty result. The context is checked between
// candidates so a caller can stop a long run.
func (r *Runner) Run(ctx context.Context, kind Kind) (core.Result, error) {
	res := core.Result{
		Kind:        kind.Name,
		Unit:        kind.Unit,
		Root:        kind.Root,
		Diagnostics: []core.Diagnostic{},
	}
	if kind.Policy == nil {
		return res, fmt.Errorf("kind %s has no policy", kind.Name)
	}

	candidates, err := fs.Enumerate(kind.Root, kind.Walk)
	if errors.Is(err, core.ErrRootNotFound) {
		r.logger.Info("no directory found, skipping validation", "kind", kind.Name, "root", kind.Root)
		res.RootMissing = true
		r.record(res)
		return res, nil
	}
	if err != nil {
		return res, fmt.Errorf("failed to enumerate %s: %w", kind.Name, err)
	}

	r.logger.Debug("validating", "kind", kind.Name, "root", kind.Root, "mode", kind.Walk.Mode, "candidates", len(candidates))

	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Validated++
		diags := r.check(kind, c)
		if len(diags) > 0 {
			r.logger.Debug("invalid", "file", c.Label, "violations", len(diags))
		}
		res.Diagnostics = append(res.Diagnostics, diags...)
	}

	r.record(res)
	return res, nil
}

// RunAll validates kinds in order and stops at the first hard error.
func (r *Runner) RunAll(ctx context.Context, kinds ...Kind) ([]core.Result, error) {
	results := make([]core.Result, 0, len(kinds))
	for _, k := range kinds {
		res, err := r.Run(ctx, k)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) check(kind Kind, c core.Candidate) []core.Diagnostic {
	if c.Err != nil {
		if errors.Is(c.Err, core.ErrMissingMember) {
			return []core.Diagnostic{diagnostic(c, core.Violation{
				Code:   core.CodeMissingMember,
				Reason: "Missing " + kind.Walk.Member,
			})}
		}
		return []core.Diagnostic{readFailure(c, c.Err)}
	}

	data, err := os.ReadFile(c.Path)
	if err != nil {
		return []core.Diagnostic{readFailure(c, err)}
	}

	violations := kind.Policy.Check(core.Document{Path: c.Path, Label: c.Label, Content: string(data)})
	diags := make([]core.Diagnostic, 0, len(violations))
	for _, v := range violations {
		diags = append(diags, diagnostic(c, v))
	}
	return diags
}

func (r *Runner) record(res core.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs++
	r.last = &res
}

func diagnostic(c core.Candidate, v core.Violation) core.Diagnostic {
	return core.Diagnostic{Label: c.Label, Path: c.Path, Violation: v}
}

func readFailure(c core.Candidate, err error) core.Diagnostic {
	return diagnostic(c, core.Violation{Code: core.CodeReadError, Reason: err.Error()})
}
