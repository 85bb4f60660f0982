package engine

import (
	"github.com/aretw0/introspection"
)

// RunnerState exposes internal state for observability.
type RunnerState struct {
	Runs            int    `json:"runs"`
	LastKind        string `json:"last_kind,omitempty"`
	LastValidated   int    `json:"last_validated"`
	LastDiagnostics int    `json:"last_diagnostics"`
	LastRootMissing bool   `json:"last_root_missing,omitempty"`
}

// State implements introspection.Introspectable.
func (r *Runner) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state := RunnerState{Runs: r.runs}
	if r.last != nil {
		state.LastKind = r.last.Kind
		state.LastValidated = r.last.Validated
		state.LastDiagnostics = len(r.last.Diagnostics)
		state.LastRootMissing = r.last.RootMissing
	}
	return state
}

// ComponentType implements introspection.Component.
func (r *Runner) ComponentType() string {
	return "runner"
}

var _ introspection.Introspectable = (*Runner)(nil)
var _ introspection.Component = (*Runner)(nil)
