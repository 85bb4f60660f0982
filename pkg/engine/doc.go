// Package engine runs the validation of one or more asset kinds.
//
// A Kind pairs an enumeration spec with a per-document policy. The Runner
// enumerates the candidates of a kind, reads each one in order, applies the
// policy and collects one Diagnostic per violation. Read failures never abort a
// run: they become diagnostics of their own. Only a root that exists but cannot
// be listed is returned as an error.
package engine
