// Package core holds the domain types shared by the validation engine.
package core

import "fmt"

// Mode selects how candidates are enumerated under a root.
type Mode int

const (
	// ModeFlatFiles lists the immediate regular files of a root with a given extension.
	ModeFlatFiles Mode = iota
	// ModeSubdirs lists the immediate directories of a root; each is checked
	// through a fixed member file inside it.
	ModeSubdirs
	// ModeRecursive walks the whole subtree collecting files with a given extension.
	ModeRecursive
)

func (m Mode) String() string {
	switch m {
	case ModeFlatFiles:
		return "flat"
	case ModeSubdirs:
		return "subdirs"
	case ModeRecursive:
		return "recursive"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Frontmatter is the ordered key/value header of a document.
// Keys keeps first-occurrence order; a repeated key overwrites its value.
type Frontmatter struct {
	Keys   []string
	Values map[string]string
}

// NewFrontmatter returns an empty Frontmatter.
func NewFrontmatter() *Frontmatter {
	return &Frontmatter{Values: make(map[string]string)}
}

// Set stores value under key.
func (f *Frontmatter) Set(key, value string) {
	if _, ok := f.Values[key]; !ok {
		f.Keys = append(f.Keys, key)
	}
	f.Values[key] = value
}

// Get returns the value stored under key.
func (f *Frontmatter) Get(key string) (string, bool) {
	if f == nil {
		return "", false
	}
	v, ok := f.Values[key]
	return v, ok
}

// Len returns the number of distinct keys.
func (f *Frontmatter) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Keys)
}

// Document is a file read from disk for a single check.
type Document struct {
	Path    string
	Label   string
	Content string
}

// Candidate is a unit produced by enumeration.
// Err is set when the walker already knows the unit cannot be read
// (dangling link, missing bundle member).
type Candidate struct {
	Path  string
	Label string
	Err   error
}

// Violation codes.
const (
	CodeMissingFrontmatter = "missing_frontmatter"
	CodeMissingField       = "missing_required_field"
	CodeMissingMember      = "missing_member"
	CodeEmptyFile          = "empty_file"
	CodeReadError          = "read_error"
)

// Violation is a single reportable reason a file failed validation.
type Violation struct {
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

// Diagnostic ties a Violation to the file it was found in.
type Diagnostic struct {
	Label string `json:"file"`
	Path  string `json:"path"`
	Violation
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("ERROR: %s - %s", d.Label, d.Reason)
}

// Result is the outcome of validating one asset kind.
type Result struct {
	Kind        string       `json:"kind"`
	Unit        string       `json:"unit"`
	Root        string       `json:"root"`
	RootMissing bool         `json:"root_missing,omitempty"`
	Validated   int          `json:"validated"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// OK reports whether every examined unit was valid.
func (r Result) OK() bool {
	return len(r.Diagnostics) == 0
}

// ExitCode maps the result to a process exit status.
func (r Result) ExitCode() int {
	if r.OK() {
		return 0
	}
	return 1
}

// Summary is the success line printed for the result.
func (r Result) Summary() string {
	return fmt.Sprintf("Validated %d %s", r.Validated, r.Unit)
}
