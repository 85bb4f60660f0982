package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/assetlint/pkg/core"
)

// Spec describes what the walker enumerates under a root.
type Spec struct {
	Mode core.Mode
	// Extension filters file names in ModeFlatFiles and ModeRecursive (e.g. ".md").
	Extension string
	// Member is the file checked inside each directory in ModeSubdirs (e.g. "SKILL.md").
	Member string
	// Exclude holds doublestar patterns matched against root-relative, slash-separated paths.
	Exclude []string
}

// Validate checks the spec is usable before any filesystem access.
func (s Spec) Validate() error {
	switch s.Mode {
	case core.ModeFlatFiles, core.ModeRecursive:
		if s.Extension == "" {
			return fmt.Errorf("%s mode requires an extension", s.Mode)
		}
	case core.ModeSubdirs:
		if s.Member == "" {
			return fmt.Errorf("%s mode requires a member file name", s.Mode)
		}
	default:
		return fmt.Errorf("unsupported enumeration mode: %s", s.Mode)
	}
	for _, p := range s.Exclude {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid exclude pattern %q: %w", p, doublestar.ErrBadPattern)
		}
	}
	return nil
}

// Enumerate lists the candidates under root in a stable, lexical order.
//
// A root that does not exist yields core.ErrRootNotFound. A root that exists
// but cannot be listed yields the underlying error.
func Enumerate(root string, spec Spec) ([]core.Candidate, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	info, err := os.Stat(root)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", core.ErrRootNotFound, root)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", root)
	}

	switch spec.Mode {
	case core.ModeFlatFiles:
		return enumerateFiles(root, spec)
	case core.ModeSubdirs:
		return enumerateSubdirs(root, spec)
	default:
		return enumerateTree(root, spec)
	}
}

func enumerateFiles(root string, spec Spec) ([]core.Candidate, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to list root: %w", err)
	}

	candidates := make([]core.Candidate, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, spec.Extension) || spec.excluded(name) {
			continue
		}
		if c, ok := fileCandidate(filepath.Join(root, name), name); ok {
			candidates = append(candidates, c)
		}
	}
	return candidates, nil
}

func enumerateSubdirs(root string, spec Spec) ([]core.Candidate, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to list root: %w", err)
	}

	var candidates []core.Candidate
	for _, entry := range entries {
		name := entry.Name()
		dir := filepath.Join(root, name)
		if !isDir(dir, entry) || spec.excluded(name) {
			continue
		}

		member := filepath.Join(dir, spec.Member)
		_, err := os.Stat(member)
		switch {
		case errors.Is(err, os.ErrNotExist):
			candidates = append(candidates, core.Candidate{Path: dir, Label: name + "/", Err: core.ErrMissingMember})
		case err != nil:
			candidates = append(candidates, core.Candidate{Path: member, Label: name + "/" + spec.Member, Err: err})
		default:
			candidates = append(candidates, core.Candidate{Path: member, Label: name + "/" + spec.Member})
		}
	}
	return candidates, nil
}

func enumerateTree(root string, spec Spec) ([]core.Candidate, error) {
	var candidates []core.Candidate

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if spec.excluded(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), spec.Extension) || spec.excluded(rel) {
			return nil
		}
		if c, ok := fileCandidate(path, rel); ok {
			candidates = append(candidates, c)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk root: %w", err)
	}
	return candidates, nil
}

// fileCandidate resolves links. Entries that are not regular files are
// dropped; entries that cannot be resolved are kept with their error.
func fileCandidate(path, label string) (core.Candidate, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return core.Candidate{Path: path, Label: label, Err: err}, true
	}
	if !info.Mode().IsRegular() {
		return core.Candidate{}, false
	}
	return core.Candidate{Path: path, Label: label}, true
}

func isDir(path string, entry os.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (s Spec) excluded(rel string) bool {
	for _, p := range s.Exclude {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}
