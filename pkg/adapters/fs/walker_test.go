package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"

	"github.com/aretw0/assetlint/pkg/adapters/fs"
	"github.com/aretw0/assetlint/pkg/core"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func labels(cs []core.Candidate) []string {
	out := []string{}
	for _, c := range cs {
		out = append(out, c.Label)
	}
	return out
}

func TestEnumerate_MissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nope")

	for _, spec := range []fs.Spec{
		{Mode: core.ModeFlatFiles, Extension: ".md"},
		{Mode: core.ModeSubdirs, Member: "SKILL.md"},
		{Mode: core.ModeRecursive, Extension: ".md"},
	} {
		_, err := fs.Enumerate(root, spec)
		if !errors.Is(err, core.ErrRootNotFound) {
			t.Errorf("%s: expected ErrRootNotFound, got %v", spec.Mode, err)
		}
	}
}

func TestEnumerate_RootIsFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "file.md")
	writeFile(t, root, "x")

	_, err := fs.Enumerate(root, fs.Spec{Mode: core.ModeFlatFiles, Extension: ".md"})
	if err == nil || errors.Is(err, core.ErrRootNotFound) {
		t.Fatalf("expected a hard error, got %v", err)
	}
}

func TestEnumerate_FlatFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.md"), "b")
	writeFile(t, filepath.Join(root, "a.md"), "a")
	writeFile(t, filepath.Join(root, "script.js"), "console.log(1)")
	writeFile(t, filepath.Join(root, "nested", "deep.md"), "not flat")
	if err := os.Mkdir(filepath.Join(root, "tricky.md"), 0755); err != nil {
		t.Fatal(err)
	}

	got, err := fs.Enumerate(root, fs.Spec{Mode: core.ModeFlatFiles, Extension: ".md"})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"a.md", "b.md"}; !reflect.DeepEqual(labels(got), want) {
		t.Errorf("expected %v, got %v", want, labels(got))
	}
	for _, c := range got {
		if c.Err != nil {
			t.Errorf("unexpected candidate error for %s: %v", c.Label, c.Err)
		}
	}
}

func TestEnumerate_Subdirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "good-skill", "SKILL.md"), "# Good")
	writeFile(t, filepath.Join(root, "README.md"), "# Skills")
	writeFile(t, filepath.Join(root, ".gitkeep"), "")
	if err := os.Mkdir(filepath.Join(root, "bad-skill"), 0755); err != nil {
		t.Fatal(err)
	}

	got, err := fs.Enumerate(root, fs.Spec{Mode: core.ModeSubdirs, Member: "SKILL.md"})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"bad-skill/", "good-skill/SKILL.md"}; !reflect.DeepEqual(labels(got), want) {
		t.Fatalf("expected %v, got %v", want, labels(got))
	}
	if !errors.Is(got[0].Err, core.ErrMissingMember) {
		t.Errorf("expected ErrMissingMember for bad-skill, got %v", got[0].Err)
	}
	if got[1].Err != nil {
		t.Errorf("unexpected error for good-skill: %v", got[1].Err)
	}
}

func TestEnumerate_Recursive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "top.md"), "# Top")
	writeFile(t, filepath.Join(root, "sub", "nested.md"), "# Nested")
	writeFile(t, filepath.Join(root, "cat1", "sub1", "deep-rule.md"), "# Deep")
	writeFile(t, filepath.Join(root, "notes.txt"), "not a rule")
	if err := os.Mkdir(filepath.Join(root, "tricky.md"), 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(root, "tricky.md", "inside.md"), "# Inside")

	got, err := fs.Enumerate(root, fs.Spec{Mode: core.ModeRecursive, Extension: ".md"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"cat1/sub1/deep-rule.md", "sub/nested.md", "top.md", "tricky.md/inside.md"}
	if !reflect.DeepEqual(labels(got), want) {
		t.Errorf("expected %v, got %v", want, labels(got))
	}

	again, err := fs.Enumerate(root, fs.Spec{Mode: core.ModeRecursive, Extension: ".md"})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, again) {
		t.Error("enumeration order is not stable")
	}
}

func TestEnumerate_DanglingSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "valid.md"), "# Valid")
	if err := os.Symlink(filepath.Join(root, "missing", "target.md"), filepath.Join(root, "broken.md")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	for _, mode := range []core.Mode{core.ModeFlatFiles, core.ModeRecursive} {
		got, err := fs.Enumerate(root, fs.Spec{Mode: mode, Extension: ".md"})
		if err != nil {
			t.Fatal(err)
		}
		if want := []string{"broken.md", "valid.md"}; !reflect.DeepEqual(labels(got), want) {
			t.Fatalf("%s: expected %v, got %v", mode, want, labels(got))
		}
		if got[0].Err == nil {
			t.Errorf("%s: expected an error for the dangling link", mode)
		}
	}
}

func TestEnumerate_Exclude(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "keep.md"), "# Keep")
	writeFile(t, filepath.Join(root, "README.md"), "# Readme")
	writeFile(t, filepath.Join(root, "drafts", "wip.md"), "")
	writeFile(t, filepath.Join(root, "cat", "drafts", "other.md"), "")

	spec := fs.Spec{
		Mode:      core.ModeRecursive,
		Extension: ".md",
		Exclude:   []string{"README.md", "**/drafts/**", "drafts"},
	}
	got, err := fs.Enumerate(root, spec)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"keep.md"}; !reflect.DeepEqual(labels(got), want) {
		t.Errorf("expected %v, got %v", want, labels(got))
	}
}

func TestSpec_Validate(t *testing.T) {
	tests := []struct {
		name    string
		spec    fs.Spec
		wantErr bool
	}{
		{name: "flat ok", spec: fs.Spec{Mode: core.ModeFlatFiles, Extension: ".md"}},
		{name: "flat without extension", spec: fs.Spec{Mode: core.ModeFlatFiles}, wantErr: true},
		{name: "subdirs without member", spec: fs.Spec{Mode: core.ModeSubdirs}, wantErr: true},
		{name: "bad pattern", spec: fs.Spec{Mode: core.ModeRecursive, Extension: ".md", Exclude: []string{"[a-"}}, wantErr: true},
		{name: "unknown mode", spec: fs.Spec{Mode: core.Mode(42), Extension: ".md"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
