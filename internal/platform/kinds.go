package platform

import (
	"fmt"
	"path/filepath"

	"github.com/aretw0/assetlint/pkg/adapters/fs"
	"github.com/aretw0/assetlint/pkg/core"
	"github.com/aretw0/assetlint/pkg/engine"
	"github.com/aretw0/assetlint/pkg/policy"
)

// Built-in asset kinds.
const (
	KindWorkflows = "workflows"
	KindSkills    = "skills"
	KindRules     = "rules"
)

type builtin struct {
	name     string
	unit     string
	mode     core.Mode
	defaults KindConfig
}

// builtins are listed in the order `all` validates them.
var builtins = []builtin{
	{
		name:     KindWorkflows,
		unit:     "workflow files",
		mode:     core.ModeFlatFiles,
		defaults: KindConfig{Dir: "workflows", Extension: ".md", Required: []string{"description"}},
	},
	{
		name:     KindSkills,
		unit:     "skill directories",
		mode:     core.ModeSubdirs,
		defaults: KindConfig{Dir: "skills", Member: "SKILL.md"},
	},
	{
		name:     KindRules,
		unit:     "rule files",
		mode:     core.ModeRecursive,
		defaults: KindConfig{Dir: "rules", Extension: ".md"},
	},
}

// Names returns the built-in kind names in validation order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for _, b := range builtins {
		names = append(names, b.name)
	}
	return names
}

// Kinds resolves the named kinds (all of them when names is empty) against
// projectRoot, applying the overrides of c.
func (c Config) Kinds(projectRoot string, names ...string) ([]engine.Kind, error) {
	if len(names) == 0 {
		names = Names()
	}

	kinds := make([]engine.Kind, 0, len(names))
	for _, name := range names {
		b, ok := find(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q (expected one of %v)", core.ErrUnknownKind, name, Names())
		}
		kinds = append(kinds, b.resolve(projectRoot, c.lookup(name).merge(b.defaults)))
	}
	return kinds, nil
}

func find(name string) (builtin, bool) {
	for _, b := range builtins {
		if b.name == name {
			return b, true
		}
	}
	return builtin{}, false
}

func (b builtin) resolve(projectRoot string, kc KindConfig) engine.Kind {
	root := kc.Dir
	if !filepath.IsAbs(root) {
		root = filepath.Join(projectRoot, root)
	}

	// A required-field list switches the kind to the metadata policy.
	var p policy.Policy
	if len(kc.Required) > 0 {
		p = policy.RequiredFields(kc.Required...)
	} else {
		p = policy.NonEmpty()
	}

	return engine.Kind{
		Name: b.name,
		Unit: b.unit,
		Root: root,
		Walk: fs.Spec{
			Mode:      b.mode,
			Extension: kc.Extension,
			Member:    kc.Member,
			Exclude:   kc.Exclude,
		},
		Policy: p,
	}
}
