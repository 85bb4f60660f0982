package platform

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// KindConfig overrides the built-in settings of one asset kind.
// Zero values keep the built-in default.
type KindConfig struct {
	Dir       string   `yaml:"dir"`
	Extension string   `yaml:"extension"`
	Member    string   `yaml:"member"`
	Required  []string `yaml:"required"`
	Exclude   []string `yaml:"exclude"`
}

// Config is the content of assetlint.yaml.
type Config struct {
	Workflows KindConfig `yaml:"workflows"`
	Skills    KindConfig `yaml:"skills"`
	Rules     KindConfig `yaml:"rules"`
}

// LoadConfig reads a configuration file. A missing file yields the zero
// Config unless required is set. Unknown keys are rejected.
func LoadConfig(path string, required bool) (Config, error) {
	var cfg Config

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) && !required {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) lookup(name string) KindConfig {
	switch name {
	case KindWorkflows:
		return c.Workflows
	case KindSkills:
		return c.Skills
	case KindRules:
		return c.Rules
	}
	return KindConfig{}
}

func (c Config) with(name string, kc KindConfig) Config {
	switch name {
	case KindWorkflows:
		c.Workflows = kc
	case KindSkills:
		c.Skills = kc
	case KindRules:
		c.Rules = kc
	}
	return c
}

// merge fills the unset fields of k from def.
func (k KindConfig) merge(def KindConfig) KindConfig {
	if k.Dir == "" {
		k.Dir = def.Dir
	}
	if k.Extension == "" {
		k.Extension = def.Extension
	}
	if k.Member == "" {
		k.Member = def.Member
	}
	if len(k.Required) == 0 {
		k.Required = def.Required
	}
	if len(k.Exclude) == 0 {
		k.Exclude = def.Exclude
	}
	return k
}
