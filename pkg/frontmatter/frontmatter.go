// Package frontmatter extracts the leading `---` metadata block of a Markdown document.
//
// Only flat `key: value` lines are understood. Nested structures, lists,
// multi-line values and quoting are deliberately not interpreted.
package frontmatter

import (
	"strings"

	"github.com/aretw0/assetlint/pkg/core"
)

const (
	delimiter = "---"
	bom       = "\uFEFF"
)

// Extract parses the metadata block at the very start of text.
// It returns false when there is no bounded block, or when the block
// holds no usable key/value pair.
func Extract(text string) (*core.Frontmatter, bool) {
	lines, ok := block(normalize(text))
	if !ok {
		return nil, false
	}

	fm := core.NewFrontmatter()
	for _, line := range lines {
		key, value, ok := SplitField(line)
		if !ok {
			continue
		}
		fm.Set(key, value)
	}

	// An empty block counts as no block at all.
	if fm.Len() == 0 {
		return nil, false
	}
	return fm, true
}

// SplitField bisects a line at its first colon and trims both halves.
// Lines without a colon, or starting with one, are rejected.
func SplitField(line string) (key, value string, ok bool) {
	key, value, found := strings.Cut(line, ":")
	if !found || key == "" {
		return "", "", false
	}
	return strings.TrimSpace(key), strings.TrimSpace(value), true
}

func normalize(text string) string {
	text = strings.TrimPrefix(text, bom)
	return strings.ReplaceAll(text, "\r\n", "\n")
}

// block returns the lines between the opening delimiter on the first line
// and the first closing delimiter line.
func block(text string) ([]string, bool) {
	lines := strings.Split(text, "\n")
	if lines[0] != delimiter {
		return nil, false
	}
	for i := 1; i < len(lines); i++ {
		if lines[i] == delimiter {
			return lines[1:i], true
		}
	}
	return nil, false
}
