// Package policy decides whether a document satisfies the rules of its asset kind.
package policy

import (
	"strings"

	"github.com/aretw0/assetlint/pkg/core"
	"github.com/aretw0/assetlint/pkg/frontmatter"
)

// Policy checks a single document and returns its violations in report order.
type Policy interface {
	Check(doc core.Document) []core.Violation
}

// Func adapts a plain function to Policy.
type Func func(doc core.Document) []core.Violation

// Check implements Policy.
func (f Func) Check(doc core.Document) []core.Violation {
	return f(doc)
}

// RequiredFields requires a metadata block holding every named field with a non-blank value.
func RequiredFields(fields ...string) Policy {
	required := append([]string(nil), fields...)
	return Func(func(doc core.Document) []core.Violation {
		fm, _ := frontmatter.Extract(doc.Content)
		return CheckRequiredFields(fm, required)
	})
}

// NonEmpty requires the document to hold some non-whitespace content.
func NonEmpty() Policy {
	return Func(func(doc core.Document) []core.Violation {
		if v, bad := CheckNonEmpty(doc.Content); bad {
			return []core.Violation{v}
		}
		return nil
	})
}

// CheckRequiredFields reports a missing metadata block, or each required field
// that is absent or blank. A missing block is reported alone.
func CheckRequiredFields(fm *core.Frontmatter, required []string) []core.Violation {
	if fm == nil {
		return []core.Violation{{
			Code:   core.CodeMissingFrontmatter,
			Reason: "Missing frontmatter",
		}}
	}

	var violations []core.Violation
	for _, field := range required {
		value, ok := fm.Get(field)
		if ok && strings.TrimSpace(value) != "" {
			continue
		}
		violations = append(violations, core.Violation{
			Code:   core.CodeMissingField,
			Reason: "Missing required field: " + field,
		})
	}
	return violations
}

// CheckNonEmpty reports an empty or whitespace-only text.
func CheckNonEmpty(text string) (core.Violation, bool) {
	if strings.TrimSpace(text) != "" {
		return core.Violation{}, false
	}
	return core.Violation{Code: core.CodeEmptyFile, Reason: "Empty file"}, true
}
