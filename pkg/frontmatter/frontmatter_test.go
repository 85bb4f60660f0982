package frontmatter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/assetlint/pkg/frontmatter"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   map[string]string
		absent bool
	}{
		{
			name:  "simple block",
			input: "---\ndescription: Test\n---\n# Workflow",
			want:  map[string]string{"description": "Test"},
		},
		{
			name:  "bom and crlf",
			input: "\uFEFF---\r\ndescription: Test\r\n---\r\n# Workflow",
			want:  map[string]string{"description": "Test"},
		},
		{
			name:  "colons in value",
			input: "---\ndescription: this: is: a: test\n---\n",
			want:  map[string]string{"description": "this: is: a: test"},
		},
		{
			name:  "space before colon",
			input: "---\ndescription : test\n---\n",
			want:  map[string]string{"description": "test"},
		},
		{
			name:  "line without colon is ignored",
			input: "---\ndescription: test\nthis is just a line without a colon\n---\n",
			want:  map[string]string{"description": "test"},
		},
		{
			name:  "extra fields kept",
			input: "---\ndescription: test\ncustom_field: some value\nauthor: test\n---\n",
			want:  map[string]string{"description": "test", "custom_field": "some value", "author": "test"},
		},
		{
			name:  "empty value is still a pair",
			input: "---\ndescription:\n---\n",
			want:  map[string]string{"description": ""},
		},
		{
			name:  "first closing delimiter ends the block",
			input: "---\na: 1\n---\nb: 2\n---\n",
			want:  map[string]string{"a": "1"},
		},
		{
			name:  "repeated key keeps last value",
			input: "---\ndescription: one\ndescription: two\n---\n",
			want:  map[string]string{"description": "two"},
		},
		{name: "no block", input: "# No frontmatter here\nJust content.", absent: true},
		{name: "empty text", input: "", absent: true},
		{name: "empty block", input: "---\n---\n# Workflow", absent: true},
		{name: "whitespace-only block", input: "---\n   \n\t\n---\n", absent: true},
		{name: "colon-less lines only", input: "---\njust words\nmore words\n---\n", absent: true},
		{name: "colon at position zero", input: "---\n:description value\n---\n", absent: true},
		{name: "unterminated block", input: "---\ndescription: x\n# body", absent: true},
		{name: "block not at start", input: "# Title\n---\ndescription: x\n---\n", absent: true},
		{name: "indented delimiter", input: " ---\ndescription: x\n---\n", absent: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, ok := frontmatter.Extract(tt.input)
			if tt.absent {
				assert.False(t, ok)
				assert.Nil(t, fm)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.want, fm.Values)
			assert.Len(t, fm.Keys, len(tt.want))
		})
	}
}

func TestExtract_KeyOrder(t *testing.T) {
	fm, ok := frontmatter.Extract("---\nname: x\ndescription: y\nname: z\n---\n")
	require.True(t, ok)
	assert.Equal(t, []string{"name", "description"}, fm.Keys)

	v, _ := fm.Get("name")
	assert.Equal(t, "z", v)
}

func TestSplitField(t *testing.T) {
	tests := []struct {
		line      string
		wantKey   string
		wantValue string
		wantOK    bool
	}{
		{line: "description: test", wantKey: "description", wantValue: "test", wantOK: true},
		{line: "description : test", wantKey: "description", wantValue: "test", wantOK: true},
		{line: "  description:   padded  ", wantKey: "description", wantValue: "padded", wantOK: true},
		{line: "description: a: b: c", wantKey: "description", wantValue: "a: b: c", wantOK: true},
		{line: "description:   \t  ", wantKey: "description", wantValue: "", wantOK: true},
		{line: "url: https://example.com", wantKey: "url", wantValue: "https://example.com", wantOK: true},
		{line: ":description value", wantOK: false},
		{line: "no colon here", wantOK: false},
		{line: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			key, value, ok := frontmatter.SplitField(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}
