package rules

import (
	"errors"
	"testing"

	"github.com/dgerlanc/tramp/internal/patterns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubstitution(t *testing.T) {
	tests := []struct {
		name        string
		expr        string
		pattern     string
		replacement string
		global      bool
	}{
		{"simple", "s/foo/bar/", "foo", "bar", false},
		{"global", "s/foo/bar/g", "foo", "bar", true},
		{"no trailing delimiter", "s/foo/bar", "foo", "bar", false},
		{"alternate delimiter", "s|/usr/bin|/opt/bin|", "/usr/bin", "/opt/bin", false},
		{"escaped delimiter", `s/foo\/bar/baz/`, "foo/bar", "baz", false},
		{"escaped delimiter in replacement", `s/a/b\/c/`, "a", "b/c", false},
		{"regex escape kept", `s/\d+/N/g`, `\d+`, "N", true},
		{"capture groups", `s/(\w+)@(\w+)/$2 at $1/`, `(\w+)@(\w+)`, "$2 at $1", false},
		{"empty replacement", "s/--verbose//", "--verbose", "", false},
		{"unicode delimiter", "s§a§b§g", "a", "b", true},
		{"flags without g", "s/a/b/i", "a", "b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, err := ParseSubstitution(tt.expr, "arg_rewrite")
			require.NoError(t, err)
			assert.Equal(t, tt.pattern, sub.Pattern.Pattern)
			assert.Equal(t, tt.replacement, sub.Replacement)
			assert.Equal(t, tt.global, sub.Global)
			assert.Equal(t, tt.expr, sub.String())
			assert.Equal(t, "arg_rewrite", sub.Pattern.Name)
		})
	}
}

func TestParseSubstitutionErrors(t *testing.T) {
	tests := []struct {
		name        string
		expr        string
		wantPattern string
	}{
		{"empty", "", ""},
		{"no leading s", "x/foo/bar/", "x/foo/bar/"},
		{"only s", "s", "s"},
		{"no replacement", "s/foo", "s/foo"},
		{"escaped delimiter hides replacement", `s/foo\/bar`, `s/foo\/bar`},
		{"bad regex", "s/(unclosed/x/", "(unclosed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSubstitution(tt.expr, "arg_rewrite")
			require.Error(t, err)

			var regexErr *patterns.InvalidRegexError
			require.True(t, errors.As(err, &regexErr), "expected *InvalidRegexError, got %T", err)
			assert.Equal(t, tt.wantPattern, regexErr.Pattern)
		})
	}
}

func TestSubstitutionApply(t *testing.T) {
	tests := []struct {
		name  string
		expr  string
		input string
		want  string
	}{
		{"single replacement", "s/X/Y/", "X", "Y"},
		{"first only", "s/a/b/", "a a a", "b a a"},
		{"global", "s/a/b/g", "a a a", "b b b"},
		{"no match", "s/z/y/", "a a a", "a a a"},
		{"capture groups first only", `s/(\d+)/<$1>/`, "1 22 333", "<1> 22 333"},
		{"capture groups global", `s/(\d+)/<${1}>/g`, "1 22 333", "<1> <22> <333>"},
		{"anchored", "s/^build$/build --release/", "build", "build --release"},
		{"anchored no match", "s/^build$/build --release/", "build foo", "build foo"},
		{"escaped delimiter", `s/foo\/bar/baz/`, "x foo/bar y", "x baz y"},
		{"deletion", "s/ --verbose//", "run --verbose now", "run now"},
		{"empty match global", "s/x*/-/g", "abc", "-a-b-c-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, err := ParseSubstitution(tt.expr, "arg_rewrite")
			require.NoError(t, err)
			assert.Equal(t, tt.want, sub.Apply(tt.input))
		})
	}
}

func TestSplitByDelimiter(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{""}},
		{"a/b/", []string{"a", "b", ""}},
		{`a\/b/c`, []string{"a/b", "c"}},
		{`a\b/c`, []string{`a\b`, "c"}},
		{`trailing\`, []string{`trailing\`}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, splitByDelimiter(tt.input, '/'), "input %q", tt.input)
	}
}
