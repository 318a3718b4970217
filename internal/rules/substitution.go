package rules

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/dgerlanc/tramp/internal/patterns"
)

// Substitution is a compiled sed-style find/replace directive.
type Substitution struct {
	Pattern     patterns.Pattern
	Replacement string // may reference capture groups as $1 or ${name}
	Global      bool
	Source      string // the raw "s/.../.../" text
}

var (
	errNoLeadingS     = errors.New("substitution must start with 's'")
	errTooShort       = errors.New("substitution too short")
	errMissingSegment = errors.New("substitution must have pattern and replacement")
)

// ParseSubstitution parses "s<d>pattern<d>replacement<d>[flags]", where <d>
// is the character following the leading s. A backslash before <d> escapes
// it; any other backslash is kept as-is so regex escapes survive.
func ParseSubstitution(expr, name string) (*Substitution, error) {
	if !strings.HasPrefix(expr, "s") {
		return nil, &patterns.InvalidRegexError{Pattern: expr, Err: errNoLeadingS}
	}
	delim, size := utf8.DecodeRuneInString(expr[1:])
	if size == 0 {
		return nil, &patterns.InvalidRegexError{Pattern: expr, Err: errTooShort}
	}

	parts := splitByDelimiter(expr[1+size:], delim)
	if len(parts) < 2 {
		return nil, &patterns.InvalidRegexError{Pattern: expr, Err: errMissingSegment}
	}

	var flags string
	if len(parts) > 2 {
		flags = parts[2]
	}

	p, err := patterns.Compile(parts[0], name)
	if err != nil {
		return nil, err
	}

	return &Substitution{
		Pattern:     p,
		Replacement: parts[1],
		Global:      strings.ContainsRune(flags, 'g'),
		Source:      expr,
	}, nil
}

// splitByDelimiter splits s on delim, honouring backslash-escaped delimiters.
func splitByDelimiter(s string, delim rune) []string {
	var (
		parts   []string
		current strings.Builder
		escaped bool
	)
	for i, r := range s {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			if next, n := utf8.DecodeRuneInString(s[i+1:]); n > 0 && next == delim {
				escaped = true
			} else {
				current.WriteRune(r)
			}
		case r == delim:
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	return append(parts, current.String())
}

// Apply replaces the first match in input, or every non-overlapping match if
// the substitution is global.
func (s *Substitution) Apply(input string) string {
	re := s.Pattern.Regex
	if s.Global {
		return re.ReplaceAllString(input, s.Replacement)
	}

	loc := re.FindStringSubmatchIndex(input)
	if loc == nil {
		return input
	}
	var b strings.Builder
	b.WriteString(input[:loc[0]])
	b.Write(re.ExpandString(nil, s.Replacement, input, loc))
	b.WriteString(input[loc[1]:])
	return b.String()
}

func (s *Substitution) String() string {
	return s.Source
}
