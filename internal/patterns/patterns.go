// Package patterns compiles the regular expressions used by tramp rules and
// reports malformed ones with the offending pattern text.
package patterns

import (
	"fmt"
	"regexp"
)

// Pattern holds a compiled regex and its description.
type Pattern struct {
	Regex   *regexp.Regexp
	Name    string // config field the pattern came from, e.g. "binary_pattern"
	Pattern string // original pattern string
}

// InvalidRegexError is returned when a pattern does not compile or a
// substitution expression is malformed.
type InvalidRegexError struct {
	Pattern string
	Err     error
}

func (e *InvalidRegexError) Error() string {
	return fmt.Sprintf("invalid regex pattern %q: %v", e.Pattern, e.Err)
}

func (e *InvalidRegexError) Unwrap() error {
	return e.Err
}

// Compile compiles a pattern string into a Pattern with the given name.
// Returns an *InvalidRegexError if the pattern is invalid.
func Compile(pattern, name string) (Pattern, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Pattern{}, &InvalidRegexError{Pattern: pattern, Err: err}
	}
	return Pattern{Regex: re, Name: name, Pattern: pattern}, nil
}

// MatchString reports whether s contains any match of the pattern.
func (p Pattern) MatchString(s string) bool {
	return p.Regex.MatchString(s)
}

// String returns the source text of the pattern.
func (p Pattern) String() string {
	return p.Pattern
}
