package config

import (
	"errors"
	"fmt"
)

// ErrConfigNotFound is wrapped by ReadError when the file does not exist.
var ErrConfigNotFound = errors.New("config file not found")

// ErrHomeDirectoryNotFound is returned when the user config location cannot
// be determined.
var ErrHomeDirectoryNotFound = errors.New("failed to resolve home directory")

// ReadError is returned when a config file cannot be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read config file %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ParseError is returned when a config file is not valid TOML or does not
// fit the config schema.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse config file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MutuallyExclusiveError is returned when a rule sets more than one rewrite
// strategy.
type MutuallyExclusiveError struct {
	Option1 string
	Option2 string
}

func (e *MutuallyExclusiveError) Error() string {
	return fmt.Sprintf("mutually exclusive options: %s and %s", e.Option1, e.Option2)
}

// RuleError locates a validation error within a config file.
type RuleError struct {
	Path  string
	Index int // zero-based position in the file's rule list
	Err   error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("%s: rule %d: %v", e.Path, e.Index+1, e.Err)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}
