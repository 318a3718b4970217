package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/dgerlanc/tramp/internal/logger"
	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance
var validate = validator.New()

// Rewrite strategy field names, in precedence order.
const (
	FieldArgRewrite       = "arg_rewrite"
	FieldCommandRewrite   = "command_rewrite"
	FieldAlternateCommand = "alternate_command"
)

// ParseFile reads and parses a config file.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %w", ErrConfigNotFound, err)
		}
		return nil, &ReadError{Path: path, Err: err}
	}
	return Parse(data, path)
}

// Parse decodes TOML data and validates every rule. path is only used for
// error messages and logging.
func Parse(data []byte, path string) (*File, error) {
	var f File
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		logger.Warn("ignoring unknown config keys", "path", path, "keys", keys)
	}

	if err := f.Validate(path); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks every rule in the file.
func (f *File) Validate(path string) error {
	for i, rule := range f.Rules {
		if err := rule.Validate(); err != nil {
			return &RuleError{Path: path, Index: i, Err: err}
		}
	}
	return nil
}

// Validate reports a *MutuallyExclusiveError naming the first two rewrite
// strategies set on the rule.
func (r Rule) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		if fe.Tag() != "excluded_with" {
			return fmt.Errorf("%s: %s", fe.Field(), fe.Tag())
		}
	}

	set := r.RewriteFields()
	if len(set) < 2 {
		// validator flagged exclusion but fewer than two fields are set
		return err
	}
	return &MutuallyExclusiveError{Option1: set[0], Option2: set[1]}
}

// RewriteFields returns the names of the rewrite strategies set on the rule,
// in precedence order.
func (r Rule) RewriteFields() []string {
	var set []string
	if r.ArgRewrite != "" {
		set = append(set, FieldArgRewrite)
	}
	if r.CommandRewrite != "" {
		set = append(set, FieldCommandRewrite)
	}
	if r.AlternateCommand != "" {
		set = append(set, FieldAlternateCommand)
	}
	return set
}
