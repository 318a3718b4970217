package rules

import (
	"strings"

	"github.com/dgerlanc/tramp/internal/config"
	"github.com/dgerlanc/tramp/internal/process"
)

// Rewrite is the single rewrite strategy of a rule. The concrete types are
// NoRewrite, AlternateCommand, ArgRewrite and CommandRewrite.
type Rewrite interface {
	// Apply returns the binary and arguments to execute in place of the
	// original invocation.
	Apply(binary string, args []string, resolver process.Resolver) (string, []string, error)
	// Kind names the config field the strategy came from, or "none".
	Kind() string
}

// NoRewrite passes the invocation through unchanged.
type NoRewrite struct{}

func (NoRewrite) Apply(binary string, args []string, _ process.Resolver) (string, []string, error) {
	return binary, args, nil
}

func (NoRewrite) Kind() string { return "none" }

// AlternateCommand runs a different command with the original arguments.
type AlternateCommand struct {
	Command string
}

func (a AlternateCommand) Apply(_ string, args []string, resolver process.Resolver) (string, []string, error) {
	path, ok := resolver.Resolve(a.Command)
	if !ok {
		return "", nil, &process.CommandNotFoundError{Command: a.Command}
	}
	return path, args, nil
}

func (AlternateCommand) Kind() string { return config.FieldAlternateCommand }

// ArgRewrite applies a substitution to the space-joined arguments.
type ArgRewrite struct {
	Substitution *Substitution
}

func (a ArgRewrite) Apply(binary string, args []string, _ process.Resolver) (string, []string, error) {
	return binary, RewriteArgs(args, a.Substitution), nil
}

func (ArgRewrite) Kind() string { return config.FieldArgRewrite }

// CommandRewrite applies a substitution to the whole command line and
// resolves the resulting first word as the new binary.
type CommandRewrite struct {
	Substitution *Substitution
}

func (c CommandRewrite) Apply(binary string, args []string, resolver process.Resolver) (string, []string, error) {
	name, newArgs := RewriteCommand(binary, args, c.Substitution)
	path, ok := resolver.Resolve(name)
	if !ok {
		return "", nil, &process.CommandNotFoundError{Command: name}
	}
	return path, newArgs, nil
}

func (CommandRewrite) Kind() string { return config.FieldCommandRewrite }

// NewRewrite builds the rewrite strategy for a rule. Strategies are checked
// in the order alternate command, argument rewrite, command rewrite.
func NewRewrite(rule config.Rule) (Rewrite, error) {
	if err := rule.Validate(); err != nil {
		return nil, err
	}

	switch {
	case rule.AlternateCommand != "":
		return AlternateCommand{Command: rule.AlternateCommand}, nil
	case rule.ArgRewrite != "":
		sub, err := ParseSubstitution(rule.ArgRewrite, config.FieldArgRewrite)
		if err != nil {
			return nil, err
		}
		return ArgRewrite{Substitution: sub}, nil
	case rule.CommandRewrite != "":
		sub, err := ParseSubstitution(rule.CommandRewrite, config.FieldCommandRewrite)
		if err != nil {
			return nil, err
		}
		return CommandRewrite{Substitution: sub}, nil
	default:
		return NoRewrite{}, nil
	}
}

// RewriteArgs joins args with single spaces, applies sub and splits the
// result on whitespace. Quoting is not preserved.
func RewriteArgs(args []string, sub *Substitution) []string {
	return strings.Fields(sub.Apply(strings.Join(args, " ")))
}

// RewriteCommand rewrites "binary args..." as one string. The first word of
// the result is the new binary; an empty result keeps the original binary
// with no arguments.
func RewriteCommand(binary string, args []string, sub *Substitution) (string, []string) {
	line := strings.Join(append([]string{binary}, args...), " ")
	fields := strings.Fields(sub.Apply(line))
	if len(fields) == 0 {
		return binary, nil
	}
	return fields[0], fields[1:]
}
