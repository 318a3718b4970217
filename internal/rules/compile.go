// Package rules compiles config rules into matchable form, selects the first
// rule that applies to an invocation and computes the rewritten command.
package rules

import (
	"fmt"

	"github.com/dgerlanc/tramp/internal/config"
	"github.com/dgerlanc/tramp/internal/patterns"
)

// MatchContext is the invocation being evaluated.
type MatchContext struct {
	BinaryPath string
	Cwd        string
	Args       []string
}

// CompiledRule is a rule with its patterns and rewrite strategy compiled.
type CompiledRule struct {
	Rule    config.Rule
	Binary  *patterns.Pattern // nil matches any binary
	Cwd     *patterns.Pattern // nil matches any directory
	Rewrite Rewrite
	Source  string
}

// CompileRule compiles a single rule. Any error is an
// *patterns.InvalidRegexError or a config validation error.
func CompileRule(rws config.RuleWithSource) (*CompiledRule, error) {
	binary, err := compileOptional(rws.Rule.BinaryPattern, "binary_pattern")
	if err != nil {
		return nil, err
	}
	cwd, err := compileOptional(rws.Rule.CwdPattern, "cwd_pattern")
	if err != nil {
		return nil, err
	}
	rewrite, err := NewRewrite(rws.Rule)
	if err != nil {
		return nil, err
	}

	return &CompiledRule{
		Rule:    rws.Rule,
		Binary:  binary,
		Cwd:     cwd,
		Rewrite: rewrite,
		Source:  rws.Source,
	}, nil
}

func compileOptional(pattern, name string) (*patterns.Pattern, error) {
	if pattern == "" {
		return nil, nil
	}
	p, err := patterns.Compile(pattern, name)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Compile compiles every rule of a merged config, preserving order. The
// first failure aborts the whole batch.
func Compile(merged *config.Merged) ([]*CompiledRule, error) {
	compiled := make([]*CompiledRule, 0, len(merged.Rules))
	perSource := make(map[string]int)
	for _, rws := range merged.Rules {
		perSource[rws.Source]++
		cr, err := CompileRule(rws)
		if err != nil {
			return nil, fmt.Errorf("%s: rule %d: %w", rws.Source, perSource[rws.Source], err)
		}
		compiled = append(compiled, cr)
	}
	return compiled, nil
}

// Matches reports whether every pattern present on the rule matches ctx.
func (r *CompiledRule) Matches(ctx MatchContext) bool {
	if r.Binary != nil && !r.Binary.MatchString(ctx.BinaryPath) {
		return false
	}
	if r.Cwd != nil && !r.Cwd.MatchString(ctx.Cwd) {
		return false
	}
	return true
}

// FindMatch returns the first rule in list order that matches ctx, or nil.
func FindMatch(rules []*CompiledRule, ctx MatchContext) *CompiledRule {
	for _, r := range rules {
		if r.Matches(ctx) {
			return r
		}
	}
	return nil
}
