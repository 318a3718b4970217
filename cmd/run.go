package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dgerlanc/tramp/internal/hook"
	"github.com/dgerlanc/tramp/internal/logger"
	"github.com/dgerlanc/tramp/internal/process"
	"github.com/dgerlanc/tramp/internal/rules"
	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/syntax"
)

// runCommand is the default command: resolve, match, rewrite and execute
func runCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	resolver := process.NewPathResolver()
	plan, match, err := buildPlan(args, cwd, resolver)
	if err != nil {
		return err
	}

	if dryRun {
		printPlan(cmd.ErrOrStderr(), plan, match)
		return nil
	}

	controller := hook.NewController(
		hook.NewRunner(appSettings, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()),
		process.NewOSExecutor(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()),
	)
	code, err := controller.Run(plan)
	if err != nil {
		return err
	}
	if code != 0 {
		return &ExitCodeError{Code: code}
	}
	return nil
}

// buildPlan runs the pipeline up to, but not including, execution. The
// returned rule is nil when nothing matched.
func buildPlan(args []string, cwd string, resolver process.Resolver) (hook.Plan, *rules.CompiledRule, error) {
	binary, ok := resolver.Resolve(args[0])
	if !ok {
		return hook.Plan{}, nil, &process.CommandNotFoundError{Command: args[0]}
	}
	cmdArgs := args[1:]

	merged, err := newConfigResolver().LoadMerged(cwd)
	if err != nil {
		return hook.Plan{}, nil, err
	}
	compiled, err := rules.Compile(merged)
	if err != nil {
		return hook.Plan{}, nil, err
	}
	logger.Stage(logger.StageCompile).Debug("rules loaded", "count", len(compiled), "no_external_lookup", merged.NoExternalLookup)

	plan := hook.Plan{
		OriginalBinary: binary,
		OriginalArgs:   cmdArgs,
		Cwd:            cwd,
		Binary:         binary,
		Args:           cmdArgs,
	}

	match := rules.FindMatch(compiled, rules.MatchContext{BinaryPath: binary, Cwd: cwd, Args: cmdArgs})
	if match == nil {
		logger.Stage(logger.StageMatch).Debug("no rule matched", "binary", binary, "cwd", cwd)
		return plan, nil, nil
	}
	logger.Stage(logger.StageMatch).Debug("rule matched", "source", match.Source, "binary_pattern", match.Rule.BinaryPattern,
		"cwd_pattern", match.Rule.CwdPattern, "rewrite", match.Rewrite.Kind())

	plan.Binary, plan.Args, err = match.Rewrite.Apply(binary, cmdArgs, resolver)
	if err != nil {
		return hook.Plan{}, nil, err
	}
	logger.Stage(logger.StageRewrite).Debug("rewrite applied", "binary", plan.Binary, "args", plan.Args)

	plan.PreHook = match.Rule.PreHook
	plan.InterceptHook = match.Rule.InterceptHook
	plan.PostHook = match.Rule.PostHook
	return plan, match, nil
}

// printPlan describes what would run, for --dry-run
func printPlan(w io.Writer, plan hook.Plan, match *rules.CompiledRule) {
	if match == nil {
		fmt.Fprintln(w, "rule:    (none)")
	} else {
		fmt.Fprintf(w, "rule:    %s\n", match.Source)
		fmt.Fprintf(w, "rewrite: %s\n", match.Rewrite.Kind())
		if logger.IsVerbose() {
			if match.Rule.BinaryPattern != "" {
				fmt.Fprintf(w, "binary_pattern: %s\n", match.Rule.BinaryPattern)
			}
			if match.Rule.CwdPattern != "" {
				fmt.Fprintf(w, "cwd_pattern: %s\n", match.Rule.CwdPattern)
			}
		}
	}
	fmt.Fprintf(w, "command: %s\n", shellJoin(append([]string{plan.Binary}, plan.Args...)))

	for _, h := range []struct{ name, path string }{
		{"pre_hook", plan.PreHook},
		{"intercept_hook", plan.InterceptHook},
		{"post_hook", plan.PostHook},
	} {
		if h.path != "" {
			fmt.Fprintf(w, "%s: %s\n", h.name, h.path)
		}
	}
	if plan.InterceptHook != "" {
		fmt.Fprintln(w, "(the command is intercepted and will not run)")
	}
}

// shellJoin quotes words so the line can be pasted into a shell
func shellJoin(words []string) string {
	quoted := make([]string, 0, len(words))
	for _, w := range words {
		q, err := syntax.Quote(w, syntax.LangBash)
		if err != nil {
			q = fmt.Sprintf("%q", w)
		}
		quoted = append(quoted, q)
	}
	return strings.Join(quoted, " ")
}
