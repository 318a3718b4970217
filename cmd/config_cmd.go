package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/dgerlanc/tramp/internal/config"
	"github.com/dgerlanc/tramp/internal/rules"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration that applies to the current directory",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show discovered config files and their rules in cascade order",
	Long: `Show lists every .tramp.toml that applies to the current directory, most
specific first, with its scope flags and rules. Rules are evaluated in the
order shown and the first match wins.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check all config files for errors without running anything",
	Long: `Validate loads every config file that applies to the current directory and
compiles all of their rules, reporting the first error found.`,
	Args: cobra.NoArgs,
	RunE: runConfigValidate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	resolver := newConfigResolver()
	configs, err := resolver.Discover(cwd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	st := newStyles(out)

	if len(configs) == 0 {
		fmt.Fprintln(out, "No configuration files found.")
	} else {
		fmt.Fprintln(out, st.title.Render("Configuration files (in cascade order):"))
		fmt.Fprintln(out)
		for _, loaded := range configs {
			showConfig(out, st, loaded)
		}
	}

	if userPath, err := resolver.UserConfigPath(); err == nil {
		status := st.muted.Render("(not found)")
		if _, err := os.Stat(userPath); err == nil {
			status = st.success.Render("(exists)")
		}
		fmt.Fprintf(out, "User config path: %s %s\n", userPath, status)
	}
	return nil
}

func showConfig(out io.Writer, st styles, loaded config.Loaded) {
	f := loaded.File
	fmt.Fprintln(out, st.key.Render("# Source: "+loaded.Path))
	fmt.Fprintf(out, "# root: %t\n", f.Root)
	fmt.Fprintf(out, "# no-external-lookup: %t\n", f.NoExternalLookup)
	if f.RootConfigLookupDisableEnvVar != "" {
		fmt.Fprintf(out, "# root-config-lookup-disable-env-var: %s\n", f.RootConfigLookupDisableEnvVar)
	}
	fmt.Fprintf(out, "# rules: %d\n", len(f.Rules))
	fmt.Fprintln(out)

	for i, rule := range f.Rules {
		fmt.Fprintf(out, "  Rule %d:\n", i+1)
		for _, field := range []struct{ name, value string }{
			{"binary_pattern", rule.BinaryPattern},
			{"cwd_pattern", rule.CwdPattern},
			{config.FieldArgRewrite, rule.ArgRewrite},
			{config.FieldCommandRewrite, rule.CommandRewrite},
			{config.FieldAlternateCommand, rule.AlternateCommand},
			{"pre_hook", rule.PreHook},
			{"post_hook", rule.PostHook},
			{"intercept_hook", rule.InterceptHook},
		} {
			if field.value != "" {
				fmt.Fprintf(out, "    %s: %s\n", field.name, field.value)
			}
		}
		fmt.Fprintln(out)
	}
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	configs, err := newConfigResolver().Discover(cwd)
	if err == nil {
		merged := config.Merge(configs)
		_, err = rules.Compile(&merged)
	}
	if err != nil {
		fmt.Fprintf(errOut, "%s %v\n", newStyles(errOut).failure.Render("Configuration error:"), err)
		return &ExitCodeError{Code: 1}
	}

	st := newStyles(out)
	if len(configs) == 0 {
		fmt.Fprintln(out, "No configuration files found.")
		return nil
	}
	fmt.Fprintln(out, st.success.Render("All configuration files are valid:"))
	for _, loaded := range configs {
		fmt.Fprintf(out, "  %s %s\n", loaded.Path, st.muted.Render(fmt.Sprintf("(%d rules)", len(loaded.File.Rules))))
	}
	return nil
}
