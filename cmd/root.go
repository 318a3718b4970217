// Package cmd implements the CLI commands for tramp.
package cmd

import (
	"errors"
	"fmt"

	"github.com/dgerlanc/tramp/internal/config"
	"github.com/dgerlanc/tramp/internal/constants"
	"github.com/dgerlanc/tramp/internal/logger"
	"github.com/dgerlanc/tramp/internal/settings"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	dryRun  bool

	// appSettings is loaded from the environment before any command runs
	appSettings *settings.Settings
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tramp [flags] [--] <command> [args...]",
	Short: "Run commands through per-directory rewrite rules and hooks",
	Long: `tramp runs a command after applying the rules found in .tramp.toml files
in the current directory, its parents, and ~/.tramp.toml.

A matching rule can rewrite the arguments or the whole command line, swap in an
alternate command, and run hook scripts before, after, or instead of the
command. The first matching rule wins; rules in deeper directories are checked
first.

tramp is usually called from a trampoline script generated by "tramp setup",
placed ahead of the real binary on PATH:

  tramp setup /usr/bin/cargo > ~/bin/cargo && chmod +x ~/bin/cargo

Flags are only recognised before the command name. Use "--" to run a command
whose name collides with a tramp subcommand.`,
	Args:              cobra.ArbitraryArgs,
	RunE:              runCommand,
	PersistentPreRunE: initApp,
	// Errors are printed by Execute; the wrapped command's exit code is not an error
	SilenceUsage:  true,
	SilenceErrors: true,
}

// ExitCodeError carries the exit code of the wrapped command or hook.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code & 0xff
	}
	fmt.Fprintf(rootCmd.ErrOrStderr(), "error: %v\n", err)
	return 1
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (debug logging, same as "+constants.EnvVerbose+"=1)")
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show what would run without running hooks or the command")

	// Everything after the command name belongs to the command
	rootCmd.Flags().SetInterspersed(false)
}

// initApp loads settings and initializes the logger
func initApp(cmd *cobra.Command, args []string) error {
	s, err := settings.Load()
	if err != nil {
		return err
	}
	appSettings = s

	logger.Init(logger.Options{
		Verbose: verbose || s.Verbose,
		JSON:    s.JSONLogs(),
		Output:  cmd.ErrOrStderr(),
	})
	logger.Debug("settings loaded", "hook_shell", s.HookShell, "log_format", s.LogFormat, "user_config", s.UserConfig)
	return nil
}

// newConfigResolver returns a cascade resolver honouring the settings
func newConfigResolver() *config.Resolver {
	r := config.NewResolver()
	if appSettings != nil {
		r.UserConfig = appSettings.UserConfig
	}
	return r
}
