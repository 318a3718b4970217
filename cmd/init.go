package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dgerlanc/tramp/internal/config"
	"github.com/dgerlanc/tramp/internal/constants"
	"github.com/dgerlanc/tramp/internal/logger"
	"github.com/spf13/cobra"
)

var (
	initForce bool
	initUser  bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .tramp.toml template",
	Long: `Init writes a commented .tramp.toml template to the current directory.

With --user the template is written to the user config instead
(~/.tramp.toml, or the path in TRAMP_USER_CONFIG).

Use --force to overwrite an existing file.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")
	initCmd.Flags().BoolVar(&initUser, "user", false, "Write the user config instead of ./.tramp.toml")
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath, err := initTarget()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), constants.DirMode); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(configPath, config.GetTemplate(), constants.FileMode); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	logger.Info("wrote config template", "path", configPath, "force", initForce)
	fmt.Fprintf(out, "Created %s\n", configPath)
	fmt.Fprintln(out, "Run 'tramp config validate' to check your rules.")
	return nil
}

func initTarget() (string, error) {
	if initUser {
		return newConfigResolver().UserConfigPath()
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return filepath.Join(cwd, constants.ConfigFileName), nil
}
