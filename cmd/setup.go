package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dgerlanc/tramp/internal/process"
	"github.com/dgerlanc/tramp/internal/trampoline"
	"github.com/spf13/cobra"
)

var setupTrampPath string

var setupCmd = &cobra.Command{
	Use:   "setup <binary>",
	Short: "Print a trampoline script for a binary",
	Long: `Setup prints a POSIX sh script that runs <binary> through tramp.

Save it under the binary's name in a directory that comes before the real
binary on PATH, and make it executable:

  tramp setup cargo > ~/bin/cargo
  chmod +x ~/bin/cargo

<binary> is resolved on PATH unless it contains a slash. The script calls
"tramp" from PATH; use --tramp to embed an absolute path instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
	setupCmd.Flags().StringVar(&setupTrampPath, "tramp", "", "Path of the tramp executable the script calls")
}

func runSetup(cmd *cobra.Command, args []string) error {
	binary, err := resolveSetupBinary(args[0], process.NewPathResolver())
	if err != nil {
		return err
	}

	script, err := trampoline.Generate(binary, trampoline.Options{TrampPath: setupTrampPath})
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), script)
	return nil
}

// resolveSetupBinary makes the target absolute so the trampoline never
// finds itself on PATH
func resolveSetupBinary(name string, resolver process.Resolver) (string, error) {
	if strings.ContainsRune(name, filepath.Separator) {
		abs, err := filepath.Abs(name)
		if err != nil {
			return "", fmt.Errorf("failed to resolve %s: %w", name, err)
		}
		return abs, nil
	}
	path, ok := resolver.Resolve(name)
	if !ok {
		return "", &process.CommandNotFoundError{Command: name}
	}
	return path, nil
}
