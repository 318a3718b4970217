package hook

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/dgerlanc/tramp/internal/constants"
	"github.com/dgerlanc/tramp/internal/logger"
	"github.com/dgerlanc/tramp/internal/settings"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

//go:generate mockgen -source=runner.go -destination=mock_runner.go -package=hook

// Runner executes a hook script.
type Runner interface {
	// Run executes script in cwd with env layered over the inherited
	// environment and returns the script's exit code. A non-zero exit is
	// not an error.
	Run(script, cwd string, env map[string]string) (int, error)
}

// HookFailedError is returned when a hook could not be started at all.
type HookFailedError struct {
	Path string
	Err  error
}

func (e *HookFailedError) Error() string {
	return fmt.Sprintf("failed to execute hook %s: %v", e.Path, e.Err)
}

func (e *HookFailedError) Unwrap() error {
	return e.Err
}

// NonZeroExitError is returned when a pre hook exits with a non-zero status.
type NonZeroExitError struct {
	Path     string
	ExitCode int
}

func (e *NonZeroExitError) Error() string {
	return fmt.Sprintf("hook %s exited with code %d", e.Path, e.ExitCode)
}

// NewRunner returns the hook runner selected by the settings, wired to the
// given stdio.
func NewRunner(s *settings.Settings, stdin io.Reader, stdout, stderr io.Writer) Runner {
	if s.BuiltinShell() {
		return NewInterpRunner(stdin, stdout, stderr)
	}
	shell := s.HookShell
	if shell == "" {
		shell = constants.DefaultHookShell
	}
	return NewShellRunner(shell, stdin, stdout, stderr)
}

// ShellRunner runs hooks as "<Shell> -c <script>".
type ShellRunner struct {
	Shell  string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewShellRunner returns a runner for shell wired to the given stdio.
func NewShellRunner(shell string, stdin io.Reader, stdout, stderr io.Writer) *ShellRunner {
	return &ShellRunner{Shell: shell, Stdin: stdin, Stdout: stdout, Stderr: stderr}
}

// Run executes the script with the configured shell. A hook terminated by a
// signal is reported as exit code 1.
func (r *ShellRunner) Run(script, cwd string, env map[string]string) (int, error) {
	cmd := exec.Command(r.Shell, "-c", script)
	cmd.Dir = cwd
	cmd.Env = Environ(os.Environ(), env)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	logger.Stage(logger.StageHook).Debug("running hook", "shell", r.Shell, "hook", script, "type", env[EnvHookType])

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			code = 1
		}
		return code, nil
	}
	return 0, &HookFailedError{Path: script, Err: err}
}

// InterpRunner runs hooks in an in-process POSIX shell, for systems without
// a usable sh.
type InterpRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewInterpRunner returns an interpreter runner wired to the given stdio.
func NewInterpRunner(stdin io.Reader, stdout, stderr io.Writer) *InterpRunner {
	return &InterpRunner{Stdin: stdin, Stdout: stdout, Stderr: stderr}
}

// Run parses script as a shell command line and interprets it.
func (r *InterpRunner) Run(script, cwd string, env map[string]string) (int, error) {
	file, err := syntax.NewParser().Parse(strings.NewReader(script), "")
	if err != nil {
		return 0, &HookFailedError{Path: script, Err: err}
	}

	runner, err := interp.New(
		interp.StdIO(r.Stdin, r.Stdout, r.Stderr),
		interp.Dir(cwd),
		interp.Env(expand.ListEnviron(Environ(os.Environ(), env)...)),
	)
	if err != nil {
		return 0, &HookFailedError{Path: script, Err: err}
	}

	logger.Stage(logger.StageHook).Debug("running hook", "shell", "builtin", "hook", script, "type", env[EnvHookType])

	err = runner.Run(context.Background(), file)
	if err == nil {
		return 0, nil
	}

	var status interp.ExitStatus
	if errors.As(err, &status) {
		return int(status), nil
	}
	return 0, &HookFailedError{Path: script, Err: err}
}
