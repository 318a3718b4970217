// Package process runs the real command behind an intercepted invocation and
// resolves command names against the search path.
package process

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/dgerlanc/tramp/internal/constants"
	"github.com/dgerlanc/tramp/internal/logger"
)

//go:generate mockgen -source=process.go -destination=mock_process.go -package=process

// Executor runs a binary to completion and reports its exit code.
type Executor interface {
	// Execute runs binary with args in cwd, passing stdio through.
	// A non-zero exit of the child is not an error.
	Execute(binary string, args []string, cwd string) (int, error)
}

// Resolver maps a command name to an absolute path.
type Resolver interface {
	// Resolve returns the path for name and whether it was found.
	Resolve(name string) (string, bool)
}

// CommandNotFoundError is returned when a command cannot be resolved or the
// binary does not exist at spawn time.
type CommandNotFoundError struct {
	Command string
}

func (e *CommandNotFoundError) Error() string {
	return fmt.Sprintf("command not found: %s", e.Command)
}

// CommandFailedError is returned when a command exists but cannot be spawned.
type CommandFailedError struct {
	Command string
	Err     error
}

func (e *CommandFailedError) Error() string {
	return fmt.Sprintf("command execution failed: %s: %v", e.Command, e.Err)
}

func (e *CommandFailedError) Unwrap() error {
	return e.Err
}

// OSExecutor spawns processes with os/exec.
type OSExecutor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewOSExecutor returns an executor passing the given stdio to the child.
func NewOSExecutor(stdin io.Reader, stdout, stderr io.Writer) *OSExecutor {
	return &OSExecutor{Stdin: stdin, Stdout: stdout, Stderr: stderr}
}

// Execute runs the binary and waits for it. A child terminated by a signal
// has no exit code and is reported as 1.
func (e *OSExecutor) Execute(binary string, args []string, cwd string) (int, error) {
	cmd := exec.Command(binary, args...)
	cmd.Dir = cwd
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	logger.Stage(logger.StageExec).Debug("executing command", "binary", binary, "args", args, "cwd", cwd)

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			logger.Stage(logger.StageExec).Debug("command terminated without exit code", "binary", binary, "state", exitErr.String())
			code = 1
		}
		return code, nil
	}

	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, exec.ErrNotFound) {
		return 0, &CommandNotFoundError{Command: binary}
	}
	return 0, &CommandFailedError{Command: binary, Err: err}
}

// PathResolver resolves names against a PATH-style directory list.
type PathResolver struct {
	// Getenv supplies the search path; defaults to os.Getenv.
	Getenv func(string) string
}

// NewPathResolver returns a resolver reading PATH from the process environment.
func NewPathResolver() *PathResolver {
	return &PathResolver{Getenv: os.Getenv}
}

// Resolve returns name unchanged if it is an absolute path that exists.
// Otherwise each PATH entry is tried in order and the first existing
// candidate wins. Existence is the only check; executability is left to the
// spawn.
func (r *PathResolver) Resolve(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	if filepath.IsAbs(name) {
		if exists(name) {
			return name, true
		}
		return "", false
	}

	getenv := r.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	for _, dir := range filepath.SplitList(getenv(constants.EnvPath)) {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		if exists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
