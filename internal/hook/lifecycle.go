// Package hook runs the pre, intercept and post hooks around an intercepted
// command and defines the environment contract hook scripts rely on.
package hook

import (
	"github.com/dgerlanc/tramp/internal/logger"
	"github.com/dgerlanc/tramp/internal/process"
)

// Controller sequences hooks and the real command for one invocation.
type Controller struct {
	Hooks Runner
	Exec  process.Executor
}

// NewController returns a controller using the given hook runner and executor.
func NewController(hooks Runner, exec process.Executor) *Controller {
	return &Controller{Hooks: hooks, Exec: exec}
}

// Run executes the plan and returns the exit code tramp should exit with.
//
// A pre hook that fails or exits non-zero aborts before anything else runs.
// An intercept hook replaces the command and its exit code is returned as-is;
// the post hook is skipped. Post hook failures are logged and never change
// the result.
func (c *Controller) Run(p Plan) (int, error) {
	if p.PreHook != "" {
		code, err := c.runHook(p.PreHook, p.context(PhasePre, 0))
		if err != nil {
			return 0, err
		}
		if code != 0 {
			return 0, &NonZeroExitError{Path: p.PreHook, ExitCode: code}
		}
	}

	if p.InterceptHook != "" {
		code, err := c.runHook(p.InterceptHook, p.context(PhaseIntercept, 0))
		if err != nil {
			return 0, err
		}
		logger.Stage(logger.StageHook).Debug("command intercepted", "hook", p.InterceptHook, "exit_code", code)
		return code, nil
	}

	code, err := c.Exec.Execute(p.Binary, p.Args, p.Cwd)
	if err != nil {
		return 0, err
	}
	logger.Stage(logger.StageHook).Debug("command finished", "binary", p.Binary, "exit_code", code)

	if p.PostHook != "" {
		postCode, err := c.runHook(p.PostHook, p.context(PhasePost, code))
		switch {
		case err != nil:
			logger.Stage(logger.StageHook).Warn("post hook failed", "hook", p.PostHook, "error", err)
		case postCode != 0:
			logger.Stage(logger.StageHook).Warn("post hook exited with non-zero status", "hook", p.PostHook, "exit_code", postCode)
		}
	}

	return code, nil
}

func (c *Controller) runHook(path string, ctx Context) (int, error) {
	code, err := c.Hooks.Run(path, ctx.Cwd, BuildEnv(ctx))
	if err != nil {
		return 0, err
	}
	logger.Stage(logger.StageHook).Debug("hook finished", "hook", path, "type", ctx.Phase, "exit_code", code)
	return code, nil
}
