package hook

/*
Type relationships in the hook package:

  Plan (original + rewritten command, cwd, hook paths)
    → Controller.Run()
      → Context (one per hook invocation, phase-specific fields)
        → BuildEnv() → TRAMP_* variables
          → Runner.Run() (ShellRunner or InterpRunner)
      → process.Executor.Execute() (the real command)

Related packages:
  - rules.CompiledRule: supplies the hook paths and the rewrite result
  - process.Executor: runs the real command
*/

// Phase identifies when a hook runs relative to the real command.
type Phase string

const (
	PhasePre       Phase = "pre"
	PhasePost      Phase = "post"
	PhaseIntercept Phase = "intercept"
)

// Command is a binary and its argument vector.
type Command struct {
	Binary string
	Args   []string
}

// Context is everything a single hook invocation is told about the command.
type Context struct {
	OriginalBinary string
	OriginalArgs   []string
	Cwd            string
	Phase          Phase

	// Executed is the command that ran (post) or would have run (intercept).
	// Nil for pre hooks.
	Executed *Command

	// ExitCode of the real command. Only set for post hooks.
	ExitCode *int
}

// Plan is the fully resolved invocation handed to the Controller.
type Plan struct {
	OriginalBinary string
	OriginalArgs   []string
	Cwd            string

	// Binary and Args are the rewrite result.
	Binary string
	Args   []string

	// Hook script paths; empty means not set.
	PreHook       string
	InterceptHook string
	PostHook      string
}

// context builds the hook context for a phase. exitCode is only honoured for
// post hooks.
func (p Plan) context(phase Phase, exitCode int) Context {
	ctx := Context{
		OriginalBinary: p.OriginalBinary,
		OriginalArgs:   p.OriginalArgs,
		Cwd:            p.Cwd,
		Phase:          phase,
	}
	if phase == PhasePre {
		return ctx
	}
	ctx.Executed = &Command{Binary: p.Binary, Args: p.Args}
	if phase == PhasePost {
		ctx.ExitCode = &exitCode
	}
	return ctx
}
