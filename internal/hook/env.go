package hook

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Environment variables passed to hook scripts.
const (
	EnvOriginalBinary = "TRAMP_ORIGINAL_BINARY"
	EnvOriginalArgs   = "TRAMP_ORIGINAL_ARGS"
	EnvOriginalArgc   = "TRAMP_ORIGINAL_ARGC"
	EnvOriginalArgPfx = "TRAMP_ORIGINAL_ARG_" // followed by the 0-based index
	EnvCwd            = "TRAMP_CWD"
	EnvHookType       = "TRAMP_HOOK_TYPE"
	EnvExecutedBinary = "TRAMP_EXECUTED_BINARY"
	EnvExecutedArgs   = "TRAMP_EXECUTED_ARGS"
	EnvExitCode       = "TRAMP_EXIT_CODE"
)

// BuildEnv returns the TRAMP_* variables for a hook invocation. Variables
// that do not apply to the phase are omitted.
func BuildEnv(ctx Context) map[string]string {
	env := map[string]string{
		EnvOriginalBinary: ctx.OriginalBinary,
		EnvOriginalArgs:   strings.Join(ctx.OriginalArgs, " "),
		EnvOriginalArgc:   strconv.Itoa(len(ctx.OriginalArgs)),
		EnvCwd:            ctx.Cwd,
		EnvHookType:       string(ctx.Phase),
	}
	for i, arg := range ctx.OriginalArgs {
		env[EnvOriginalArgPfx+strconv.Itoa(i)] = arg
	}
	if ctx.Executed != nil {
		env[EnvExecutedBinary] = ctx.Executed.Binary
		env[EnvExecutedArgs] = strings.Join(ctx.Executed.Args, " ")
	}
	if ctx.ExitCode != nil {
		env[EnvExitCode] = strconv.Itoa(*ctx.ExitCode)
	}
	return env
}

// Environ layers overlay on top of base ("KEY=value" entries). Entries of
// base whose key is in overlay are dropped; overlay keys are appended in
// sorted order.
func Environ(base []string, overlay map[string]string) []string {
	out := make([]string, 0, len(base)+len(overlay))
	for _, kv := range base {
		key, _, _ := strings.Cut(kv, "=")
		if _, ok := overlay[key]; ok {
			continue
		}
		out = append(out, kv)
	}
	for _, key := range slices.Sorted(maps.Keys(overlay)) {
		out = append(out, key+"="+overlay[key])
	}
	return out
}
