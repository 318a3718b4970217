// Package constants defines shared constants used across the tramp codebase.
package constants

import "os"

// File permissions
const (
	DirMode    os.FileMode = 0755
	FileMode   os.FileMode = 0644
	ScriptMode os.FileMode = 0755
)

// Environment variables read by tramp itself (see internal/settings)
const (
	EnvVerbose    = "TRAMP_VERBOSE"
	EnvLogFormat  = "TRAMP_LOG_FORMAT"
	EnvHookShell  = "TRAMP_HOOK_SHELL"
	EnvUserConfig = "TRAMP_USER_CONFIG"
	EnvPath       = "PATH"
)

// Application names and paths
const (
	AppName        = "tramp"
	ConfigFileName = ".tramp.toml"
)

// Hook shells
const (
	DefaultHookShell = "sh"
	BuiltinHookShell = "builtin"
)
