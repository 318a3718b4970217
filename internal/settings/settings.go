// Package settings loads tramp's own runtime settings from the environment.
//
// These are distinct from the rule files discovered by internal/config: they
// control how tramp behaves (logging, hook shell, user config location), not
// what it does to intercepted commands.
package settings

import (
	"fmt"
	"strings"

	"github.com/dgerlanc/tramp/internal/constants"
	"github.com/kelseyhightower/envconfig"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Settings holds environment-driven configuration.
type Settings struct {
	// Verbose enables debug logging of every pipeline stage.
	// Env: TRAMP_VERBOSE
	Verbose bool `envconfig:"TRAMP_VERBOSE"`

	// LogFormat is "text" or "json".
	// Env: TRAMP_LOG_FORMAT
	LogFormat string `envconfig:"TRAMP_LOG_FORMAT" default:"text"`

	// HookShell is the interpreter used to run hook scripts ("<shell> -c <hook>").
	// The value "builtin" runs hooks with the in-process POSIX shell.
	// Env: TRAMP_HOOK_SHELL
	HookShell string `envconfig:"TRAMP_HOOK_SHELL" default:"sh"`

	// UserConfig overrides the location of the user-level config file.
	// Env: TRAMP_USER_CONFIG
	UserConfig string `envconfig:"TRAMP_USER_CONFIG"`
}

// Load reads settings from the environment and validates them.
func Load() (*Settings, error) {
	var s Settings
	if err := envconfig.Process("", &s); err != nil {
		return nil, fmt.Errorf("failed to load settings from environment: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that enumerated settings hold known values.
func (s *Settings) Validate() error {
	switch strings.ToLower(s.LogFormat) {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("invalid %s %q (want %q or %q)", constants.EnvLogFormat, s.LogFormat, LogFormatText, LogFormatJSON)
	}
	if strings.TrimSpace(s.HookShell) == "" {
		return fmt.Errorf("%s must not be empty", constants.EnvHookShell)
	}
	return nil
}

// JSONLogs reports whether logs should be JSON formatted.
func (s *Settings) JSONLogs() bool {
	return strings.ToLower(s.LogFormat) == LogFormatJSON
}

// BuiltinShell reports whether hooks run in the in-process shell.
func (s *Settings) BuiltinShell() bool {
	return s.HookShell == constants.BuiltinHookShell
}
