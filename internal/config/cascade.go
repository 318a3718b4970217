package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgerlanc/tramp/internal/constants"
	"github.com/dgerlanc/tramp/internal/logger"
)

// Resolver discovers the config files that apply to a directory.
type Resolver struct {
	// FileName is the per-directory config file name.
	FileName string
	// UserConfig overrides the user config location ($HOME/.tramp.toml).
	UserConfig string
	// LookupEnv answers environment queries; defaults to os.LookupEnv.
	LookupEnv func(key string) (string, bool)
	// HomeDir locates the user's home directory; defaults to os.UserHomeDir.
	HomeDir func() (string, error)
}

// NewResolver returns a resolver backed by the process environment.
func NewResolver() *Resolver {
	return &Resolver{
		FileName:  constants.ConfigFileName,
		LookupEnv: os.LookupEnv,
		HomeDir:   os.UserHomeDir,
	}
}

// walkState tracks the two independent ways a cascade walk is cut short.
type walkState struct {
	stopAscending  bool // set by root or no-external-lookup
	skipUserConfig bool // set by no-external-lookup or a truthy disable env var
}

// observe updates the walk state after a config has been loaded.
func (s *walkState) observe(f *File, lookupEnv func(string) (string, bool)) {
	if f.NoExternalLookup {
		s.stopAscending = true
		s.skipUserConfig = true
		return
	}
	if f.Root {
		s.stopAscending = true
	}
	if name := f.RootConfigLookupDisableEnvVar; name != "" && isTruthy(lookupEnv(name)) {
		s.skipUserConfig = true
	}
}

// Discover returns the configs that apply to startDir, most specific first.
//
// The walk starts at startDir and moves up one directory at a time. A config
// with root = true ends the walk after its directory. A config with
// no-external-lookup = true is authoritative: it is returned alone and
// nothing else is consulted. The user config is appended last unless a
// loaded config names a disable variable that is currently truthy.
func (r *Resolver) Discover(startDir string) ([]Loaded, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve start directory %s: %w", startDir, err)
	}

	var (
		configs []Loaded
		state   walkState
	)

	for {
		path := filepath.Join(dir, r.fileName())
		if fileExists(path) {
			f, err := ParseFile(path)
			if err != nil {
				return nil, err
			}
			logger.Stage(logger.StageDiscover).Debug("loaded config", "path", path, "rules", len(f.Rules), "root", f.Root)

			if f.NoExternalLookup {
				logger.Stage(logger.StageDiscover).Debug("external lookup disabled", "path", path)
				configs = []Loaded{{File: *f, Path: path}}
			} else {
				configs = append(configs, Loaded{File: *f, Path: path})
			}
			state.observe(f, r.lookupEnv)
		}

		if state.stopAscending {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if state.skipUserConfig {
		logger.Stage(logger.StageDiscover).Debug("user config lookup skipped")
		return configs, nil
	}

	user, err := r.loadUserConfig(configs)
	if err != nil {
		return nil, err
	}
	if user != nil {
		configs = append(configs, *user)
	}
	return configs, nil
}

// LoadMerged discovers and merges the configs for startDir.
func (r *Resolver) LoadMerged(startDir string) (*Merged, error) {
	configs, err := r.Discover(startDir)
	if err != nil {
		return nil, err
	}
	merged := Merge(configs)
	return &merged, nil
}

// UserConfigPath returns the location of the user-level config file.
func (r *Resolver) UserConfigPath() (string, error) {
	if r.UserConfig != "" {
		return r.UserConfig, nil
	}

	homeDir := r.HomeDir
	if homeDir == nil {
		homeDir = os.UserHomeDir
	}
	home, err := homeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHomeDirectoryNotFound, err)
	}
	if home == "" {
		return "", ErrHomeDirectoryNotFound
	}
	return filepath.Join(home, r.fileName()), nil
}

// loadUserConfig returns nil when the user config does not exist or was
// already loaded by the directory walk.
func (r *Resolver) loadUserConfig(loaded []Loaded) (*Loaded, error) {
	path, err := r.UserConfigPath()
	if err != nil {
		return nil, err
	}
	if !fileExists(path) {
		logger.Stage(logger.StageDiscover).Debug("no user config", "path", path)
		return nil, nil
	}
	for _, l := range loaded {
		if samePath(l.Path, path) {
			logger.Stage(logger.StageDiscover).Debug("user config already loaded by cascade", "path", path)
			return nil, nil
		}
	}

	f, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	logger.Stage(logger.StageDiscover).Debug("loaded user config", "path", path, "rules", len(f.Rules))
	return &Loaded{File: *f, Path: path}, nil
}

func (r *Resolver) fileName() string {
	if r.FileName == "" {
		return constants.ConfigFileName
	}
	return r.FileName
}

func (r *Resolver) lookupEnv(key string) (string, bool) {
	if r.LookupEnv == nil {
		return os.LookupEnv(key)
	}
	return r.LookupEnv(key)
}

// isTruthy reports whether an environment value enables a flag: set,
// non-empty, and not "0", "false" or "no" in any case.
func isTruthy(value string, ok bool) bool {
	if !ok || value == "" {
		return false
	}
	switch strings.ToLower(value) {
	case "0", "false", "no":
		return false
	}
	return true
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func samePath(a, b string) bool {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}
