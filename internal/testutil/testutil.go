// Package testutil provides shared test utilities for tramp tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dgerlanc/tramp/internal/constants"
)

// WriteConfig writes content as dir/.tramp.toml and returns the file path.
func WriteConfig(t *testing.T, dir, content string) string {
	t.Helper()

	if err := os.MkdirAll(dir, constants.DirMode); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, constants.ConfigFileName)
	if err := os.WriteFile(path, []byte(content), constants.FileMode); err != nil {
		t.Fatal(err)
	}
	return path
}

// WriteScript writes an executable /bin/sh script and returns its path.
func WriteScript(t *testing.T, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), constants.ScriptMode); err != nil {
		t.Fatal(err)
	}
	return path
}

// MkdirAll creates a nested directory under a fresh temp root and returns
// the root and the leaf.
func MkdirAll(t *testing.T, parts ...string) (root, leaf string) {
	t.Helper()

	root = t.TempDir()
	leaf = filepath.Join(append([]string{root}, parts...)...)
	if err := os.MkdirAll(leaf, constants.DirMode); err != nil {
		t.Fatal(err)
	}
	return root, leaf
}

// IsolateHome points HOME at a fresh temp directory and clears the user
// config override, so no real ~/.tramp.toml leaks into a test.
func IsolateHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(constants.EnvUserConfig, "")
	os.Unsetenv(constants.EnvUserConfig)
	return home
}

// MinimalRootConfig is a root config with a single argument rewrite for echo.
const MinimalRootConfig = `
root = true

[[rules]]
binary_pattern = ".*/echo$"
arg_rewrite = "s/hello/goodbye/"
`
