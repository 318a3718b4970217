package cmd

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/dgerlanc/tramp/internal/process"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResolveSetupBinary(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := process.NewMockResolver(ctrl)
	resolver.EXPECT().Resolve("cargo").Return("/home/me/.cargo/bin/cargo", true)

	got, err := resolveSetupBinary("cargo", resolver)
	require.NoError(t, err)
	assert.Equal(t, "/home/me/.cargo/bin/cargo", got)
}

func TestResolveSetupBinaryWithSlash(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	ctrl := gomock.NewController(t)
	resolver := process.NewMockResolver(ctrl)

	got, err := resolveSetupBinary("./bin/tool", resolver)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "bin", "tool"), got)

	got, err = resolveSetupBinary("/opt/tool", resolver)
	require.NoError(t, err)
	assert.Equal(t, "/opt/tool", got)
}

func TestResolveSetupBinaryNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := process.NewMockResolver(ctrl)
	resolver.EXPECT().Resolve("nope").Return("", false)

	_, err := resolveSetupBinary("nope", resolver)
	var notFound *process.CommandNotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestSetupCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	stdout, stderr, code := executeCommand(t, "setup", "/usr/bin/cargo", "--tramp", "/opt/tramp bin/tramp")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "#!/bin/sh\n")
	assert.Contains(t, stdout, `exec '/opt/tramp bin/tramp' -- /usr/bin/cargo "$@"`)
}

func TestSetupRequiresBinary(t *testing.T) {
	_, stderr, code := executeCommand(t, "setup")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "accepts 1 arg(s)")
}
