package rules

import (
	"errors"
	"testing"

	"github.com/dgerlanc/tramp/internal/config"
	"github.com/dgerlanc/tramp/internal/process"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewRewriteSelectsStrategy(t *testing.T) {
	tests := []struct {
		name string
		rule config.Rule
		want string
	}{
		{"none", config.Rule{PreHook: "hook.sh"}, "none"},
		{"alternate", config.Rule{AlternateCommand: "pnpm"}, config.FieldAlternateCommand},
		{"arg", config.Rule{ArgRewrite: "s/a/b/"}, config.FieldArgRewrite},
		{"command", config.Rule{CommandRewrite: "s/a/b/"}, config.FieldCommandRewrite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rw, err := NewRewrite(tt.rule)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rw.Kind())
		})
	}
}

func TestNewRewriteRejectsMultipleStrategies(t *testing.T) {
	_, err := NewRewrite(config.Rule{ArgRewrite: "s/a/b/", AlternateCommand: "pnpm"})

	var mutex *config.MutuallyExclusiveError
	require.True(t, errors.As(err, &mutex), "expected *MutuallyExclusiveError, got %v", err)
	assert.Equal(t, config.FieldArgRewrite, mutex.Option1)
	assert.Equal(t, config.FieldAlternateCommand, mutex.Option2)
}

func TestNoRewritePassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := process.NewMockResolver(ctrl)

	binary, args, err := NoRewrite{}.Apply("/usr/bin/git", []string{"status", "-s"}, resolver)
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/git", binary)
	assert.Equal(t, []string{"status", "-s"}, args)
}

func TestAlternateCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := process.NewMockResolver(ctrl)
	resolver.EXPECT().Resolve("pnpm").Return("/usr/local/bin/pnpm", true)

	binary, args, err := AlternateCommand{Command: "pnpm"}.Apply("/usr/bin/npm", []string{"install", "left-pad"}, resolver)
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/pnpm", binary)
	assert.Equal(t, []string{"install", "left-pad"}, args)
}

func TestAlternateCommandNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := process.NewMockResolver(ctrl)
	resolver.EXPECT().Resolve("missing-tool").Return("", false)

	_, _, err := AlternateCommand{Command: "missing-tool"}.Apply("/usr/bin/npm", nil, resolver)

	var notFound *process.CommandNotFoundError
	require.True(t, errors.As(err, &notFound), "expected *CommandNotFoundError, got %v", err)
	assert.Equal(t, "missing-tool", notFound.Command)
}

func TestArgRewrite(t *testing.T) {
	tests := []struct {
		name string
		expr string
		args []string
		want []string
	}{
		{"replace word", "s/hello/goodbye/", []string{"hello", "world"}, []string{"goodbye", "world"}},
		{"add flag", "s/^build$/build --release/", []string{"build"}, []string{"build", "--release"}},
		{"remove flag", "s/ *--verbose//", []string{"run", "--verbose"}, []string{"run"}},
		{"no args", "s/^$/--help/", nil, []string{"--help"}},
		{"everything removed", "s/.*//", []string{"a", "b"}, []string{}},
		{"spaces inside an argument are split", "s/x/y/", []string{"a b", "x"}, []string{"a", "b", "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, err := ParseSubstitution(tt.expr, config.FieldArgRewrite)
			require.NoError(t, err)

			ctrl := gomock.NewController(t)
			resolver := process.NewMockResolver(ctrl)

			binary, args, err := ArgRewrite{Substitution: sub}.Apply("/usr/bin/tool", tt.args, resolver)
			require.NoError(t, err)
			assert.Equal(t, "/usr/bin/tool", binary)
			assert.Equal(t, tt.want, args)
		})
	}
}

func TestCommandRewrite(t *testing.T) {
	sub, err := ParseSubstitution("s|^/usr/bin/python |python3 -X dev |", config.FieldCommandRewrite)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	resolver := process.NewMockResolver(ctrl)
	resolver.EXPECT().Resolve("python3").Return("/opt/bin/python3", true)

	binary, args, err := CommandRewrite{Substitution: sub}.Apply("/usr/bin/python", []string{"script.py"}, resolver)
	require.NoError(t, err)
	assert.Equal(t, "/opt/bin/python3", binary)
	assert.Equal(t, []string{"-X", "dev", "script.py"}, args)
}

func TestCommandRewriteResolvesUnchangedBinary(t *testing.T) {
	sub, err := ParseSubstitution("s/debug/release/", config.FieldCommandRewrite)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	resolver := process.NewMockResolver(ctrl)
	resolver.EXPECT().Resolve("/usr/bin/cargo").Return("/usr/bin/cargo", true)

	binary, args, err := CommandRewrite{Substitution: sub}.Apply("/usr/bin/cargo", []string{"build", "debug"}, resolver)
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/cargo", binary)
	assert.Equal(t, []string{"build", "release"}, args)
}

func TestCommandRewriteNotFound(t *testing.T) {
	sub, err := ParseSubstitution("s/^[^ ]*/nonexistent-binary/", config.FieldCommandRewrite)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	resolver := process.NewMockResolver(ctrl)
	resolver.EXPECT().Resolve("nonexistent-binary").Return("", false)

	_, _, err = CommandRewrite{Substitution: sub}.Apply("/usr/bin/tool", []string{"x"}, resolver)

	var notFound *process.CommandNotFoundError
	require.True(t, errors.As(err, &notFound), "expected *CommandNotFoundError, got %v", err)
	assert.Equal(t, "nonexistent-binary", notFound.Command)
}

func TestRewriteCommandEmptyResult(t *testing.T) {
	sub, err := ParseSubstitution("s/.*//", config.FieldCommandRewrite)
	require.NoError(t, err)

	binary, args := RewriteCommand("/usr/bin/tool", []string{"a", "b"}, sub)
	assert.Equal(t, "/usr/bin/tool", binary)
	assert.Nil(t, args)
}

func TestRewriteArgsGlobal(t *testing.T) {
	sub, err := ParseSubstitution("s/-v/--verbose/g", config.FieldArgRewrite)
	require.NoError(t, err)

	assert.Equal(t, []string{"--verbose", "x", "--verbose"}, RewriteArgs([]string{"-v", "x", "-v"}, sub))
}
