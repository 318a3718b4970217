// Package trampoline generates the wrapper scripts that route a binary
// through tramp.
package trampoline

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/dgerlanc/tramp/internal/constants"
	"mvdan.cc/sh/v3/syntax"
)

//go:embed trampoline.sh.tmpl
var scriptTemplate string

var tmpl = template.Must(template.New("trampoline").Parse(scriptTemplate))

// Options configures script generation.
type Options struct {
	// TrampPath is the tramp executable the script calls. Defaults to
	// "tramp", looked up on PATH when the script runs.
	TrampPath string
}

// Generate returns a POSIX sh script that runs binary through tramp with the
// script's own arguments.
func Generate(binary string, opts Options) (string, error) {
	if binary == "" {
		return "", fmt.Errorf("binary path must not be empty")
	}
	trampPath := opts.TrampPath
	if trampPath == "" {
		trampPath = constants.AppName
	}

	quotedTramp, err := syntax.Quote(trampPath, syntax.LangPOSIX)
	if err != nil {
		return "", fmt.Errorf("cannot quote tramp path %q: %w", trampPath, err)
	}
	quotedBinary, err := syntax.Quote(binary, syntax.LangPOSIX)
	if err != nil {
		return "", fmt.Errorf("cannot quote binary path %q: %w", binary, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Tramp, Binary string }{quotedTramp, quotedBinary}); err != nil {
		return "", fmt.Errorf("failed to render trampoline: %w", err)
	}

	script := buf.String()
	if err := Check(script); err != nil {
		return "", err
	}
	return script, nil
}

// Check reports whether script is valid POSIX shell.
func Check(script string) error {
	parser := syntax.NewParser(syntax.Variant(syntax.LangPOSIX))
	if _, err := parser.Parse(strings.NewReader(script), "trampoline"); err != nil {
		return fmt.Errorf("generated trampoline is not valid shell: %w", err)
	}
	return nil
}
