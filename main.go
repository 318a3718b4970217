// tramp runs commands through per-directory rewrite rules and hooks.
//
// A trampoline script placed ahead of a real binary on PATH forwards every
// invocation to tramp:
//
//	exec tramp -- /usr/bin/cargo "$@"
//
// tramp collects the .tramp.toml files from the current directory upward,
// plus ~/.tramp.toml, and applies the first rule matching the binary and
// working directory. A rule may rewrite the arguments or the whole command,
// run an alternate command, and run pre, intercept and post hook scripts.
//
// Generate a trampoline:
//
//	tramp setup cargo > ~/bin/cargo && chmod +x ~/bin/cargo
package main

import (
	"os"

	"github.com/dgerlanc/tramp/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
