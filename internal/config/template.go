// Package config discovers, parses, validates and merges tramp's
// directory-cascaded .tramp.toml files.
package config

import (
	_ "embed"
)

//go:embed tramp.toml
var defaultTemplate []byte

// GetTemplate returns the commented config written by "tramp init".
func GetTemplate() []byte {
	return defaultTemplate
}
