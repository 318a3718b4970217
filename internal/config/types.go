package config

/*
Type relationships in the config package:

  File (one .tramp.toml)
    → Loaded (File + the path it was read from)
      → Resolver.Discover() → []Loaded, most specific first, user config last
        → Merge() → Merged
          → []RuleWithSource (consumed by rules.Compile)
*/

// File is the top-level content of a .tramp.toml file.
type File struct {
	// Root stops the directory cascade after this file; the user config is
	// still consulted.
	Root bool `toml:"root"`

	// NoExternalLookup makes this file authoritative: no parent directory or
	// user config is loaded.
	NoExternalLookup bool `toml:"no-external-lookup"`

	// RootConfigLookupDisableEnvVar names an environment variable that, when
	// truthy, skips the user config (useful in CI).
	RootConfigLookupDisableEnvVar string `toml:"root-config-lookup-disable-env-var"`

	// Rules are evaluated in order; the first match wins.
	Rules []Rule `toml:"rules"`
}

// Rule is one user-declared interception policy. Empty strings mean "not set".
type Rule struct {
	BinaryPattern string `toml:"binary_pattern"`
	CwdPattern    string `toml:"cwd_pattern"`

	// At most one of the three rewrite strategies may be set.
	ArgRewrite       string `toml:"arg_rewrite" validate:"excluded_with=CommandRewrite AlternateCommand"`
	CommandRewrite   string `toml:"command_rewrite" validate:"excluded_with=AlternateCommand"`
	AlternateCommand string `toml:"alternate_command"`

	PreHook       string `toml:"pre_hook"`
	PostHook      string `toml:"post_hook"`
	InterceptHook string `toml:"intercept_hook"`
}

// Loaded is a parsed config file together with its source path.
type Loaded struct {
	File File
	Path string
}

// Merged is the flattened rule list of a cascade.
type Merged struct {
	// Rules in cascade order: most specific directory first, user config last.
	Rules []RuleWithSource
	// NoExternalLookup is set if any config in the cascade set it.
	NoExternalLookup bool
}

// RuleWithSource tags a rule with the config file that declared it.
type RuleWithSource struct {
	Rule   Rule
	Source string
}
