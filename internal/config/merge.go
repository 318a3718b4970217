package config

// Merge flattens loaded configs into a single rule list. Rules keep their
// file order and files keep their cascade order, so the most specific rules
// are evaluated first.
func Merge(configs []Loaded) Merged {
	var merged Merged
	for _, loaded := range configs {
		for _, rule := range loaded.File.Rules {
			merged.Rules = append(merged.Rules, RuleWithSource{
				Rule:   rule,
				Source: loaded.Path,
			})
		}
		if loaded.File.NoExternalLookup {
			merged.NoExternalLookup = true
		}
	}
	return merged
}
