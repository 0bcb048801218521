package config

// mergeConfigs merges override configuration into base. Set fields in
// the override win; unset fields keep the base value. The merge is
// shallow per section, matching the override semantics of the store
// itself. Boolean fields merge one way: a false in the override file is
// indistinguishable from the field being absent, so an override can
// enable devtools or snapshots but never disable them. Turning a section
// off means editing the base file.
func mergeConfigs(base, override *Config) *Config {
	result := *base

	if override.Version != "" {
		result.Version = override.Version
	}

	if override.DevTools.Enabled {
		result.DevTools.Enabled = true
	}
	if override.DevTools.URL != "" {
		result.DevTools.URL = override.DevTools.URL
	}
	if override.DevTools.Store != "" {
		result.DevTools.Store = override.DevTools.Store
	}

	if override.Snapshot.Enabled {
		result.Snapshot.Enabled = true
	}
	if override.Snapshot.Path != "" {
		result.Snapshot.Path = override.Snapshot.Path
	}

	if override.Logging.Level != "" {
		result.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		result.Logging.Format = override.Logging.Format
	}

	return &result
}
