// Package config loads redux-lite tool configuration from redux.yml,
// with environment variable expansion and shallow override-file merging.
// The store core never reads configuration on its own; this package
// serves the monitor CLI and embedding applications.
package config

// Config is the root of a redux.yml file.
type Config struct {
	Version  string         `yaml:"version,omitempty"`
	DevTools DevToolsConfig `yaml:"devtools,omitempty"`
	Snapshot SnapshotConfig `yaml:"snapshot,omitempty"`
	Logging  LogConfig      `yaml:"logging,omitempty"`
}

// DevToolsConfig configures the DevTools websocket bridge.
type DevToolsConfig struct {
	Enabled bool   `yaml:"enabled,omitempty"`
	URL     string `yaml:"url,omitempty"`
	Store   string `yaml:"store,omitempty"`
}

// SnapshotConfig configures the YAML snapshot middleware.
type SnapshotConfig struct {
	Enabled bool   `yaml:"enabled,omitempty"`
	Path    string `yaml:"path,omitempty"`
}

// LogConfig configures logging level and format.
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// SetDefaults fills in defaults for unset fields.
func (c *Config) SetDefaults() {
	if c.DevTools.URL == "" {
		c.DevTools.URL = "ws://127.0.0.1:9200/devtools"
	}
	if c.DevTools.Store == "" {
		c.DevTools.Store = "default"
	}
	if c.Snapshot.Path == "" {
		c.Snapshot.Path = ".redux/state.yml"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}
