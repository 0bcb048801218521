package config

import (
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/oldbig/redux-lite/errors"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// ConfigFileName is the default configuration file name.
const ConfigFileName = "redux.yml"

// Load reads and parses a configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	return LoadFromBytes(data)
}

// LoadFromBytes parses configuration data with env expansion and applies
// defaults.
func LoadFromBytes(data []byte) (*Config, error) {
	expanded := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse config file")
	}

	cfg.SetDefaults()
	return &cfg, nil
}

// LoadDefault loads redux.yml from the current directory, merging
// redux.override.yml on top when present. A missing redux.yml yields the
// defaults rather than an error.
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}
	return LoadFrom(cwd)
}

// LoadFrom loads configuration with override merging starting from the
// given directory.
func LoadFrom(dir string) (*Config, error) {
	base := filepath.Join(dir, ConfigFileName)

	cfg, err := Load(base)
	if err != nil {
		if errors.Is(err, errors.ErrCodeConfigNotFound) {
			cfg = &Config{}
			cfg.SetDefaults()
		} else {
			return nil, err
		}
	}

	overrides := []string{
		filepath.Join(dir, "redux.override.yml"),
		filepath.Join(dir, "redux.override.yaml"),
	}
	for _, overrideFile := range overrides {
		if _, err := os.Stat(overrideFile); err != nil {
			continue
		}
		data, err := os.ReadFile(overrideFile)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read override file").
				WithDetail("path", overrideFile)
		}
		expanded := expandEnvVars(string(data))
		var override Config
		if err := yaml.Unmarshal([]byte(expanded), &override); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse override file").
				WithDetail("path", overrideFile)
		}
		cfg = mergeConfigs(cfg, &override)
	}

	return cfg, nil
}

// expandEnvVars replaces ${VAR} references with their environment
// values. Unset variables expand to the empty string.
func expandEnvVars(data string) string {
	return envVarRegex.ReplaceAllStringFunc(data, func(match string) string {
		name := envVarRegex.FindStringSubmatch(match)[1]
		return os.Getenv(name)
	})
}
