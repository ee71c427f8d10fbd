package config

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// EnvVar names the environment variable holding the default config path.
const EnvVar = "GAFFER_SCHEMA_CONFIG"

// Config holds the settings shared by the command line tools.
type Config struct {
	Validate ValidateConfig `toml:"validate"`
	Test     TestConfig     `toml:"test"`
}

// ValidateConfig holds gaffer-schema-validate settings
type ValidateConfig struct {
	JSONSchema  bool `toml:"jsonschema"`
	Color       bool `toml:"color"`
	Progress    bool `toml:"progress"`
	StopOnError bool `toml:"stop_on_error"`
}

// TestConfig holds gaffer-schema-test settings
type TestConfig struct {
	StopOnFailure bool `toml:"stop_on_failure"`
	Verbose       bool `toml:"verbose"`
}

func Default() *Config {
	return &Config{
		Validate: ValidateConfig{Color: true},
	}
}

// Load reads a TOML config file on top of the defaults. Unknown keys are
// rejected.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.Errorf("config file not found: %s", path)
	}

	cfg := Default()
	metadata, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}

	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}

		return nil, errors.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}

	return cfg, nil
}

// LoadOrDefault loads path, or returns the defaults when path is empty.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	return Load(path)
}
