// pkg/config/config.go

// Package config holds the command line tool's configuration. Values come
// from built-in defaults, then the yaml config file, then environment
// variables; flags are applied last by the CLI layer.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mstoykov/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds findfolly configuration.
type Config struct {
	// PkgConfig is the pkg-config binary to invoke.
	PkgConfig string `yaml:"pkg_config" envconfig:"PKG_CONFIG"`

	// ExtraLibDirs are additional directories searched for boost_context.
	// The environment form is comma separated.
	ExtraLibDirs []string `yaml:"extra_lib_dirs" envconfig:"FINDFOLLY_EXTRA_LIB_DIRS"`

	// Debug enables debug logging.
	Debug bool `yaml:"debug" envconfig:"FINDFOLLY_DEBUG"`

	// Quiet drops log output below the error level.
	Quiet bool `yaml:"quiet" envconfig:"FINDFOLLY_QUIET"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		PkgConfig: "pkg-config",
	}
}

// DefaultPath returns the conventional config file location,
// ~/.config/findfolly/config.yaml, or "" when the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "findfolly", "config.yaml")
}

// Load reads configuration from path, falling back to the default location
// when path is empty. A missing file yields the defaults. Environment
// overrides are read through lookup so tests can inject their own
// environment; pass os.LookupEnv otherwise (nil means the same).
func Load(path string, lookup func(string) (string, bool)) (*Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	cfg := DefaultConfig()

	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		case os.IsNotExist(err):
			// Missing file is fine, defaults apply.
		default:
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := envconfig.Process("", cfg, lookup); err != nil {
		return nil, fmt.Errorf("applying environment overrides: %w", err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories as needed, falling
// back to the default location when path is empty.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return fmt.Errorf("no config path given and no home directory available")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
