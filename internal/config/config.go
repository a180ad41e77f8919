// Package config loads settings and variable bindings for the rpn command.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/rpn"
)

// DefaultFormat is the result formatting verb used when a file sets none.
const DefaultFormat = "%g"

// Config holds settings read from a file.
type Config struct {
	// Precision is the number of bits for evaluation. 0 means float64.
	Precision uint `toml:"precision" yaml:"precision"`
	// Format is the fmt verb used to print results.
	Format string `toml:"format" yaml:"format"`
	// Vars are variable bindings available to every expression.
	Vars rpn.Vars `toml:"vars" yaml:"vars"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load reads a configuration file. The format is chosen by extension: .toml
// for TOML, .yaml or .yml for YAML.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".yaml", ".yml":
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q for %s", ext, path)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.Vars == nil {
		c.Vars = make(rpn.Vars)
	}
}

// Merge copies vars into the config's bindings, replacing existing names.
func (c *Config) Merge(vars rpn.Vars) {
	if c.Vars == nil {
		c.Vars = make(rpn.Vars, len(vars))
	}
	for k, v := range vars {
		c.Vars[k] = v
	}
}
