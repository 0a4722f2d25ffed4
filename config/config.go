// Package config loads the checker's settings from a TOML or YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable holding an explicit config path.
const EnvVar = "ARITH_CONFIG"

const DefaultPrompt = "Enter an arithmetic expression: "

// Config holds the complete application configuration
type Config struct {
	Prompt string    `toml:"prompt" yaml:"prompt"`
	Format string    `toml:"format" yaml:"format"`
	Caret  string    `toml:"caret" yaml:"caret"`
	Color  string    `toml:"color" yaml:"color"`
	Log    LogConfig `toml:"log" yaml:"log"`
	UI     UIConfig  `toml:"ui" yaml:"ui"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Verbosity int    `toml:"verbosity" yaml:"verbosity"`
	File      string `toml:"file" yaml:"file"`
}

// UIConfig holds web UI settings
type UIConfig struct {
	Addr string `toml:"addr" yaml:"addr"`
}

func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Prompt == "" {
		c.Prompt = DefaultPrompt
	}
	if c.Format == "" {
		c.Format = "text"
	}
	if c.Caret == "" {
		c.Caret = "end"
	}
	if c.Color == "" {
		c.Color = "auto"
	}
	if c.UI.Addr == "" {
		c.UI.Addr = ":8080"
	}
}

// Validate rejects values the rest of the program cannot act on.
func (c *Config) Validate() error {
	if !oneOf(c.Format, "text", "line", "json", "yaml") {
		return fmt.Errorf("invalid format %q (want text, line, json or yaml)", c.Format)
	}
	if !oneOf(c.Caret, "end", "mismatch") {
		return fmt.Errorf("invalid caret %q (want end or mismatch)", c.Caret)
	}
	if !oneOf(c.Color, "auto", "always", "never") {
		return fmt.Errorf("invalid color %q (want auto, always or never)", c.Color)
	}
	if c.Log.Verbosity < 0 {
		return fmt.Errorf("invalid log verbosity %d", c.Log.Verbosity)
	}
	return nil
}

func oneOf(s string, values ...string) bool {
	for _, v := range values {
		if s == v {
			return true
		}
	}
	return false
}

// Load reads a configuration file. The format is chosen by extension:
// .yaml and .yml are YAML, everything else is TOML.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("parse yaml config %s: %w", path, err)
		}
	default:
		if _, err := toml.Decode(string(content), &cfg); err != nil {
			return nil, fmt.Errorf("parse toml config %s: %w", path, err)
		}
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// Discover loads the first config found in $ARITH_CONFIG, ./arith.toml,
// ./arith.yaml or $HOME/.config/arith/config.toml. With none present it
// returns the defaults.
func Discover() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}

	candidates := []string{"arith.toml", "arith.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "arith", "config.toml"))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}
