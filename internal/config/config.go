package config

import (
	"fmt"
	"os"

	"github.com/gyeh/timesift/internal/normalize"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration for a timesift run.
type Config struct {
	DSN        string
	FilePath   string
	LogFormat  string // "text" or "json"
	LogLevel   string
	Force      bool
	Strategies []string `yaml:"strategies"` // rewrite strategies to try, in order
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	Strategies []string `yaml:"strategies"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	c.Strategies = yc.Strategies
	return c.validateStrategies()
}

// validateStrategies checks that every entry in Strategies is a registered
// rewrite strategy name. If Strategies is empty, it defaults to all of them.
func (c *Config) validateStrategies() error {
	if len(c.Strategies) == 0 {
		c.Strategies = normalize.StrategyNames()
		return nil
	}
	for _, name := range c.Strategies {
		if _, ok := normalize.StrategyByName(name); !ok {
			return fmt.Errorf("unknown strategy %q in config", name)
		}
	}
	return nil
}

// Validate checks required fields and returns an error if the config is invalid.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	return c.validateStrategies()
}

// ValidateWithDSN checks both file and DSN fields.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or TIMESIFT_DB_URL is required")
	}
	return nil
}
