// Package config provides configuration management for the vcardbox CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/spachava753/vcardbox/card"
)

// Config represents the CLI configuration.
type Config struct {
	// Variant selects the locale conventions: default, japan, europe, or
	// japan_naming.
	Variant string `yaml:"variant"`
	// Version is the vCard dialect assumed when a card carries no VERSION
	// property: "2.1" or "3.0".
	Version string `yaml:"version"`
	// Database is the SQLite database path.
	Database string        `yaml:"database"`
	Account  AccountConfig `yaml:"account"`
}

// AccountConfig is the owner reference attached to imported contacts.
type AccountConfig struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Default returns a default configuration.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		Variant:  string(card.VariantDefault),
		Version:  string(card.Version21),
		Database: filepath.Join(homeDir, ".vcardbox", "contacts.db"),
	}
}

// DefaultPath returns the default configuration file path.
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".vcardbox", "config.yaml")
}

// Load loads the configuration from a file, falling back to defaults when
// the file does not exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to a file, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// CardConfig converts the CLI configuration into a record configuration.
func (c *Config) CardConfig() card.Config {
	cfg := card.Config{
		Variant: card.Variant(c.Variant),
		Version: card.Version(c.Version),
	}
	if c.Account.Name != "" || c.Account.Type != "" {
		cfg.Account = &card.Account{Name: c.Account.Name, Type: c.Account.Type}
	}
	return cfg
}
