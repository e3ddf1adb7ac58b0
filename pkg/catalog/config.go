// Copyright (c) 2025 Zampapp. All Rights Reserved.
// This is licensed software from Zampapp, for limitations
// and restrictions contact your company contract manager.

package catalog

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the catalog configuration: which tabs the client offers,
// which locale labels to use, and how often the snapshot refreshes.
type Config struct {
	Locale          string      `yaml:"locale"`
	RefreshInterval Duration    `yaml:"refreshInterval"`
	Tabs            []TabConfig `yaml:"tabs"`
}

// Duration parses Go duration strings ("30s", "5m") from YAML.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// TabConfig declares one catalog tab.
type TabConfig struct {
	ID      Tab    `yaml:"id"`
	Title   string `yaml:"title"`
	Enabled bool   `yaml:"enabled"`
}

var knownTabs = map[Tab]bool{
	TabAll:     true,
	TabFree:    true,
	TabPro:     true,
	TabPremium: true,
	TabVIP:     true,
	TabShop:    true,
}

// LoadConfig loads the catalog configuration from a YAML file.
// Supports environment variable expansion in the form ${VAR_NAME} or
// ${VAR_NAME:default}.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	expanded := expandEnvVars(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expanded), &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration for common errors.
func (c *Config) Validate() error {
	switch c.Locale {
	case "", "it", "en":
	default:
		return fmt.Errorf("unsupported locale: %s", c.Locale)
	}

	if time.Duration(c.RefreshInterval) < 0 {
		return fmt.Errorf("refreshInterval must be non-negative")
	}

	seen := make(map[Tab]bool)
	for _, tab := range c.Tabs {
		if tab.ID == "" {
			return fmt.Errorf("tab with empty ID found")
		}
		if !knownTabs[tab.ID] {
			return fmt.Errorf("unknown tab ID: %s", tab.ID)
		}
		if seen[tab.ID] {
			return fmt.Errorf("duplicate tab ID: %s", tab.ID)
		}
		seen[tab.ID] = true
	}

	return nil
}

// EnabledTabs returns the tabs the client should offer, in declaration
// order. An empty configuration falls back to the full tab set.
func (c *Config) EnabledTabs() []Tab {
	if len(c.Tabs) == 0 {
		return []Tab{TabAll, TabFree, TabPro, TabPremium, TabVIP, TabShop}
	}

	tabs := make([]Tab, 0, len(c.Tabs))
	for _, tab := range c.Tabs {
		if tab.Enabled {
			tabs = append(tabs, tab.ID)
		}
	}
	return tabs
}

func expandEnvVars(s string) string {
	return os.Expand(s, func(key string) string {
		// Support ${VAR:default} syntax
		parts := strings.SplitN(key, ":", 2)
		varName := parts[0]
		defaultValue := ""
		if len(parts) == 2 {
			defaultValue = parts[1]
		}

		value := os.Getenv(varName)
		if value == "" {
			return defaultValue
		}
		return value
	})
}
