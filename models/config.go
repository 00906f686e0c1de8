// Package models defines configuration structures shared by the CLI
// commands.
package models

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML configuration file. CLI flags override
// anything set here.
type Config struct {
	URLs              []string `yaml:"urls,omitempty"`
	WorkerCount       int      `yaml:"workers,omitempty"`
	HierarchyStrategy string   `yaml:"hierarchy_strategy,omitempty"` // themes or overlap
	TopicalVocabulary []string `yaml:"topical_vocabulary,omitempty"`
	LanguageHint      string   `yaml:"language_hint,omitempty"`
	CacheDir          string   `yaml:"cache_dir,omitempty"`
	CacheTTL          string   `yaml:"cache_ttl,omitempty"`
}

// DefaultWorkerCount bounds pipeline concurrency when no worker count
// is configured.
const DefaultWorkerCount = 4

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &config, nil
}

// Workers returns the configured worker count or the default.
func (c *Config) Workers() int {
	if c.WorkerCount > 0 {
		return c.WorkerCount
	}
	return DefaultWorkerCount
}

// CacheMaxAge parses the configured cache TTL, defaulting to one hour.
func (c *Config) CacheMaxAge() time.Duration {
	if c.CacheTTL == "" {
		return time.Hour
	}
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return time.Hour
	}
	return d
}
