package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Config holds the handful of settings this reader exposes beyond its
// command-line flags: mainly logging verbosity, loadable from an optional
// YAML file so scripted invocations don't have to repeat flags.
type Config struct {
	LogLevel string `yaml:"log_level"`
}

// Load reads and parses a YAML config file. An empty path is not an error;
// it simply yields a Config with defaults. A non-empty path that cannot be
// opened is an error.
func Load(path string) (*Config, error) {
	cfg := &Config{LogLevel: "warn"}
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ParsedLogLevel translates the configured level name into a logrus.Level,
// falling back to Warn on an unrecognized value.
func (c *Config) ParsedLogLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}
