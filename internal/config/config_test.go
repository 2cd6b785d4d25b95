package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ParsedLogLevel() != logrus.WarnLevel {
		t.Fatalf("level = %v", cfg.ParsedLogLevel())
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("log_level: debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ParsedLogLevel() != logrus.DebugLevel {
		t.Fatalf("level = %v", cfg.ParsedLogLevel())
	}
}

func TestLoadInvalidLevelFallsBack(t *testing.T) {
	cfg := &Config{LogLevel: "not-a-level"}
	if cfg.ParsedLogLevel() != logrus.WarnLevel {
		t.Fatalf("level = %v", cfg.ParsedLogLevel())
	}
}
