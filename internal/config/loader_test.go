package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

// resetViper clears the global viper instance so tests do not leak state
// into each other through cached values.
func resetViper() {
	viper.Reset()
}

// TestNewLoader tests loader creation.
func TestNewLoader(t *testing.T) {
	resetViper()

	loader := NewLoader()
	if loader == nil {
		t.Fatal("NewLoader() returned nil")
	}
	if loader.v == nil {
		t.Error("Loader viper instance is nil")
	}
}

// TestLoadWithNoConfigFile tests loading with no config file present.
func TestLoadWithNoConfigFile(t *testing.T) {
	resetViper()

	tmpDir := t.TempDir()
	originalWd, _ := os.Getwd()
	defer func() { _ = os.Chdir(originalWd) }()

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}

	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Defaults must apply
	if cfg.Sort.Rounds != DefaultConfig().Sort.Rounds {
		t.Errorf("expected default rounds %d, got %d", DefaultConfig().Sort.Rounds, cfg.Sort.Rounds)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %s", cfg.LogLevel)
	}
}

// TestLoadWithFile tests loading from an explicit config file.
func TestLoadWithFile(t *testing.T) {
	resetViper()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "lapbench.yaml")
	content := []byte("log_level: debug\nsort:\n  rounds: 3\n  runs: 7\n")
	if err := os.WriteFile(configPath, content, 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := NewLoader().LoadWithFile(configPath)
	if err != nil {
		t.Fatalf("LoadWithFile() failed: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.LogLevel)
	}
	if cfg.Sort.Rounds != 3 {
		t.Errorf("expected rounds 3, got %d", cfg.Sort.Rounds)
	}
	if cfg.Sort.Runs != 7 {
		t.Errorf("expected runs 7, got %d", cfg.Sort.Runs)
	}
	// Unset keys keep their defaults
	if cfg.Sort.MaxValue != 1000 {
		t.Errorf("expected default max value 1000, got %d", cfg.Sort.MaxValue)
	}
}

// TestLoadWithMissingFile tests that an explicit missing file is an error.
func TestLoadWithMissingFile(t *testing.T) {
	resetViper()

	_, err := NewLoader().LoadWithFile("/nonexistent/lapbench.yaml")
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

// TestLoadWithInvalidValues tests that validation rejects bad config files.
func TestLoadWithInvalidValues(t *testing.T) {
	resetViper()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "lapbench.yaml")
	if err := os.WriteFile(configPath, []byte("sort:\n  runs: 0\n"), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := NewLoader().LoadWithFile(configPath)
	if err == nil {
		t.Fatal("expected validation error for runs: 0")
	}
}
