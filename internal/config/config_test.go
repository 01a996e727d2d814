// Package config_test contains the unit tests for the config package.
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := New()

	if cfg.Addr() != "127.0.0.1:8080" {
		t.Errorf("expected default addr '127.0.0.1:8080', got '%s'", cfg.Addr())
	}
	if len(cfg.Seeds) != 2 || cfg.Seeds[0].Author != "zig" || cfg.Seeds[1].Message != "Hi !" {
		t.Errorf("unexpected default seeds: %+v", cfg.Seeds)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected 10s shutdown timeout, got %s", cfg.ShutdownTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got: %v", err)
	}
}

func TestConfig_Load(t *testing.T) {
	// Create a temporary directory for our test config files
	tempDir := t.TempDir()

	// --- Test Case 1: Valid configuration file ---
	validToml := `
host = "0.0.0.0"
port = 9000
static_dir = "/srv/static"
log_level = "debug"
metrics_addr = ":9090"
shutdown_timeout = "3s"

[[seed]]
author = "alice"
message = "first"
`
	validPath := filepath.Join(tempDir, "valid.toml")
	if err := os.WriteFile(validPath, []byte(validToml), 0644); err != nil {
		t.Fatalf("failed to write valid config file: %v", err)
	}

	cfg := New()
	err := cfg.Load(validPath)
	if err != nil {
		t.Fatalf("expected no error loading valid config, but got: %v", err)
	}

	if cfg.Addr() != "0.0.0.0:9000" {
		t.Errorf("expected addr '0.0.0.0:9000', but got '%s'", cfg.Addr())
	}
	if cfg.StaticDir != "/srv/static" || cfg.LogLevel != "debug" || cfg.MetricsAddr != ":9090" {
		t.Errorf("string settings were not parsed correctly: %+v", cfg)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("expected shutdown timeout 3s, got %s", cfg.ShutdownTimeout)
	}
	if len(cfg.Seeds) != 1 || cfg.Seeds[0] != (Seed{Author: "alice", Message: "first"}) {
		t.Errorf("seeds were not parsed correctly: %+v", cfg.Seeds)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected loaded config to validate, got: %v", err)
	}

	// --- Test Case 2: Partial file keeps the defaults ---
	partialPath := filepath.Join(tempDir, "partial.toml")
	if err := os.WriteFile(partialPath, []byte(`port = 8081`), 0644); err != nil {
		t.Fatalf("failed to write partial config file: %v", err)
	}
	cfg2 := New()
	if err := cfg2.Load(partialPath); err != nil {
		t.Fatalf("expected no error loading partial config, but got: %v", err)
	}
	if cfg2.Host != "127.0.0.1" || cfg2.Port != 8081 || len(cfg2.Seeds) != 2 {
		t.Errorf("defaults were not preserved: %+v", cfg2)
	}

	// --- Test Case 3: Empty seed list disables seeding ---
	noSeedPath := filepath.Join(tempDir, "noseed.toml")
	if err := os.WriteFile(noSeedPath, []byte(`seed = []`), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	cfg3 := New()
	if err := cfg3.Load(noSeedPath); err != nil {
		t.Fatalf("expected no error, but got: %v", err)
	}
	if len(cfg3.Seeds) != 0 {
		t.Errorf("expected no seeds, got %+v", cfg3.Seeds)
	}

	// --- Test Case 4: File does not exist ---
	cfg4 := New()
	err = cfg4.Load(filepath.Join(tempDir, "nonexistent.toml"))
	if err == nil {
		t.Fatal("expected an error for non-existent file, but got none")
	}

	// --- Test Case 5: Invalid TOML format ---
	invalidToml := `host = 127.0.0.1` // Invalid: host should be a string
	invalidPath := filepath.Join(tempDir, "invalid.toml")
	if err := os.WriteFile(invalidPath, []byte(invalidToml), 0644); err != nil {
		t.Fatalf("failed to write invalid config file: %v", err)
	}

	cfg5 := New()
	err = cfg5.Load(invalidPath)
	if err == nil {
		t.Fatal("expected an error for invalid TOML, but got none")
	}
}

func TestConfig_Validate(t *testing.T) {
	cases := map[string]func(*Config){
		"port zero":        func(c *Config) { c.Port = 0 },
		"port too large":   func(c *Config) { c.Port = 70000 },
		"no static dir":    func(c *Config) { c.StaticDir = "" },
		"bad log level":    func(c *Config) { c.LogLevel = "loud" },
		"negative timeout": func(c *Config) { c.ShutdownTimeout = -time.Second },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := New()
			mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected a validation error")
			}
		})
	}
}
