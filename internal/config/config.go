// Package config handles loading and parsing the application's configuration.
package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// Seed is a tweet inserted into the store before the server accepts traffic.
type Seed struct {
	Author  string `toml:"author"`
	Message string `toml:"message"`
}

// Config holds all configuration for the application.
// We use struct tags to explicitly map TOML keys to struct fields.
type Config struct {
	Host            string        `toml:"host"`
	Port            int           `toml:"port"`
	StaticDir       string        `toml:"static_dir"`       // Directory holding index.html and assets
	LogLevel        string        `toml:"log_level"`        // zerolog level name
	LogPretty       bool          `toml:"log_pretty"`       // Human readable console output
	MetricsAddr     string        `toml:"metrics_addr"`     // Empty disables the metrics listener
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"` // e.g. "10s"
	Seeds           []Seed        `toml:"seed"`
}

// DefaultSeeds are the tweets the store starts with when the config names none.
func DefaultSeeds() []Seed {
	return []Seed{
		{Author: "zig", Message: "Hello, world!"},
		{Author: "qwe", Message: "Hi !"},
	}
}

// New returns a new Config with default values.
func New() *Config {
	return &Config{
		Host:            "127.0.0.1",
		Port:            8080,
		StaticDir:       "static",
		LogLevel:        zerolog.InfoLevel.String(),
		MetricsAddr:     "",
		ShutdownTimeout: 10 * time.Second,
		Seeds:           DefaultSeeds(),
	}
}

// Load reads a configuration file from the given path and populates the Config struct.
// A [[seed]] list in the file replaces the default seeds; `seed = []` disables seeding.
func (c *Config) Load(path string) error {
	_, err := toml.DecodeFile(path, c)
	return err
}

// Validate reports the first setting that cannot be used to start the server.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.StaticDir == "" {
		return errors.New("static_dir must not be empty")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.ShutdownTimeout < 0 {
		return errors.New("shutdown_timeout must not be negative")
	}
	return nil
}

// Addr is the host:port the API server binds to.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
