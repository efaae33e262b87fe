// Package common provides shared configuration, logging, and version
// utilities for the Crelate MCP server.
package common

import (
	"fmt"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for the Crelate MCP server.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Crelate CrelateConfig `toml:"crelate"`
	Logging LoggingConfig `toml:"logging"`
}

// ServerConfig holds MCP server settings.
type ServerConfig struct {
	Name string `toml:"name"`
	Port string `toml:"port"`
}

// CrelateConfig holds upstream Crelate API configuration.
type CrelateConfig struct {
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
	Timeout string `toml:"timeout"`
}

// GetTimeout parses and returns the request timeout duration.
func (c *CrelateConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string   `toml:"level"`
	Format     string   `toml:"format"`
	Outputs    []string `toml:"outputs"`
	FilePath   string   `toml:"file_path"`
	MaxSizeMB  int      `toml:"max_size_mb"`
	MaxBackups int      `toml:"max_backups"`
}

// NewDefaultConfig returns a Config with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "Crelate-MCP",
			Port: "4280",
		},
		Crelate: CrelateConfig{
			BaseURL: "https://app.crelate.com/api3",
			Timeout: "30s",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			Outputs:    []string{"console", "file"},
			FilePath:   "logs/crelate-mcp.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Missing files are skipped; later files override earlier ones.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if key := os.Getenv("CRELATE_API_KEY"); key != "" {
		config.Crelate.APIKey = key
	}

	if base := os.Getenv("CRELATE_API_BASE_URL"); base != "" {
		config.Crelate.BaseURL = base
	}

	if port := os.Getenv("CRELATE_MCP_PORT"); port != "" {
		config.Server.Port = port
	}

	if level := os.Getenv("CRELATE_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// Validate checks that the configuration is usable. The API key is required:
// no tool call can succeed without it, so its absence is a startup failure
// rather than a per-call one.
func (c *Config) Validate() error {
	if c.Crelate.APIKey == "" {
		return fmt.Errorf("crelate API key is required: set CRELATE_API_KEY or [crelate] api_key in config")
	}
	if c.Crelate.BaseURL == "" {
		return fmt.Errorf("crelate base URL must not be empty")
	}
	return nil
}
