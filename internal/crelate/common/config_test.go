package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	if cfg.Server.Name != "Crelate-MCP" {
		t.Errorf("expected default server name, got %s", cfg.Server.Name)
	}
	if cfg.Server.Port != "4280" {
		t.Errorf("expected default port 4280, got %s", cfg.Server.Port)
	}
	if cfg.Crelate.BaseURL != "https://app.crelate.com/api3" {
		t.Errorf("expected production base URL, got %s", cfg.Crelate.BaseURL)
	}
	if cfg.Crelate.GetTimeout() != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.Crelate.GetTimeout())
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crelate-mcp.toml")
	content := `
[server]
name = "Crelate-Test"
port = "9999"

[crelate]
api_key = "file-key"
timeout = "10s"

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Name != "Crelate-Test" {
		t.Errorf("expected file value for name, got %s", cfg.Server.Name)
	}
	if cfg.Server.Port != "9999" {
		t.Errorf("expected file value for port, got %s", cfg.Server.Port)
	}
	if cfg.Crelate.APIKey != "file-key" {
		t.Errorf("expected file value for api_key, got %s", cfg.Crelate.APIKey)
	}
	if cfg.Crelate.GetTimeout() != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v", cfg.Crelate.GetTimeout())
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Logging.Level)
	}
	// Defaults survive for fields the file does not set.
	if cfg.Crelate.BaseURL != "https://app.crelate.com/api3" {
		t.Errorf("expected default base URL to survive, got %s", cfg.Crelate.BaseURL)
	}
}

func TestLoadConfigSkipsMissingFile(t *testing.T) {
	cfg, err := LoadConfig("does-not-exist.toml")
	if err != nil {
		t.Fatalf("missing file should be skipped, got error: %v", err)
	}
	if cfg.Server.Port != "4280" {
		t.Errorf("expected defaults when file missing, got port %s", cfg.Server.Port)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CRELATE_API_KEY", "env-key")
	t.Setenv("CRELATE_API_BASE_URL", "http://localhost:8080/api3")
	t.Setenv("CRELATE_MCP_PORT", "5555")
	t.Setenv("CRELATE_LOG_LEVEL", "warn")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Crelate.APIKey != "env-key" {
		t.Errorf("expected env api_key, got %s", cfg.Crelate.APIKey)
	}
	if cfg.Crelate.BaseURL != "http://localhost:8080/api3" {
		t.Errorf("expected env base URL, got %s", cfg.Crelate.BaseURL)
	}
	if cfg.Server.Port != "5555" {
		t.Errorf("expected env port, got %s", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected env log level, got %s", cfg.Logging.Level)
	}
}

func TestValidateRequiresAPIKey(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation failure without API key")
	}

	cfg.Crelate.APIKey = "some-key"
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}

	cfg.Crelate.BaseURL = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation failure with empty base URL")
	}
}

func TestGetTimeoutFallsBackOnBadValue(t *testing.T) {
	c := CrelateConfig{Timeout: "not-a-duration"}
	if c.GetTimeout() != 30*time.Second {
		t.Errorf("expected 30s fallback, got %v", c.GetTimeout())
	}
}
