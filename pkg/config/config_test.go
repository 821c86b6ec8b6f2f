package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.App.Name != "doorflow" {
		t.Errorf("unexpected app name %q", cfg.App.Name)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("unexpected port %d", cfg.Server.Port)
	}
	if cfg.Redis.Enabled {
		t.Error("redis should be disabled by default")
	}
	if cfg.Catalyst.CreatePath != "/event" {
		t.Errorf("unexpected create path %q", cfg.Catalyst.CreatePath)
	}
	if cfg.Catalyst.DefaultCapacity != 120 {
		t.Errorf("unexpected default capacity %d", cfg.Catalyst.DefaultCapacity)
	}
	if !cfg.Sync.Enabled || cfg.Sync.Interval != 60*time.Second {
		t.Errorf("unexpected sync settings: %+v", cfg.Sync)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SYNC_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("env override ignored, got port %d", cfg.Server.Port)
	}
	if cfg.Sync.Enabled {
		t.Error("env override ignored for sync.enabled")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			App:      AppConfig{Name: "doorflow"},
			Server:   ServerConfig{Port: 8080},
			Catalyst: CatalystConfig{BaseURL: "https://example.com"},
			Sync:     SyncConfig{Enabled: true, Interval: 30 * time.Second},
		}
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := valid()
	cfg.Server.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for port 0")
	}

	cfg = valid()
	cfg.Catalyst.BaseURL = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing base URL")
	}

	cfg = valid()
	cfg.Sync.Interval = 100 * time.Millisecond
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for sub-second sync interval")
	}
}
