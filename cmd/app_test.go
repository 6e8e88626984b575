package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigMissingFileFallsBackToDefaults(t *testing.T) {
	old := *configFile
	defer func() { *configFile = old }()
	*configFile = filepath.Join(t.TempDir(), "no-such-config.json")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v, want defaults", err)
	}
	if cfg.Currency != "EUR" {
		t.Errorf("Currency = %q, want %q", cfg.Currency, "EUR")
	}
	if cfg.RequestDelay != time.Second {
		t.Errorf("RequestDelay = %v, want %v", cfg.RequestDelay, time.Second)
	}
}

func TestLoadConfigReadsFile(t *testing.T) {
	old := *configFile
	defer func() { *configFile = old }()

	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"steam_ids": ["76561198000000001"], "currency": "USD", "debug": true}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	*configFile = path

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if len(cfg.Accounts) != 1 || cfg.Accounts[0] != "76561198000000001" {
		t.Errorf("Accounts = %v, want one configured id", cfg.Accounts)
	}
	if cfg.Currency != "USD" {
		t.Errorf("Currency = %q, want %q", cfg.Currency, "USD")
	}
	if !cfg.Debug {
		t.Errorf("Debug = false, want true")
	}
}
