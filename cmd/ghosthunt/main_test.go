package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hunt.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigFlagFile(t *testing.T) {
	t.Setenv("GHOSTHUNT_CONFIG", "")
	t.Setenv("GHOSTHUNT_HUNTERS", "6")
	path := writeConfig(t, "hunters = 2\nfear_max = 7\n")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Hunters != 2 || cfg.FearMax != 7 {
		t.Errorf("file not applied: %+v", cfg)
	}
	if os.Getenv("GHOSTHUNT_CONFIG") != "" {
		t.Errorf("config flag leaked into the environment")
	}
}

func TestLoadConfigFlagFileInvalid(t *testing.T) {
	t.Setenv("GHOSTHUNT_CONFIG", "")
	if _, err := loadConfig(writeConfig(t, "evidence_threshold = 2\n")); err == nil {
		t.Error("expected validation error")
	}
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}
