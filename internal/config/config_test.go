package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadAppliesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := `
[queue]
key = "custom:q"

[recognition]
language = "en-US"
max_chunk_seconds = 45.0
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Queue.Key != "custom:q" {
		t.Fatalf("queue key override lost: %q", cfg.Queue.Key)
	}
	if cfg.Recognition.MaxChunkSeconds != 45.0 {
		t.Fatalf("chunk override lost: %v", cfg.Recognition.MaxChunkSeconds)
	}
	if cfg.Recognition.Model != defaultModel {
		t.Fatalf("untouched default changed: %q", cfg.Recognition.Model)
	}
}

func TestLoadRejectsBadLanguage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[recognition]\nlanguage = \"not a tag\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "BCP-47") {
		t.Fatalf("expected language validation error, got %v", err)
	}
}

func TestLoadMissingExplicitPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}
	got := ExpandPath("~/x")
	if got != filepath.Join(home, "x") {
		t.Fatalf("unexpected expansion: %q", got)
	}
	if ExpandPath("/abs/path") != "/abs/path" {
		t.Fatal("absolute path should be unchanged")
	}
}
