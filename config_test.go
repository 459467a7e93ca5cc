package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.TasksFile != "tasks.json" {
		t.Fatalf("unexpected default tasks file: %q", cfg.TasksFile)
	}
	if cfg.IntentModel == "" || cfg.SummaryModel == "" {
		t.Fatal("model defaults must be set")
	}
	if cfg.ListenAddr == "" {
		t.Fatal("listen address default must be set")
	}
}

func TestLoadConfigFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	os.WriteFile(path, []byte(`{"intentModel": "qwen2.5", "listenAddr": ":9000"}`), 0o644)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.IntentModel != "qwen2.5" {
		t.Fatalf("file override lost: %q", cfg.IntentModel)
	}
	if cfg.ListenAddr != ":9000" {
		t.Fatalf("file override lost: %q", cfg.ListenAddr)
	}
	// untouched keys keep their defaults
	if cfg.TasksFile != "tasks.json" {
		t.Fatalf("default lost: %q", cfg.TasksFile)
	}
}

func TestLoadConfigEnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	os.WriteFile(path, []byte(`{"intentModel": "from-file"}`), 0o644)
	t.Setenv("PULSEVOX_INTENT_MODEL", "from-env")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.IntentModel != "from-env" {
		t.Fatalf("env override lost: %q", cfg.IntentModel)
	}
}

func TestLoadConfigBrokenFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	os.WriteFile(path, []byte("{broken"), 0o644)

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("present-but-broken config must fail startup")
	}
}

func TestLoadConfigCreatesDataDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PULSEVOX_TASKS_FILE", filepath.Join(dir, "data", "tasks.json"))

	if _, err := LoadConfig(filepath.Join(dir, "absent.json")); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "data")); err != nil {
		t.Fatalf("data dir not created: %v", err)
	}
}
