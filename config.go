// config.go loads assistant settings from an optional JSON file merged with
// environment overrides. Everything has a working default; only the Ollama
// host (resolved by the client itself) and the chosen models matter in
// practice.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the persisted assistant configuration.
type Config struct {
	TasksFile    string `json:"tasksFile"`    // schedule JSON file, default tasks.json
	IntentModel  string `json:"intentModel"`  // Ollama model for intent extraction
	SummaryModel string `json:"summaryModel"` // Ollama model for summaries
	ListenAddr   string `json:"listenAddr"`   // HTTP API bind address
	Language     string `json:"language"`     // TTS language code

	STT STTConfig `json:"stt,omitempty"`
	TTS TTSConfig `json:"tts,omitempty"`
}

// STTConfig points at an OpenAI-compatible transcription endpoint. Empty
// endpoint disables voice capture and the REPL falls back to typed input.
type STTConfig struct {
	Endpoint string `json:"endpoint,omitempty"`
	APIKey   string `json:"apiKey,omitempty"`
	Model    string `json:"model,omitempty"`
}

// TTSConfig points at an OpenAI-compatible speech endpoint. Empty endpoint
// disables spoken replies; responses are still printed.
type TTSConfig struct {
	Endpoint string `json:"endpoint,omitempty"`
	APIKey   string `json:"apiKey,omitempty"`
	Model    string `json:"model,omitempty"`
	Voice    string `json:"voice,omitempty"`
	Player   string `json:"player,omitempty"` // local playback command, e.g. "mpg123"
}

func defaultConfig() *Config {
	return &Config{
		TasksFile:    "tasks.json",
		IntentModel:  "llama3.1",
		SummaryModel: "llama3.1",
		ListenAddr:   ":8487",
		Language:     "en",
	}
}

// LoadConfig reads the config file if present, then applies environment
// overrides (PULSEVOX_TASKS_FILE, PULSEVOX_INTENT_MODEL,
// PULSEVOX_SUMMARY_MODEL, PULSEVOX_LISTEN_ADDR). A missing file is fine; a
// present-but-broken file is not.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv("PULSEVOX_TASKS_FILE"); v != "" {
		cfg.TasksFile = v
	}
	if v := os.Getenv("PULSEVOX_INTENT_MODEL"); v != "" {
		cfg.IntentModel = v
	}
	if v := os.Getenv("PULSEVOX_SUMMARY_MODEL"); v != "" {
		cfg.SummaryModel = v
	}
	if v := os.Getenv("PULSEVOX_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}

	if cfg.TasksFile == "" {
		return nil, fmt.Errorf("tasksFile must not be empty")
	}
	if dir := filepath.Dir(cfg.TasksFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir %s: %w", dir, err)
		}
	}
	return cfg, nil
}
