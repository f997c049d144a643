package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("Expected default model gpt-4o-mini, got %q", cfg.Model)
	}
	if cfg.SystemMessage != DefaultSystemMessage || cfg.SystemMessage == "" {
		t.Error("Expected default system message")
	}
	if !cfg.AppendClipboard() {
		t.Error("Expected clipboard augmentation to be enabled by default")
	}
	if cfg.APIKey != "" {
		t.Error("Expected no default API key")
	}
	if cfg.CompletionsURL() != "https://api.openai.com/v1/chat/completions" {
		t.Errorf("Unexpected completions URL %q", cfg.CompletionsURL())
	}
	if cfg.ModelsURL() != "https://api.openai.com/v1/models" {
		t.Errorf("Unexpected models URL %q", cfg.ModelsURL())
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoad_MergesFileOntoDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlData := "api_key: sk-file\nproject_id: proj-1\ndisable_clipboard: true\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(yamlData), 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIKey != "sk-file" {
		t.Errorf("Expected api key from file, got %q", cfg.APIKey)
	}
	if cfg.ProjectID != "proj-1" {
		t.Errorf("Expected project id from file, got %q", cfg.ProjectID)
	}
	if cfg.AppendClipboard() {
		t.Error("Expected clipboard augmentation to be disabled by file")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Expected log level debug, got %q", cfg.Log.Level)
	}
	// Unset fields keep their defaults
	if cfg.Model != DefaultModel {
		t.Errorf("Expected default model, got %q", cfg.Model)
	}
	if cfg.SystemMessage != DefaultSystemMessage {
		t.Error("Expected default system message to survive merge")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("api_key: [unterminated"), 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected parse error")
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := Default()
	cfg.APIKey = "sk-saved"
	cfg.Model = "gpt-4o"
	cfg.Log.Level = "debug"

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("Expected %+v, got %+v", cfg, loaded)
	}
}
