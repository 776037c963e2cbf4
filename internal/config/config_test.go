package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != ProviderGateway {
		t.Errorf("expected default provider %q, got %q", ProviderGateway, cfg.Provider)
	}
	if cfg.Quality != QualityNormal {
		t.Errorf("expected default quality %q, got %q", QualityNormal, cfg.Quality)
	}
	if cfg.MaxTokens != 8000 {
		t.Errorf("expected default max_tokens 8000, got %d", cfg.MaxTokens)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("expected default temperature 0.7, got %f", cfg.Temperature)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.OutputFile != "generated-website.html" {
		t.Errorf("expected default output_file 'generated-website.html', got %q", cfg.OutputFile)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.sitegen.yml")

	original := DefaultConfig()
	original.Provider = ProviderOpenAI
	original.Model = "gpt-4o"
	original.Quality = QualityMax
	original.MaxTokens = 4000
	original.Temperature = 0.3
	original.Server.Port = 9090

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Provider != original.Provider {
		t.Errorf("provider: got %q, want %q", loaded.Provider, original.Provider)
	}
	if loaded.Model != original.Model {
		t.Errorf("model: got %q, want %q", loaded.Model, original.Model)
	}
	if loaded.Quality != original.Quality {
		t.Errorf("quality: got %q, want %q", loaded.Quality, original.Quality)
	}
	if loaded.MaxTokens != original.MaxTokens {
		t.Errorf("max_tokens: got %d, want %d", loaded.MaxTokens, original.MaxTokens)
	}
	if loaded.Temperature != original.Temperature {
		t.Errorf("temperature: got %f, want %f", loaded.Temperature, original.Temperature)
	}
	if loaded.Server.Port != original.Server.Port {
		t.Errorf("server.port: got %d, want %d", loaded.Server.Port, original.Server.Port)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load of missing file should not fail: %v", err)
	}
	if cfg.Provider != ProviderGateway {
		t.Errorf("expected default provider, got %q", cfg.Provider)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty provider", func(c *Config) { c.Provider = "" }},
		{"unknown provider", func(c *Config) { c.Provider = "mystery" }},
		{"empty model", func(c *Config) { c.Model = "" }},
		{"unknown quality", func(c *Config) { c.Quality = "ultra" }},
		{"zero max_tokens", func(c *Config) { c.MaxTokens = 0 }},
		{"negative temperature", func(c *Config) { c.Temperature = -1 }},
		{"excessive temperature", func(c *Config) { c.Temperature = 3 }},
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"gateway without endpoint", func(c *Config) { c.Gateway.Endpoint = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	preset := GetPreset(ProviderOpenAI, QualityLite)
	if preset.Model != "gpt-4o-mini" {
		t.Errorf("expected gpt-4o-mini, got %q", preset.Model)
	}

	// Unknown combination falls back to the gateway normal preset.
	fallback := GetPreset("mystery", QualityNormal)
	if fallback.Model != "openrouter/anthropic/claude-sonnet-4" {
		t.Errorf("unexpected fallback model %q", fallback.Model)
	}
}

func TestAPIKeyEnvVar(t *testing.T) {
	if v := APIKeyEnvVar(ProviderGateway); v != "SITEGEN_GATEWAY_KEY" {
		t.Errorf("gateway env var = %q", v)
	}
	if v := APIKeyEnvVar(ProviderOllama); v != "" {
		t.Errorf("ollama should need no key, got %q", v)
	}
}
