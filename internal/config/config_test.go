package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"reelcraft/internal/services"
)

func TestLoadDefaultsWithEnvKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected missing config file")
	}
	if cfg.TTS.APIKey != "test-key" {
		t.Fatalf("expected env api key, got %q", cfg.TTS.APIKey)
	}
	if cfg.TTS.Voice != "Gacrux" {
		t.Fatalf("unexpected default voice %q", cfg.TTS.Voice)
	}
	if cfg.Video.Width != 1920 || cfg.Video.Height != 1080 || cfg.Video.FPS != 24 {
		t.Fatalf("unexpected video defaults %+v", cfg.Video)
	}
	if cfg.Project.Name != "complete_video" {
		t.Fatalf("unexpected project name %q", cfg.Project.Name)
	}
	if !filepath.IsAbs(cfg.Paths.OutputDir) {
		t.Fatalf("output dir not expanded: %q", cfg.Paths.OutputDir)
	}
}

func TestLoadParsesFileOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[tts]
api_key = "file-key"
voice = "Kore"

[video]
width = 1280
height = 720
fps = 30

[logging]
format = "json"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved == "" {
		t.Fatal("expected config file to be found")
	}
	if cfg.TTS.APIKey != "file-key" || cfg.TTS.Voice != "Kore" {
		t.Fatalf("unexpected tts config %+v", cfg.TTS)
	}
	if cfg.Video.Width != 1280 || cfg.Video.Height != 720 || cfg.Video.FPS != 30 {
		t.Fatalf("unexpected video config %+v", cfg.Video)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("unexpected logging format %q", cfg.Logging.Format)
	}
}

func TestValidateRejectsMissingAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, _, _, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected validation error without api key")
	}
	if !strings.Contains(err.Error(), "tts.api_key") {
		t.Fatalf("unexpected error: %v", err)
	}
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if kind := services.Kind(err); kind != "ConfigurationError" {
		t.Fatalf("unexpected error kind %q", kind)
	}
}

func TestValidateRejectsBadVideoValues(t *testing.T) {
	cfg := Default()
	cfg.TTS.APIKey = "k"
	if err := cfg.normalize(); err != nil {
		t.Fatal(err)
	}
	cfg.Video.Width = -1
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for negative width")
	}
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	cfg.Video.Width = 1920
	cfg.Video.FPS = 0
	if err := cfg.Validate(); !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error for zero fps, got %v", err)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[tts]") {
		t.Fatal("sample config missing tts section")
	}
}

func TestExpandPathHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := ExpandPath("~/x")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, "x") {
		t.Fatalf("ExpandPath(~/x) = %q", got)
	}
}
