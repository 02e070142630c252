// Package testsupport provides fixtures shared by package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"reelcraft/internal/config"
)

// ConfigOption customizes the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test
// and a placeholder API key, then applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.TTS.APIKey = "test"
	cfg.Paths.OutputDir = filepath.Join(base, "output")
	cfg.Paths.WorkDir = filepath.Join(base, "work")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithVoice sets the synthesis voice on the test config.
func WithVoice(voice string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.TTS.Voice = voice
	}
}

// WithProjectName sets the project name on the test config.
func WithProjectName(name string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Project.Name = name
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.OutputDir)
}
