package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupCLITestEnv isolates the command from the developer's real home
// directory and provides a placeholder API key.
func setupCLITestEnv(t *testing.T) string {
	t.Helper()

	home := filepath.Join(t.TempDir(), "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", home)
	t.Setenv("GEMINI_API_KEY", "test")
	return home
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func requireContains(t *testing.T, output, fragment string) {
	t.Helper()
	if !strings.Contains(output, fragment) {
		t.Fatalf("expected output to contain %q, got:\n%s", fragment, output)
	}
}
