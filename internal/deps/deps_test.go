package deps

import (
	"os"
	"path/filepath"
	"testing"

	"reelcraft/internal/testsupport"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	if err := os.WriteFile(present, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}

	results := CheckBinaries([]Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Unset", Command: "  "},
	})
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	if !results[0].Available {
		t.Fatalf("expected stub binary to be available, got %#v", results[0])
	}
	if results[1].Available || results[1].Detail == "" {
		t.Fatalf("expected missing binary to be unavailable with detail, got %#v", results[1])
	}
	if results[2].Available || results[2].Detail != "command not configured" {
		t.Fatalf("expected unset command to be reported, got %#v", results[2])
	}
}

func TestRequirementsFollowConfig(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Video.FFmpegBinary = "/opt/ffmpeg/bin/ffmpeg"

	reqs := Requirements(cfg)
	if len(reqs) != 2 {
		t.Fatalf("expected 2 requirements, got %d", len(reqs))
	}
	if reqs[0].Command != "/opt/ffmpeg/bin/ffmpeg" {
		t.Fatalf("expected configured ffmpeg binary, got %q", reqs[0].Command)
	}
	if reqs[1].Name != "ffprobe" {
		t.Fatalf("expected ffprobe requirement, got %q", reqs[1].Name)
	}
}
