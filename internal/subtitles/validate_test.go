package subtitles

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeSRT(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "track.srt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidateCleanTrack(t *testing.T) {
	path := writeSRT(t, "1\n00:00:00,000 --> 00:00:02,000\nhello\n\n2\n00:00:02,500 --> 00:00:04,000\nworld\n")
	if issues := Validate(path, 4*time.Second); len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
}

func TestValidateEmptyTrack(t *testing.T) {
	path := writeSRT(t, "")
	issues := Validate(path, 0)
	if len(issues) != 1 || issues[0] != "empty_subtitle_file" {
		t.Fatalf("unexpected issues %v", issues)
	}
}

func TestValidateOrderingIssues(t *testing.T) {
	path := writeSRT(t, "1\n00:00:05,000 --> 00:00:06,000\nlate\n\n2\n00:00:01,000 --> 00:00:00,500\nbackwards\n")
	issues := Validate(path, 0)
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %v", issues)
	}
}

func TestValidateDurationMismatch(t *testing.T) {
	path := writeSRT(t, "1\n00:00:00,000 --> 00:01:00,000\nlong\n")
	issues := Validate(path, 10*time.Second)
	if len(issues) != 1 {
		t.Fatalf("expected duration mismatch, got %v", issues)
	}
}

func TestValidateUnreadableFile(t *testing.T) {
	issues := Validate(filepath.Join(t.TempDir(), "missing.srt"), 0)
	if len(issues) != 1 {
		t.Fatalf("expected read issue, got %v", issues)
	}
}
