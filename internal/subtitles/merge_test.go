package subtitles

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestMergeShiftsAndRenumbers(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "part1.srt")
	second := filepath.Join(dir, "part2.srt")
	if err := os.WriteFile(first, []byte("1\n00:00:00,000 --> 00:00:02,000\none\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(second, []byte("1\n00:00:01,000 --> 00:00:03,000\ntwo\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	output := filepath.Join(dir, "merged.srt")
	count, err := Merge([]MergePart{
		{SubtitlePath: first, Duration: 10 * time.Second},
		{SubtitlePath: second, Duration: 5 * time.Second},
	}, output)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 cues, got %d", count)
	}

	cues, err := ParseSRTFile(output)
	if err != nil {
		t.Fatalf("ParseSRTFile: %v", err)
	}
	if cues[0].Start != 0 || cues[0].Text != "one" {
		t.Fatalf("unexpected first cue %+v", cues[0])
	}
	if cues[1].Start != 11*time.Second || cues[1].End != 13*time.Second {
		t.Fatalf("second cue not shifted by first part duration: %+v", cues[1])
	}
	if cues[1].Index != 2 {
		t.Fatalf("cues not renumbered: %+v", cues[1])
	}
}

func TestMergeLeavesGapForMissingPart(t *testing.T) {
	dir := t.TempDir()
	second := filepath.Join(dir, "part2.srt")
	if err := os.WriteFile(second, []byte("1\n00:00:00,000 --> 00:00:01,000\nhello\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	output := filepath.Join(dir, "merged.srt")
	count, err := Merge([]MergePart{
		{SubtitlePath: filepath.Join(dir, "missing.srt"), Duration: 30 * time.Second},
		{SubtitlePath: second, Duration: 5 * time.Second},
	}, output)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 cue, got %d", count)
	}

	cues, err := ParseSRTFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if cues[0].Start != 30*time.Second {
		t.Fatalf("gap not preserved: %+v", cues[0])
	}
}

func TestMergeClampsToPartDuration(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "part1.srt")
	if err := os.WriteFile(first, []byte("1\n00:00:01,000 --> 00:00:20,000\nlong\n\n2\n00:00:30,000 --> 00:00:31,000\nbeyond\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	output := filepath.Join(dir, "merged.srt")
	count, err := Merge([]MergePart{{SubtitlePath: first, Duration: 10 * time.Second}}, output)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if count != 1 {
		t.Fatalf("cue beyond part duration should be dropped, got %d cues", count)
	}
	cues, err := ParseSRTFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if cues[0].End != 10*time.Second {
		t.Fatalf("cue end not clamped: %+v", cues[0])
	}
}

func TestMergeRejectsEmptyInput(t *testing.T) {
	if _, err := Merge(nil, filepath.Join(t.TempDir(), "out.srt")); err == nil {
		t.Fatal("expected error for empty part list")
	}
}
