package subtitles

import (
	"fmt"
	"time"
)

// durationSlack is the tolerated difference between the last cue end and the
// media duration before a track is flagged as misaligned.
const durationSlack = 10 * time.Second

// Validate checks an SRT file for format and timing issues.
// mediaDuration of zero skips the duration alignment check.
// Returns a list of issues found; an empty slice means validation passed.
func Validate(path string, mediaDuration time.Duration) []string {
	var issues []string

	cues, err := ParseSRTFile(path)
	if err != nil {
		issues = append(issues, fmt.Sprintf("parse_error: %v", err))
		return issues
	}
	if len(cues) == 0 {
		issues = append(issues, "empty_subtitle_file")
		return issues
	}

	var lastStart, lastEnd time.Duration
	for i, cue := range cues {
		if cue.End < cue.Start {
			issues = append(issues, fmt.Sprintf("cue %d: end before start", i+1))
		}
		if i > 0 && cue.Start < lastStart {
			issues = append(issues, fmt.Sprintf("cue %d: starts before previous cue", i+1))
		}
		lastStart = cue.Start
		if cue.End > lastEnd {
			lastEnd = cue.End
		}
	}

	if mediaDuration > 0 {
		delta := lastEnd - mediaDuration
		if delta < 0 {
			delta = -delta
		}
		if delta > durationSlack {
			issues = append(issues, fmt.Sprintf("duration_mismatch: delta=%.1fs", delta.Seconds()))
		}
	}

	return issues
}
