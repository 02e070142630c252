package subtitles

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// MergePart pairs a subtitle track with the duration of the audio segment it
// belongs to. Parts are concatenated in order; each part's cues are shifted by
// the accumulated duration of the parts before it.
type MergePart struct {
	SubtitlePath string
	Duration     time.Duration
}

// Merge concatenates subtitle tracks into one continuous track and writes it
// to outputPath. A missing or unparseable part leaves a silent gap of its
// duration instead of failing the merge. Cue ends are clamped to their part's
// duration so one track cannot bleed into the next. Returns the number of
// cues written.
func Merge(parts []MergePart, outputPath string) (int, error) {
	if len(parts) == 0 {
		return 0, errors.New("merge: at least one part required")
	}

	var merged []Cue
	var offset time.Duration
	for _, part := range parts {
		if part.Duration <= 0 {
			return 0, fmt.Errorf("merge: part %q has no duration", part.SubtitlePath)
		}
		cues, err := loadPart(part)
		if err == nil {
			for _, cue := range cues {
				cue.Start += offset
				cue.End += offset
				merged = append(merged, cue)
			}
		}
		offset += part.Duration
	}

	if err := WriteSRTFile(outputPath, merged); err != nil {
		return 0, err
	}
	return len(merged), nil
}

func loadPart(part MergePart) ([]Cue, error) {
	if _, err := os.Stat(part.SubtitlePath); err != nil {
		return nil, err
	}
	cues, err := ParseSRTFile(part.SubtitlePath)
	if err != nil {
		return nil, err
	}
	bounded := make([]Cue, 0, len(cues))
	for _, cue := range cues {
		if cue.Start >= part.Duration {
			continue
		}
		if cue.End > part.Duration {
			cue.End = part.Duration
		}
		bounded = append(bounded, cue)
	}
	return bounded, nil
}
