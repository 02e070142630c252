package subtitles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Cue is a single timed caption entry.
type Cue struct {
	Index int
	Start time.Duration
	End   time.Duration
	Text  string
}

// ParseSRTFile reads and parses an SRT file.
func ParseSRTFile(path string) ([]Cue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read srt: %w", err)
	}
	return ParseSRT(strings.NewReader(string(data)))
}

// ParseSRT parses index-numbered SRT content. An empty input yields an empty
// track. Malformed blocks are an error.
func ParseSRT(r io.Reader) ([]Cue, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read srt: %w", err)
	}
	content := strings.TrimSpace(strings.ReplaceAll(string(data), "\r\n", "\n"))
	if content == "" {
		return nil, nil
	}

	var cues []Cue
	for _, block := range splitBlocks(content) {
		cue, err := parseBlock(block)
		if err != nil {
			return nil, err
		}
		cues = append(cues, cue)
	}
	return cues, nil
}

func splitBlocks(content string) []string {
	raw := strings.Split(content, "\n\n")
	blocks := make([]string, 0, len(raw))
	for _, block := range raw {
		if strings.TrimSpace(block) != "" {
			blocks = append(blocks, strings.TrimSpace(block))
		}
	}
	return blocks
}

func parseBlock(block string) (Cue, error) {
	lines := strings.Split(block, "\n")
	if len(lines) < 2 {
		return Cue{}, fmt.Errorf("srt block %q: missing timestamp line", firstLine(block))
	}

	index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return Cue{}, fmt.Errorf("srt block %q: invalid index: %w", firstLine(block), err)
	}

	timing := lines[1]
	parts := strings.Split(timing, "-->")
	if len(parts) != 2 {
		return Cue{}, fmt.Errorf("srt block %d: invalid timing line %q", index, timing)
	}
	start, err := ParseTimestamp(parts[0])
	if err != nil {
		return Cue{}, fmt.Errorf("srt block %d: %w", index, err)
	}
	end, err := ParseTimestamp(parts[1])
	if err != nil {
		return Cue{}, fmt.Errorf("srt block %d: %w", index, err)
	}

	text := strings.TrimSpace(strings.Join(lines[2:], "\n"))
	return Cue{Index: index, Start: start, End: end, Text: text}, nil
}

func firstLine(block string) string {
	if idx := strings.IndexByte(block, '\n'); idx >= 0 {
		return block[:idx]
	}
	return block
}

// WriteSRTFile serializes cues to path, renumbering sequentially from 1.
func WriteSRTFile(path string, cues []Cue) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create srt: %w", err)
	}
	defer file.Close()

	if err := WriteSRT(file, cues); err != nil {
		return err
	}
	return file.Close()
}

// WriteSRT serializes cues in SRT format with millisecond timestamp precision.
// Caption text is NFC-normalized on the way out.
func WriteSRT(w io.Writer, cues []Cue) error {
	buf := bufio.NewWriter(w)
	for i, cue := range cues {
		fmt.Fprintf(buf, "%d\n", i+1)
		fmt.Fprintf(buf, "%s --> %s\n", FormatTimestamp(cue.Start), FormatTimestamp(cue.End))
		fmt.Fprintf(buf, "%s\n\n", norm.NFC.String(cue.Text))
	}
	return buf.Flush()
}

// ParseTimestamp converts "HH:MM:SS,mmm" to a duration. A period separator is
// normalized to the SRT comma.
func ParseTimestamp(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	value = strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	if hours < 0 || minutes < 0 || minutes > 59 || seconds < 0 || seconds > 59 || millis < 0 || millis > 999 {
		return 0, fmt.Errorf("timestamp out of range %q", value)
	}
	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond, nil
}

// FormatTimestamp renders a duration as "HH:MM:SS,mmm".
func FormatTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Millisecond)
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	d -= seconds * time.Second
	millis := d / time.Millisecond
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}
