package video

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"reelcraft/internal/logging"
	"reelcraft/internal/media/ffprobe"
	"reelcraft/internal/services"
	"reelcraft/internal/subtitles"
)

// commandRunner executes an external command and returns its combined output.
type commandRunner func(ctx context.Context, name string, args ...string) (string, error)

// prober inspects a media file, normally via ffprobe.
type prober func(ctx context.Context, binary, path string) (ffprobe.Result, error)

// Options carries composition settings resolved from configuration.
type Options struct {
	FFmpegBinary  string
	FFprobeBinary string
	FontSize      int
	MarginV       int
	AudioBitrate  string
	WorkDir       string
}

// Request describes one composition job.
type Request struct {
	ImagePath    string
	SubtitlePath string
	AudioPath    string
	OutputPath   string
	Width        int
	Height       int
	FPS          int
	// Duration overrides the probed audio duration when positive.
	Duration time.Duration
}

// Result reports the outcome of a composition.
type Result struct {
	OutputPath string
	Duration   time.Duration
	Cues       int
}

// Composer renders still-image videos with subtitle overlays using ffmpeg.
type Composer struct {
	opts   Options
	logger *slog.Logger
	run    commandRunner
	probe  prober
}

// NewComposer constructs a video composer.
func NewComposer(opts Options, logger *slog.Logger) *Composer {
	if opts.FFmpegBinary == "" {
		opts.FFmpegBinary = "ffmpeg"
	}
	if opts.FFprobeBinary == "" {
		opts.FFprobeBinary = "ffprobe"
	}
	if opts.FontSize <= 0 {
		opts.FontSize = 28
	}
	if opts.AudioBitrate == "" {
		opts.AudioBitrate = "192k"
	}
	return &Composer{
		opts:   opts,
		logger: logging.NewComponentLogger(logger, "composer"),
		run:    defaultCommandRunner,
		probe:  ffprobe.Inspect,
	}
}

// WithCommandRunner injects a custom command runner (for testing).
func (c *Composer) WithCommandRunner(run commandRunner) {
	if c != nil && run != nil {
		c.run = run
	}
}

// WithProber injects a custom media prober (for testing).
func (c *Composer) WithProber(probe prober) {
	if c != nil && probe != nil {
		c.probe = probe
	}
}

const composerStage = "video"

// Compose renders the background image at the requested resolution, overlays
// subtitle text for the span of each cue, muxes the audio track, and writes an
// H.264 MP4 to req.OutputPath. Audio shorter than the output duration is
// padded with silence; longer audio is trimmed.
func (c *Composer) Compose(ctx context.Context, req Request) (Result, error) {
	var empty Result

	if req.Width <= 0 || req.Height <= 0 {
		return empty, services.Wrap(services.ErrValidation, composerStage, "dimensions", fmt.Sprintf("%dx%d", req.Width, req.Height), nil)
	}
	if req.FPS <= 0 {
		return empty, services.Wrap(services.ErrValidation, composerStage, "fps", strconv.Itoa(req.FPS), nil)
	}
	for _, input := range []struct{ label, path string }{
		{"image", req.ImagePath},
		{"subtitles", req.SubtitlePath},
		{"audio", req.AudioPath},
	} {
		if _, err := os.Stat(input.path); err != nil {
			return empty, services.Wrap(services.ErrFileAccess, composerStage, input.label, input.path, err)
		}
	}

	duration := req.Duration
	if duration <= 0 {
		probed, err := c.probe(ctx, c.opts.FFprobeBinary, req.AudioPath)
		if err != nil {
			return empty, services.Wrap(services.ErrFileAccess, composerStage, "probe audio", req.AudioPath, err)
		}
		if probed.AudioStreamCount() == 0 {
			return empty, services.Wrap(services.ErrFileAccess, composerStage, "probe audio", req.AudioPath+" has no audio stream", nil)
		}
		duration = time.Duration(probed.DurationSeconds() * float64(time.Second))
	}
	if duration <= 0 {
		return empty, services.Wrap(services.ErrValidation, composerStage, "duration", "output duration could not be determined", nil)
	}

	cues, err := subtitles.ParseSRTFile(req.SubtitlePath)
	if err != nil {
		return empty, services.Wrap(services.ErrParse, composerStage, "parse subtitles", req.SubtitlePath, err)
	}
	clipped := ClipCues(cues, duration)

	overlayPath := ""
	if len(clipped) > 0 {
		overlayPath, err = c.writeOverlayTrack(clipped)
		if err != nil {
			return empty, services.Wrap(services.ErrFileAccess, composerStage, "write overlay track", "", err)
		}
		defer os.Remove(overlayPath)
	}

	args := c.buildFFmpegArgs(req, overlayPath, duration)
	c.logger.Info("encoding video",
		logging.String("output", req.OutputPath),
		logging.String("resolution", fmt.Sprintf("%dx%d", req.Width, req.Height)),
		logging.Int("fps", req.FPS),
		logging.Duration("duration", duration),
		logging.Int("cues", len(clipped)))

	if output, err := c.run(ctx, c.opts.FFmpegBinary, args...); err != nil {
		return empty, services.Wrap(services.ErrEncoding, composerStage, "ffmpeg", tail(output), err)
	}

	return Result{OutputPath: req.OutputPath, Duration: duration, Cues: len(clipped)}, nil
}

// ClipCues bounds cues to [0, duration): entries entirely outside the range
// are dropped, partially outside entries are trimmed.
func ClipCues(cues []subtitles.Cue, duration time.Duration) []subtitles.Cue {
	clipped := make([]subtitles.Cue, 0, len(cues))
	for _, cue := range cues {
		if cue.End <= 0 || cue.Start >= duration {
			continue
		}
		if cue.Start < 0 {
			cue.Start = 0
		}
		if cue.End > duration {
			cue.End = duration
		}
		clipped = append(clipped, cue)
	}
	return clipped
}

func (c *Composer) writeOverlayTrack(cues []subtitles.Cue) (string, error) {
	dir := c.opts.WorkDir
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, "overlay-"+uuid.NewString()+".srt")
	if err := subtitles.WriteSRTFile(path, cues); err != nil {
		return "", err
	}
	return path, nil
}

func (c *Composer) buildFFmpegArgs(req Request, overlayPath string, duration time.Duration) []string {
	filter := fmt.Sprintf("scale=%d:%d:force_original_aspect_ratio=increase,crop=%d:%d",
		req.Width, req.Height, req.Width, req.Height)
	if overlayPath != "" {
		style := fmt.Sprintf("Alignment=2,FontSize=%d,PrimaryColour=&HFFFFFF&,OutlineColour=&H000000&,Outline=2,MarginV=%d",
			c.opts.FontSize, c.opts.MarginV)
		filter += fmt.Sprintf(",subtitles='%s':force_style='%s'", escapeFilterPath(overlayPath), style)
	}

	return []string{
		"-y",
		"-loop", "1",
		"-i", req.ImagePath,
		"-i", req.AudioPath,
		"-vf", filter,
		"-r", strconv.Itoa(req.FPS),
		"-t", fmt.Sprintf("%.3f", duration.Seconds()),
		"-c:v", "libx264",
		"-tune", "stillimage",
		"-pix_fmt", "yuv420p",
		"-c:a", "aac",
		"-b:a", c.opts.AudioBitrate,
		"-af", "apad",
		req.OutputPath,
	}
}

// escapeFilterPath escapes characters that are significant inside an ffmpeg
// filter argument.
func escapeFilterPath(path string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `'`, `\'`, `:`, `\:`)
	return replacer.Replace(path)
}

func defaultCommandRunner(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func tail(output string) string {
	output = strings.TrimSpace(output)
	if len(output) <= 400 {
		return output
	}
	return "..." + output[len(output)-400:]
}
