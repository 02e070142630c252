package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"reelcraft/internal/fileutil"
	"reelcraft/internal/media/ffprobe"
	"reelcraft/internal/subtitles"
)

func newSubtitlesCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subtitles",
		Short: "Subtitle generation and track utilities",
	}

	cmd.AddCommand(newSubtitlesGenerateCommand(ctx))
	cmd.AddCommand(newSubtitlesValidateCommand(ctx))
	cmd.AddCommand(newSubtitlesMergeCommand(ctx))
	return cmd
}

func newSubtitlesGenerateCommand(ctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "generate <audio-file>",
		Short: "Transcribe an audio file into a timed SRT track",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			_, transcriber, _, err := ctx.components()
			if err != nil {
				return err
			}

			target := outputPath
			if target == "" {
				target = filepath.Join(cfg.Paths.OutputDir, cfg.Project.Name+"_subtitles.srt")
			}
			if err := fileutil.EnsureDir(filepath.Dir(target)); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			written, err := transcriber.Generate(cmd.Context(), args[0], target)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", written)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination SRT path")
	return cmd
}

func newSubtitlesValidateCommand(ctx *commandContext) *cobra.Command {
	var mediaPath string

	cmd := &cobra.Command{
		Use:   "validate <srt-file>",
		Short: "Check a subtitle track for timing problems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			var mediaDuration time.Duration
			if mediaPath != "" {
				probed, err := ffprobe.Inspect(cmd.Context(), cfg.Video.FFprobeBinary, mediaPath)
				if err != nil {
					return fmt.Errorf("probe media %q: %w", mediaPath, err)
				}
				if probed.AudioStreamCount() == 0 {
					return fmt.Errorf("media %q has no audio stream", mediaPath)
				}
				mediaDuration = time.Duration(probed.DurationSeconds() * float64(time.Second))
			}

			issues := subtitles.Validate(args[0], mediaDuration)
			out := cmd.OutOrStdout()
			if len(issues) == 0 {
				fmt.Fprintln(out, "Subtitle track OK")
				return nil
			}
			for _, issue := range issues {
				fmt.Fprintln(out, issue)
			}
			return fmt.Errorf("%d issue(s) found in %s", len(issues), args[0])
		},
	}

	cmd.Flags().StringVar(&mediaPath, "media", "", "Audio or video file to compare track duration against")
	return cmd
}

func newSubtitlesMergeCommand(ctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "merge <srt=audio>...",
		Short: "Concatenate subtitle tracks, offsetting each by its audio duration",
		Long: `Merge concatenates subtitle tracks into one continuous track. Each argument
pairs a subtitle file with its audio segment, as SRT=AUDIO or SRT=SECONDS;
the audio duration (probed with ffprobe) becomes the offset applied to every
following part.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if outputPath == "" {
				return fmt.Errorf("--output is required")
			}

			parts := make([]subtitles.MergePart, 0, len(args))
			for _, arg := range args {
				srtPath, source, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("invalid part %q: expected SRT=AUDIO or SRT=SECONDS", arg)
				}
				duration, err := partDuration(cmd, cfg.Video.FFprobeBinary, source)
				if err != nil {
					return fmt.Errorf("part %q: %w", arg, err)
				}
				parts = append(parts, subtitles.MergePart{SubtitlePath: srtPath, Duration: duration})
			}

			if err := fileutil.EnsureDir(filepath.Dir(outputPath)); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
			count, err := subtitles.Merge(parts, outputPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s with %d cues from %d parts\n", outputPath, count, len(parts))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination SRT path")
	return cmd
}

func partDuration(cmd *cobra.Command, ffprobeBinary, source string) (time.Duration, error) {
	if seconds, err := strconv.ParseFloat(source, 64); err == nil {
		if seconds <= 0 {
			return 0, fmt.Errorf("duration must be positive, got %v", seconds)
		}
		return secondsToDuration(seconds), nil
	}
	probed, err := ffprobe.Inspect(cmd.Context(), ffprobeBinary, source)
	if err != nil {
		return 0, fmt.Errorf("probe %q: %w", source, err)
	}
	duration := time.Duration(probed.DurationSeconds() * float64(time.Second))
	if duration <= 0 {
		return 0, fmt.Errorf("media %q has no duration", source)
	}
	return duration, nil
}
