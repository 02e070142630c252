package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"reelcraft/internal/fileutil"
	"reelcraft/internal/video"
)

func newVideoCommand(ctx *commandContext) *cobra.Command {
	var (
		imagePath    string
		subtitlePath string
		audioPath    string
		outputPath   string
		duration     float64
		dimensions   string
		fps          int
	)

	cmd := &cobra.Command{
		Use:   "video",
		Short: "Compose a video from an image, audio track, and subtitle track",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			_, _, composer, err := ctx.components()
			if err != nil {
				return err
			}

			width, height := cfg.Video.Width, cfg.Video.Height
			if dimensions != "" {
				if width, height, err = parseDimensions(dimensions); err != nil {
					return err
				}
			}
			frameRate := cfg.Video.FPS
			if fps > 0 {
				frameRate = fps
			}
			target := outputPath
			if target == "" {
				target = filepath.Join(cfg.Paths.OutputDir, cfg.Project.Name+"_final.mp4")
			}
			if err := fileutil.EnsureDir(filepath.Dir(target)); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			result, err := composer.Compose(cmd.Context(), video.Request{
				ImagePath:    imagePath,
				SubtitlePath: subtitlePath,
				AudioPath:    audioPath,
				OutputPath:   target,
				Width:        width,
				Height:       height,
				FPS:          frameRate,
				Duration:     secondsToDuration(duration),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s, %d cues)\n",
				result.OutputPath, result.Duration.Round(time.Millisecond), result.Cues)
			return nil
		},
	}

	cmd.Flags().StringVarP(&imagePath, "image", "m", "", "Background image")
	cmd.Flags().StringVarP(&subtitlePath, "subtitles", "s", "", "Subtitle track (SRT)")
	cmd.Flags().StringVarP(&audioPath, "audio", "a", "", "Audio track")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination MP4 path")
	cmd.Flags().Float64VarP(&duration, "duration", "d", 0, "Video duration in seconds (default: audio duration)")
	cmd.Flags().StringVar(&dimensions, "dimensions", "", "Video dimensions as WIDTHxHEIGHT")
	cmd.Flags().IntVar(&fps, "fps", 0, "Video frame rate")
	_ = cmd.MarkFlagRequired("image")
	_ = cmd.MarkFlagRequired("subtitles")
	_ = cmd.MarkFlagRequired("audio")
	return cmd
}
