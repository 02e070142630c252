package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"reelcraft/internal/fileutil"
	"reelcraft/internal/pipeline"
	"reelcraft/internal/services"
	"reelcraft/internal/textutil"
	"reelcraft/internal/video"
)

func newCreateCommand(ctx *commandContext) *cobra.Command {
	var (
		inputText   string
		imagePath   string
		outputDir   string
		projectName string
		voice       string
		duration    float64
		dimensions  string
		fps         int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Run the full pipeline: narrate, transcribe, and compose a video",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			speaker, transcriber, composer, err := ctx.components()
			if err != nil {
				return err
			}

			textPath := firstNonEmpty(inputText, cfg.Paths.SampleText)
			image := firstNonEmpty(imagePath, cfg.Paths.SampleImg)
			outDir := firstNonEmpty(outputDir, cfg.Paths.OutputDir)
			project := cfg.Project.Name
			if projectName != "" {
				project = textutil.SanitizeToken(projectName)
			}
			selectedVoice := firstNonEmpty(voice, cfg.TTS.Voice)

			if !fileutil.IsFile(textPath) {
				return services.Wrap(services.ErrFileAccess, "create", "input text", textPath+" does not exist", nil)
			}
			if !fileutil.IsFile(image) {
				return services.Wrap(services.ErrFileAccess, "create", "image", image+" does not exist", nil)
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

			if err := fileutil.EnsureDir(outDir); err != nil {
				return fmt.Errorf("create output directory %q: %w", outDir, err)
			}
			plan := pipeline.NewPlan(outDir, project)

			var composed video.Result
			stages := []pipeline.Stage{
				pipeline.NewStage("audio", func(ctx context.Context) error {
					_, err := speaker.Generate(ctx, textPath, plan.AudioPath, selectedVoice)
					return err
				}),
				pipeline.NewStage("subtitles", func(ctx context.Context) error {
					_, err := transcriber.Generate(ctx, plan.AudioPath, plan.SubtitlePath)
					return err
				}),
				pipeline.NewStage("video", func(ctx context.Context) error {
					composed, err = composer.Compose(ctx, video.Request{
						ImagePath:    image,
						SubtitlePath: plan.SubtitlePath,
						AudioPath:    plan.AudioPath,
						OutputPath:   plan.VideoPath,
						Width:        width,
						Height:       height,
						FPS:          frameRate,
						Duration:     secondsToDuration(duration),
					})
					return err
				}),
			}

			if err := pipeline.New(logger, stages...).Run(cmd.Context()); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Artifact", "Path"},
				[][]string{
					{"Audio", plan.AudioPath},
					{"Subtitles", plan.SubtitlePath},
					{"Video", plan.VideoPath},
				},
			))
			fmt.Fprintf(out, "Video duration %s with %d subtitle cues\n",
				composed.Duration.Round(time.Millisecond), composed.Cues)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputText, "input-text", "i", "", "Text file to narrate (default: paths.sample_text)")
	cmd.Flags().StringVarP(&imagePath, "image", "m", "", "Background image (default: paths.sample_image)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for generated artifacts (default: paths.output_dir)")
	cmd.Flags().StringVarP(&projectName, "project-name", "n", "", "Base name for generated files")
	cmd.Flags().StringVar(&voice, "voice", "", "Prebuilt voice for narration (see `reelcraft voices`)")
	cmd.Flags().Float64VarP(&duration, "duration", "d", 0, "Video duration in seconds (default: audio duration)")
	cmd.Flags().StringVar(&dimensions, "dimensions", "", "Video dimensions as WIDTHxHEIGHT")
	cmd.Flags().IntVar(&fps, "fps", 0, "Video frame rate")
	return cmd
}
