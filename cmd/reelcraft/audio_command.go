package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"reelcraft/internal/fileutil"
)

func newAudioCommand(ctx *commandContext) *cobra.Command {
	var (
		outputPath string
		voice      string
	)

	cmd := &cobra.Command{
		Use:   "audio <text-file>",
		Short: "Generate narration audio from a text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			speaker, _, _, err := ctx.components()
			if err != nil {
				return err
			}

			textPath := args[0]
			target := outputPath
			if target == "" {
				target = filepath.Join(cfg.Paths.OutputDir, cfg.Project.Name+"_audio.wav")
			}
			if err := fileutil.EnsureDir(filepath.Dir(target)); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			written, err := speaker.Generate(cmd.Context(), textPath, target, firstNonEmpty(voice, cfg.TTS.Voice))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", written)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination WAV path")
	cmd.Flags().StringVar(&voice, "voice", "", "Prebuilt voice for narration (see `reelcraft voices`)")
	return cmd
}
