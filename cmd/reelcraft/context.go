package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"reelcraft/internal/config"
	"reelcraft/internal/logging"
	"reelcraft/internal/services/gemini"
	"reelcraft/internal/speech"
	"reelcraft/internal/subtitles"
	"reelcraft/internal/video"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

// components constructs the pipeline stages sharing one API client.
func (c *commandContext) components() (*speech.Generator, *subtitles.Generator, *video.Composer, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, nil, nil, err
	}

	client := gemini.NewClient(cfg.TTS.APIKey, gemini.WithBaseURL(cfg.TTS.BaseURL))
	speaker := speech.NewGenerator(client, speech.Options{
		Model:       cfg.TTS.Model,
		Instruction: cfg.TTS.Instruction,
	}, logger)
	transcriber := subtitles.NewGenerator(client, cfg.Transcription.Model, logger)
	composer := video.NewComposer(video.Options{
		FFmpegBinary:  cfg.Video.FFmpegBinary,
		FFprobeBinary: cfg.Video.FFprobeBinary,
		FontSize:      cfg.Video.FontSize,
		MarginV:       cfg.Video.MarginV,
		AudioBitrate:  cfg.Video.AudioBitrate,
		WorkDir:       cfg.Paths.WorkDir,
	}, logger)
	return speaker, transcriber, composer, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
