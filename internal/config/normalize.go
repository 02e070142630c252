package config

import (
	"fmt"
	"os"
	"strings"

	"reelcraft/internal/textutil"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeTTS()
	c.normalizeTranscription()
	c.normalizeVideo()
	c.normalizeProject()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if c.Paths.WorkDir, err = expandPath(c.Paths.WorkDir); err != nil {
		return fmt.Errorf("paths.work_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if c.Paths.SampleText, err = expandPath(c.Paths.SampleText); err != nil {
		return fmt.Errorf("paths.sample_text: %w", err)
	}
	if c.Paths.SampleImg, err = expandPath(c.Paths.SampleImg); err != nil {
		return fmt.Errorf("paths.sample_image: %w", err)
	}
	return nil
}

func (c *Config) normalizeTTS() {
	// The API key is merged exactly once here; components receive it as an
	// explicit value and never consult the environment themselves.
	if c.TTS.APIKey == "" {
		if value, ok := os.LookupEnv("GEMINI_API_KEY"); ok {
			c.TTS.APIKey = strings.TrimSpace(value)
		}
	}
	c.TTS.APIKey = strings.TrimSpace(c.TTS.APIKey)
	c.TTS.BaseURL = strings.TrimRight(strings.TrimSpace(c.TTS.BaseURL), "/")
	if c.TTS.BaseURL == "" {
		c.TTS.BaseURL = defaultTTSBaseURL
	}
	c.TTS.Model = strings.TrimSpace(c.TTS.Model)
	if c.TTS.Model == "" {
		c.TTS.Model = defaultTTSModel
	}
	c.TTS.Voice = strings.TrimSpace(c.TTS.Voice)
	if c.TTS.Voice == "" {
		c.TTS.Voice = defaultTTSVoice
	}
	if strings.TrimSpace(c.TTS.Instruction) == "" {
		c.TTS.Instruction = defaultTTSInstruction
	}
}

func (c *Config) normalizeTranscription() {
	c.Transcription.Model = strings.TrimSpace(c.Transcription.Model)
	if c.Transcription.Model == "" {
		c.Transcription.Model = defaultTranscribeModel
	}
}

func (c *Config) normalizeVideo() {
	if c.Video.Width == 0 {
		c.Video.Width = defaultVideoWidth
	}
	if c.Video.Height == 0 {
		c.Video.Height = defaultVideoHeight
	}
	if c.Video.FPS == 0 {
		c.Video.FPS = defaultVideoFPS
	}
	if c.Video.FontSize == 0 {
		c.Video.FontSize = defaultFontSize
	}
	if c.Video.MarginV == 0 {
		c.Video.MarginV = defaultMarginV
	}
	c.Video.AudioBitrate = strings.TrimSpace(c.Video.AudioBitrate)
	if c.Video.AudioBitrate == "" {
		c.Video.AudioBitrate = defaultAudioBitrate
	}
	c.Video.FFmpegBinary = strings.TrimSpace(c.Video.FFmpegBinary)
	if c.Video.FFmpegBinary == "" {
		c.Video.FFmpegBinary = defaultFFmpegBinary
	}
	c.Video.FFprobeBinary = strings.TrimSpace(c.Video.FFprobeBinary)
	if c.Video.FFprobeBinary == "" {
		c.Video.FFprobeBinary = defaultFFprobeBinary
	}
}

func (c *Config) normalizeProject() {
	c.Project.Name = strings.TrimSpace(c.Project.Name)
	if c.Project.Name == "" {
		c.Project.Name = defaultProjectName
	}
	// Project names end up in artifact file names.
	c.Project.Name = textutil.SanitizeToken(c.Project.Name)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
