package config

import (
	"fmt"

	"reelcraft/internal/services"
)

// Validate ensures the configuration is usable. Failures carry the
// configuration error marker so callers can classify them.
func (c *Config) Validate() error {
	if err := c.validateTTS(); err != nil {
		return err
	}
	if err := c.validateVideo(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTTS() error {
	if c.TTS.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/reelcraft/config.toml"
		}
		message := fmt.Sprintf("tts.api_key is required. Set GEMINI_API_KEY env var or edit %s (create with 'reelcraft config init')", defaultPath)
		return services.Wrap(services.ErrConfiguration, "config", "validate", message, nil)
	}
	return nil
}

func (c *Config) validateVideo() error {
	if c.Video.Width <= 0 || c.Video.Height <= 0 {
		return services.Wrap(services.ErrConfiguration, "config", "validate", "video.width and video.height must be positive", nil)
	}
	if c.Video.FPS <= 0 {
		return services.Wrap(services.ErrConfiguration, "config", "validate", "video.fps must be positive", nil)
	}
	if c.Video.FontSize <= 0 {
		return services.Wrap(services.ErrConfiguration, "config", "validate", "video.font_size must be positive", nil)
	}
	if c.Video.MarginV < 0 {
		return services.Wrap(services.ErrConfiguration, "config", "validate", "video.margin_v must not be negative", nil)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		message := fmt.Sprintf("logging.format must be console or json, got %q", c.Logging.Format)
		return services.Wrap(services.ErrConfiguration, "config", "validate", message, nil)
	}
	return nil
}
