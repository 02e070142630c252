package config

const (
	defaultOutputDir       = "~/.local/share/reelcraft/results"
	defaultWorkDir         = "~/.local/share/reelcraft/work"
	defaultLogDir          = "~/.local/share/reelcraft/logs"
	defaultSampleText      = "content/sample.txt"
	defaultSampleImage     = "content/sample.jpg"
	defaultTTSBaseURL      = "https://generativelanguage.googleapis.com"
	defaultTTSModel        = "gemini-2.5-flash-preview-tts"
	defaultTTSVoice        = "Gacrux"
	defaultTTSInstruction  = "Read this text in a fluent, natural voice with a moderate, soothing pace. Pause naturally at commas and periods."
	defaultTranscribeModel = "gemini-2.5-flash"
	defaultVideoWidth      = 1920
	defaultVideoHeight     = 1080
	defaultVideoFPS        = 24
	defaultFontSize        = 28
	defaultMarginV         = 60
	defaultAudioBitrate    = "192k"
	defaultFFmpegBinary    = "ffmpeg"
	defaultFFprobeBinary   = "ffprobe"
	defaultProjectName     = "complete_video"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir:  defaultOutputDir,
			WorkDir:    defaultWorkDir,
			LogDir:     defaultLogDir,
			SampleText: defaultSampleText,
			SampleImg:  defaultSampleImage,
		},
		TTS: TTS{
			BaseURL:     defaultTTSBaseURL,
			Model:       defaultTTSModel,
			Voice:       defaultTTSVoice,
			Instruction: defaultTTSInstruction,
		},
		Transcription: Transcription{
			Model: defaultTranscribeModel,
		},
		Video: Video{
			Width:         defaultVideoWidth,
			Height:        defaultVideoHeight,
			FPS:           defaultVideoFPS,
			FontSize:      defaultFontSize,
			MarginV:       defaultMarginV,
			AudioBitrate:  defaultAudioBitrate,
			FFmpegBinary:  defaultFFmpegBinary,
			FFprobeBinary: defaultFFprobeBinary,
		},
		Project: Project{
			Name: defaultProjectName,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
