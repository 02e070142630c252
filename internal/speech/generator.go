package speech

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"reelcraft/internal/logging"
	"reelcraft/internal/media/wav"
	"reelcraft/internal/services"
	"reelcraft/internal/services/gemini"
)

// Synthesizer converts text into raw audio bytes.
type Synthesizer interface {
	SynthesizeSpeech(ctx context.Context, req gemini.SpeechRequest) (gemini.SpeechResult, error)
}

// Options carries the synthesis defaults resolved from configuration.
type Options struct {
	Model       string
	Instruction string
}

// Generator produces narrated WAV audio from text files.
type Generator struct {
	client Synthesizer
	opts   Options
	logger *slog.Logger
}

// NewGenerator constructs an audio generator backed by a TTS service.
func NewGenerator(client Synthesizer, opts Options, logger *slog.Logger) *Generator {
	return &Generator{
		client: client,
		opts:   opts,
		logger: logging.NewComponentLogger(logger, "speech"),
	}
}

const generatorStage = "audio"

// Generate reads the full text at textPath, submits it to the TTS service in
// one request, and writes a mono WAV file to outputPath. The voice identifier
// is validated only by the service. The output file is created or overwritten.
func (g *Generator) Generate(ctx context.Context, textPath, outputPath, voice string) (string, error) {
	data, err := os.ReadFile(textPath)
	if err != nil {
		return "", services.Wrap(services.ErrFileAccess, generatorStage, "read text", textPath, err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", services.Wrap(services.ErrValidation, generatorStage, "read text", "input text is empty: "+textPath, nil)
	}

	g.logger.Info("synthesizing speech",
		logging.String("text", textPath),
		logging.String("voice", voice),
		logging.String("model", g.opts.Model),
		logging.Int("chars", len(text)))

	result, err := g.client.SynthesizeSpeech(ctx, gemini.SpeechRequest{
		Model:       g.opts.Model,
		Voice:       voice,
		Instruction: g.opts.Instruction,
		Text:        text,
	})
	if err != nil {
		return "", services.Wrap(services.ErrExternalService, generatorStage, "synthesize", textPath, err)
	}
	if len(result.Audio) == 0 {
		return "", services.Wrap(services.ErrExternalService, generatorStage, "synthesize", "service returned no audio data", nil)
	}

	audio := result.Audio
	if !wav.IsWAV(result.MIMEType) {
		params := wav.ParseMIMEParams(result.MIMEType)
		if audio, err = wav.FromPCM(result.Audio, params); err != nil {
			return "", services.Wrap(services.ErrExternalService, generatorStage, "package audio", result.MIMEType, err)
		}
	}

	if dir := filepath.Dir(outputPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", services.Wrap(services.ErrFileAccess, generatorStage, "ensure output dir", dir, err)
		}
	}
	if err := os.WriteFile(outputPath, audio, 0o644); err != nil {
		return "", services.Wrap(services.ErrFileAccess, generatorStage, "write audio", outputPath, err)
	}

	g.logger.Info("audio written",
		logging.String("output", outputPath),
		logging.Int("bytes", len(audio)))
	return outputPath, nil
}
