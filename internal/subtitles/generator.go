package subtitles

import (
	"context"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"reelcraft/internal/logging"
	"reelcraft/internal/services"
	"reelcraft/internal/services/gemini"
)

// Transcriber converts audio bytes into timed text segments.
type Transcriber interface {
	TranscribeAudio(ctx context.Context, req gemini.TranscribeRequest) ([]gemini.Segment, error)
}

// Generator produces SRT subtitle tracks from audio files.
type Generator struct {
	client Transcriber
	model  string
	logger *slog.Logger
}

// NewGenerator constructs a subtitle generator backed by a transcription service.
func NewGenerator(client Transcriber, model string, logger *slog.Logger) *Generator {
	return &Generator{
		client: client,
		model:  model,
		logger: logging.NewComponentLogger(logger, "subtitles"),
	}
}

const generatorStage = "subtitles"

// Generate transcribes audioPath and writes an SRT track to outputPath.
// Segment boundaries and text come entirely from the transcription service;
// this component only submits the request and serializes the result. A run
// that yields zero segments writes an empty track without error.
func (g *Generator) Generate(ctx context.Context, audioPath, outputPath string) (string, error) {
	audio, err := os.ReadFile(audioPath)
	if err != nil {
		return "", services.Wrap(services.ErrFileAccess, generatorStage, "read audio", audioPath, err)
	}

	g.logger.Info("transcribing audio",
		logging.String("audio", audioPath),
		logging.String("model", g.model),
		logging.Int("bytes", len(audio)))

	segments, err := g.client.TranscribeAudio(ctx, gemini.TranscribeRequest{
		Model:    g.model,
		Audio:    audio,
		MIMEType: audioMIMEType(audioPath),
	})
	if err != nil {
		return "", services.Wrap(services.ErrExternalService, generatorStage, "transcribe", audioPath, err)
	}

	cues := CuesFromSegments(segments)
	if len(cues) == 0 {
		g.logger.Warn("transcription returned no segments", logging.String("audio", audioPath))
	}

	if err := WriteSRTFile(outputPath, cues); err != nil {
		return "", services.Wrap(services.ErrFileAccess, generatorStage, "write srt", outputPath, err)
	}

	g.logger.Info("subtitles written",
		logging.String("output", outputPath),
		logging.Int("cues", len(cues)))
	return outputPath, nil
}

// CuesFromSegments converts service segments into a well-formed cue list:
// empty text is dropped, end is clamped to at least start, cues are ordered
// by start time, and indexes are renumbered from 1.
func CuesFromSegments(segments []gemini.Segment) []Cue {
	cues := make([]Cue, 0, len(segments))
	for _, segment := range segments {
		text := strings.TrimSpace(segment.Text)
		if text == "" {
			continue
		}
		start := secondsToDuration(segment.Start)
		end := secondsToDuration(segment.End)
		if start < 0 {
			start = 0
		}
		if end < start {
			end = start
		}
		cues = append(cues, Cue{Start: start, End: end, Text: text})
	}
	sort.SliceStable(cues, func(i, j int) bool { return cues[i].Start < cues[j].Start })
	for i := range cues {
		cues[i].Index = i + 1
	}
	return cues
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(math.Round(seconds*1000)) * time.Millisecond
}

func audioMIMEType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return "audio/mpeg"
	case ".ogg":
		return "audio/ogg"
	case ".flac":
		return "audio/flac"
	default:
		return "audio/wav"
	}
}
