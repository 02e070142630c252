package gemini

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// SpeechRequest describes a single text-to-speech synthesis call.
type SpeechRequest struct {
	Model       string
	Voice       string
	Instruction string
	Text        string
}

// SpeechResult carries the decoded audio payload returned by the service.
type SpeechResult struct {
	Audio    []byte
	MIMEType string
}

// SynthesizeSpeech submits the full text in one request and returns the raw
// audio bytes. The service typically answers with headerless PCM described by
// a MIME type such as "audio/L16;codec=pcm;rate=24000".
func (c *Client) SynthesizeSpeech(ctx context.Context, req SpeechRequest) (SpeechResult, error) {
	var empty SpeechResult
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return empty, errors.New("gemini speech: text required")
	}
	voice := strings.TrimSpace(req.Voice)
	if voice == "" {
		return empty, errors.New("gemini speech: voice required")
	}

	parts := make([]part, 0, 2)
	if instruction := strings.TrimSpace(req.Instruction); instruction != "" {
		parts = append(parts, part{Text: instruction})
	}
	parts = append(parts, part{Text: text})

	temperature := 1.0
	request := generateRequest{
		Contents: []content{{Role: "user", Parts: parts}},
		GenerationConfig: &generationConfig{
			Temperature:        &temperature,
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &speechConfig{
				VoiceConfig: voiceConfig{
					PrebuiltVoiceConfig: prebuiltVoiceConfig{VoiceName: voice},
				},
			},
		},
	}

	response, err := c.generateContent(ctx, req.Model, request)
	if err != nil {
		return empty, err
	}

	for _, candidatePart := range response.Candidates[0].Content.Parts {
		if candidatePart.InlineData == nil || candidatePart.InlineData.Data == "" {
			continue
		}
		audio, err := base64.StdEncoding.DecodeString(candidatePart.InlineData.Data)
		if err != nil {
			return empty, fmt.Errorf("gemini speech: decode audio: %w", err)
		}
		return SpeechResult{Audio: audio, MIMEType: candidatePart.InlineData.MIMEType}, nil
	}
	return empty, errors.New("gemini speech: response contained no audio data")
}
