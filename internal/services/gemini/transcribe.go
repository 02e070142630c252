package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Segment is one timed text span returned by the transcription service.
// Start and End are seconds from the beginning of the audio.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// TranscribeRequest describes a single audio transcription call.
type TranscribeRequest struct {
	Model    string
	Audio    []byte
	MIMEType string
}

const transcribePrompt = `Transcribe the provided audio into timed segments.

Return a JSON array where each element has:
  "start": segment start time in seconds (number)
  "end":   segment end time in seconds (number)
  "text":  the transcribed speech for that span (string)

Rules:
- Keep each segment short: around 10-15 words, never more than 60 characters.
- Split long sentences across multiple segments with accurate timings.
- Segments must be ordered by start time and must not overlap.
- Describe non-speech sounds in parentheses, e.g. "(soft music)".
- Return only the JSON array, no other text.`

// TranscribeAudio submits audio bytes inline and returns timed segments.
// Segment boundaries and text are determined entirely by the service.
func (c *Client) TranscribeAudio(ctx context.Context, req TranscribeRequest) ([]Segment, error) {
	if len(req.Audio) == 0 {
		return nil, errors.New("gemini transcribe: audio payload required")
	}
	mimeType := strings.TrimSpace(req.MIMEType)
	if mimeType == "" {
		mimeType = "audio/wav"
	}

	request := generateRequest{
		Contents: []content{{
			Role: "user",
			Parts: []part{
				{Text: transcribePrompt},
				{InlineData: &inlineData{
					MIMEType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(req.Audio),
				}},
			},
		}},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
		},
	}

	response, err := c.generateContent(ctx, req.Model, request)
	if err != nil {
		return nil, err
	}

	var payload strings.Builder
	for _, candidatePart := range response.Candidates[0].Content.Parts {
		payload.WriteString(candidatePart.Text)
	}
	return parseSegments(payload.String())
}

func parseSegments(raw string) ([]Segment, error) {
	cleaned := stripCodeFence(raw)
	if cleaned == "" {
		return nil, errors.New("gemini transcribe: empty response")
	}
	var segments []Segment
	if err := json.Unmarshal([]byte(cleaned), &segments); err != nil {
		return nil, fmt.Errorf("gemini transcribe: parse segments: %w", err)
	}
	return segments, nil
}

// stripCodeFence removes a surrounding markdown code fence that some model
// versions emit despite the JSON response MIME type.
func stripCodeFence(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	return strings.TrimSpace(cleaned)
}
