package speech

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"reelcraft/internal/logging"
	"reelcraft/internal/services"
	"reelcraft/internal/services/gemini"
)

type fakeSynthesizer struct {
	result  gemini.SpeechResult
	err     error
	lastReq gemini.SpeechRequest
	calls   int
}

func (f *fakeSynthesizer) SynthesizeSpeech(_ context.Context, req gemini.SpeechRequest) (gemini.SpeechResult, error) {
	f.calls++
	f.lastReq = req
	return f.result, f.err
}

func writeText(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGenerateWrapsPCMInWAV(t *testing.T) {
	pcm := bytes.Repeat([]byte{0x01}, 64)
	synth := &fakeSynthesizer{result: gemini.SpeechResult{
		Audio:    pcm,
		MIMEType: "audio/L16;codec=pcm;rate=24000",
	}}
	generator := NewGenerator(synth, Options{Model: "tts", Instruction: "read calmly"}, logging.NewNop())

	output := filepath.Join(t.TempDir(), "nested", "audio.wav")
	got, err := generator.Generate(context.Background(), writeText(t, "Hello world."), output, "Gacrux")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != output {
		t.Fatalf("unexpected path %q", got)
	}
	if synth.lastReq.Voice != "Gacrux" || synth.lastReq.Text != "Hello world." {
		t.Fatalf("unexpected request %+v", synth.lastReq)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 44+len(pcm) {
		t.Fatalf("expected wav container, got %d bytes", len(data))
	}
	if string(data[:4]) != "RIFF" {
		t.Fatalf("output is not a wav container: %q", data[:4])
	}
}

func TestGenerateKeepsWAVPayload(t *testing.T) {
	payload := append([]byte("RIFF"), bytes.Repeat([]byte{0}, 60)...)
	synth := &fakeSynthesizer{result: gemini.SpeechResult{Audio: payload, MIMEType: "audio/wav"}}
	generator := NewGenerator(synth, Options{Model: "tts"}, logging.NewNop())

	output := filepath.Join(t.TempDir(), "audio.wav")
	if _, err := generator.Generate(context.Background(), writeText(t, "hi"), output, "Kore"); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, payload) {
		t.Fatal("wav payload should be written unchanged")
	}
}

func TestGenerateMissingTextIsFileAccess(t *testing.T) {
	synth := &fakeSynthesizer{}
	generator := NewGenerator(synth, Options{Model: "tts"}, logging.NewNop())

	_, err := generator.Generate(context.Background(), filepath.Join(t.TempDir(), "nope.txt"), filepath.Join(t.TempDir(), "a.wav"), "Gacrux")
	if !errors.Is(err, services.ErrFileAccess) {
		t.Fatalf("expected file access error, got %v", err)
	}
	if synth.calls != 0 {
		t.Fatal("service must not be called for missing input")
	}
}

func TestGenerateEmptyTextRejected(t *testing.T) {
	generator := NewGenerator(&fakeSynthesizer{}, Options{Model: "tts"}, logging.NewNop())
	_, err := generator.Generate(context.Background(), writeText(t, "   \n"), filepath.Join(t.TempDir(), "a.wav"), "Gacrux")
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGenerateServiceFailureNotRetried(t *testing.T) {
	synth := &fakeSynthesizer{err: errors.New("auth failed")}
	generator := NewGenerator(synth, Options{Model: "tts"}, logging.NewNop())

	output := filepath.Join(t.TempDir(), "a.wav")
	_, err := generator.Generate(context.Background(), writeText(t, "hi"), output, "Gacrux")
	if !errors.Is(err, services.ErrExternalService) {
		t.Fatalf("expected external service error, got %v", err)
	}
	if synth.calls != 1 {
		t.Fatalf("expected exactly one attempt, got %d", synth.calls)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Fatal("no output should exist after failure")
	}
}

func TestGenerateEmptyAudioIsServiceError(t *testing.T) {
	synth := &fakeSynthesizer{result: gemini.SpeechResult{MIMEType: "audio/L16;rate=24000"}}
	generator := NewGenerator(synth, Options{Model: "tts"}, logging.NewNop())
	_, err := generator.Generate(context.Background(), writeText(t, "hi"), filepath.Join(t.TempDir(), "a.wav"), "Gacrux")
	if !errors.Is(err, services.ErrExternalService) {
		t.Fatalf("expected external service error, got %v", err)
	}
}
