// Package wav wraps raw PCM payloads in RIFF/WAV containers. The speech
// synthesis service returns headerless little-endian PCM described only by its
// MIME type, so the audio stage synthesizes the container locally.
package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// Params describes the PCM layout of a raw audio payload.
type Params struct {
	SampleRate    int
	BitsPerSample int
	Channels      int
}

const (
	defaultSampleRate    = 24000
	defaultBitsPerSample = 16
)

// ParseMIMEParams extracts PCM parameters from an audio MIME type such as
// "audio/L16;codec=pcm;rate=24000". Unparseable parameters fall back to the
// service defaults (16-bit, 24 kHz, mono).
func ParseMIMEParams(mimeType string) Params {
	params := Params{
		SampleRate:    defaultSampleRate,
		BitsPerSample: defaultBitsPerSample,
		Channels:      1,
	}
	for _, part := range strings.Split(mimeType, ";") {
		part = strings.TrimSpace(part)
		switch {
		case strings.HasPrefix(strings.ToLower(part), "rate="):
			if rate, err := strconv.Atoi(part[len("rate="):]); err == nil && rate > 0 {
				params.SampleRate = rate
			}
		case strings.HasPrefix(part, "audio/L"):
			if bits, err := strconv.Atoi(part[len("audio/L"):]); err == nil && bits > 0 {
				params.BitsPerSample = bits
			}
		}
	}
	return params
}

// IsWAV reports whether the MIME type already names a RIFF/WAV container.
func IsWAV(mimeType string) bool {
	base := strings.TrimSpace(mimeType)
	if idx := strings.IndexByte(base, ';'); idx >= 0 {
		base = base[:idx]
	}
	base = strings.ToLower(strings.TrimSpace(base))
	return base == "audio/wav" || base == "audio/x-wav" || base == "audio/wave"
}

// FromPCM wraps raw PCM samples in a RIFF/WAV container.
// Layout reference: http://soundfile.sapp.org/doc/WaveFormat/
func FromPCM(pcm []byte, params Params) ([]byte, error) {
	if params.SampleRate <= 0 {
		return nil, fmt.Errorf("wav: sample rate must be positive, got %d", params.SampleRate)
	}
	if params.BitsPerSample <= 0 || params.BitsPerSample%8 != 0 {
		return nil, fmt.Errorf("wav: bits per sample must be a positive multiple of 8, got %d", params.BitsPerSample)
	}
	channels := params.Channels
	if channels <= 0 {
		channels = 1
	}

	bytesPerSample := params.BitsPerSample / 8
	blockAlign := channels * bytesPerSample
	byteRate := params.SampleRate * blockAlign
	dataSize := len(pcm)

	buf := bytes.NewBuffer(make([]byte, 0, 44+dataSize))
	buf.WriteString("RIFF")
	writeUint32(buf, uint32(36+dataSize))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	writeUint32(buf, 16) // PCM fmt chunk size
	writeUint16(buf, 1)  // PCM format
	writeUint16(buf, uint16(channels))
	writeUint32(buf, uint32(params.SampleRate))
	writeUint32(buf, uint32(byteRate))
	writeUint16(buf, uint16(blockAlign))
	writeUint16(buf, uint16(params.BitsPerSample))
	buf.WriteString("data")
	writeUint32(buf, uint32(dataSize))
	buf.Write(pcm)
	return buf.Bytes(), nil
}

func writeUint16(buf *bytes.Buffer, v uint16) {
	var scratch [2]byte
	binary.LittleEndian.PutUint16(scratch[:], v)
	buf.Write(scratch[:])
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var scratch [4]byte
	binary.LittleEndian.PutUint32(scratch[:], v)
	buf.Write(scratch[:])
}
