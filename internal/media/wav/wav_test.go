package wav

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestParseMIMEParams(t *testing.T) {
	cases := []struct {
		mime string
		want Params
	}{
		{"audio/L16;codec=pcm;rate=24000", Params{SampleRate: 24000, BitsPerSample: 16, Channels: 1}},
		{"audio/L24;rate=48000", Params{SampleRate: 48000, BitsPerSample: 24, Channels: 1}},
		{"audio/L16;rate=", Params{SampleRate: 24000, BitsPerSample: 16, Channels: 1}},
		{"audio/ogg", Params{SampleRate: 24000, BitsPerSample: 16, Channels: 1}},
		{"", Params{SampleRate: 24000, BitsPerSample: 16, Channels: 1}},
	}
	for _, tc := range cases {
		if got := ParseMIMEParams(tc.mime); got != tc.want {
			t.Fatalf("ParseMIMEParams(%q) = %+v, want %+v", tc.mime, got, tc.want)
		}
	}
}

func TestIsWAV(t *testing.T) {
	if !IsWAV("audio/wav") || !IsWAV("audio/x-wav;rate=24000") {
		t.Fatal("expected wav mime types to be recognized")
	}
	if IsWAV("audio/L16;rate=24000") {
		t.Fatal("PCM mime type misclassified as wav")
	}
}

func TestFromPCMHeader(t *testing.T) {
	pcm := bytes.Repeat([]byte{0x01, 0x02}, 100)
	data, err := FromPCM(pcm, Params{SampleRate: 24000, BitsPerSample: 16, Channels: 1})
	if err != nil {
		t.Fatalf("FromPCM: %v", err)
	}
	if len(data) != 44+len(pcm) {
		t.Fatalf("unexpected container size %d", len(data))
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Fatalf("bad container magic %q %q", data[0:4], data[8:12])
	}
	if got := binary.LittleEndian.Uint32(data[4:8]); got != uint32(36+len(pcm)) {
		t.Fatalf("bad riff chunk size %d", got)
	}
	if got := binary.LittleEndian.Uint16(data[22:24]); got != 1 {
		t.Fatalf("expected mono, got %d channels", got)
	}
	if got := binary.LittleEndian.Uint32(data[24:28]); got != 24000 {
		t.Fatalf("bad sample rate %d", got)
	}
	if got := binary.LittleEndian.Uint32(data[28:32]); got != 48000 {
		t.Fatalf("bad byte rate %d", got)
	}
	if got := binary.LittleEndian.Uint16(data[32:34]); got != 2 {
		t.Fatalf("bad block align %d", got)
	}
	if got := binary.LittleEndian.Uint32(data[40:44]); got != uint32(len(pcm)) {
		t.Fatalf("bad data size %d", got)
	}
	if !bytes.Equal(data[44:], pcm) {
		t.Fatal("payload mismatch")
	}
}

func TestFromPCMRejectsBadParams(t *testing.T) {
	if _, err := FromPCM(nil, Params{SampleRate: 0, BitsPerSample: 16}); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
	if _, err := FromPCM(nil, Params{SampleRate: 24000, BitsPerSample: 12}); err == nil {
		t.Fatal("expected error for non-byte-aligned bits")
	}
}
