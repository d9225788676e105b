// ABOUTME: Tests for the headerless PCM encoder
// ABOUTME: Checks tape-level byte layout and a pulse round trip through raw PCM
package encode

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/orao-retro/oraotap/pkg/audio"
	"github.com/orao-retro/oraotap/pkg/audio/decode"
	"github.com/orao-retro/oraotap/pkg/pulse"
	"github.com/orao-retro/oraotap/pkg/tap"
)

func TestNewPCMRejects(t *testing.T) {
	tests := []struct {
		name        string
		format      audio.Format
		errContains string
	}{
		{"wav codec", audio.Format{Codec: "wav", SampleRate: 44100, Channels: 1, BitDepth: 16}, "invalid codec"},
		{"8-bit", audio.Format{Codec: "pcm", SampleRate: 44100, Channels: 1, BitDepth: 8}, "unsupported bit depth"},
		{"32-bit", audio.Format{Codec: "pcm", SampleRate: 44100, Channels: 1, BitDepth: 32}, "unsupported bit depth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoder, err := NewPCM(tt.format)
			if err == nil || !strings.Contains(err.Error(), tt.errContains) {
				t.Fatalf("NewPCM() error = %v, want error containing %q", err, tt.errContains)
			}
			if encoder != nil {
				t.Error("expected nil encoder on error")
			}
		})
	}
}

func TestPCMBytesTapeLevels(t *testing.T) {
	amp := pulse.DefaultConfig().Amplitude
	samples := []int32{-amp, amp, 0}

	tests := []struct {
		bitDepth int
		expected []byte
	}{
		{16, []byte{0x00, 0xA0, 0x00, 0x60, 0x00, 0x00}},
		{24, []byte{0x00, 0x00, 0xA0, 0x00, 0x00, 0x60, 0x00, 0x00, 0x00}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d-bit", tt.bitDepth), func(t *testing.T) {
			encoder, err := NewPCM(audio.Format{Codec: "pcm", SampleRate: 44100, Channels: 1, BitDepth: tt.bitDepth})
			if err != nil {
				t.Fatalf("NewPCM() failed: %v", err)
			}
			defer encoder.Close()

			if got := encoder.(*PCMEncoder).Bytes(samples); !bytes.Equal(got, tt.expected) {
				t.Errorf("Bytes() = % x, want % x", got, tt.expected)
			}
		})
	}
}

func TestPCMPulseRoundTrip(t *testing.T) {
	payload := []byte("ORAO\x00\xff")

	for _, bitDepth := range []int{16, 24} {
		for _, format := range []tap.Format{tap.New, tap.Old} {
			t.Run(fmt.Sprintf("%s %d-bit", format, bitDepth), func(t *testing.T) {
				enc, err := pulse.NewEncoder(format, pulse.DefaultConfig())
				if err != nil {
					t.Fatalf("NewEncoder() failed: %v", err)
				}
				raw := audio.Format{Codec: "pcm", SampleRate: 44100, Channels: 1, BitDepth: bitDepth}

				encoder, err := ForPath("tape.raw", raw)
				if err != nil {
					t.Fatalf("ForPath() failed: %v", err)
				}
				path := filepath.Join(t.TempDir(), "tape.raw")
				f, err := os.Create(path)
				if err != nil {
					t.Fatalf("failed to create output: %v", err)
				}
				buf := &audio.Buffer{Samples: enc.Encode(payload), Format: raw}
				if err := encoder.Encode(f, buf); err != nil {
					t.Fatalf("Encode() failed: %v", err)
				}
				f.Close()

				data, err := os.ReadFile(path)
				if err != nil {
					t.Fatalf("failed to read output: %v", err)
				}
				if want := len(buf.Samples) * bitDepth / 8; len(data) != want {
					t.Fatalf("wrote %d bytes, want %d", len(data), want)
				}

				decoder, err := decode.NewPCM(raw)
				if err != nil {
					t.Fatalf("decode.NewPCM() failed: %v", err)
				}
				back, err := decoder.Decode(data)
				if err != nil {
					t.Fatalf("Decode() failed: %v", err)
				}

				dec, err := pulse.NewDecoder(format, pulse.DefaultConfig())
				if err != nil {
					t.Fatalf("NewDecoder() failed: %v", err)
				}
				if got := dec.Decode(back.Samples); !bytes.Equal(got, payload) {
					t.Errorf("round trip = % x, want % x", got, payload)
				}
			})
		}
	}
}
