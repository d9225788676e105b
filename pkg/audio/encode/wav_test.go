// ABOUTME: Unit tests for WAV encoder and container selection
// ABOUTME: Writes WAV files to a temp dir and reads them back with go-audio
package encode

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/orao-retro/oraotap/pkg/audio"
)

func TestNewWAV(t *testing.T) {
	tests := []struct {
		name    string
		format  audio.Format
		wantErr bool
	}{
		{"valid 16-bit", audio.Format{Codec: "wav", SampleRate: 44100, BitDepth: 16}, false},
		{"valid 24-bit", audio.Format{Codec: "wav", SampleRate: 48000, BitDepth: 24}, false},
		{"invalid codec", audio.Format{Codec: "pcm", SampleRate: 44100, BitDepth: 16}, true},
		{"unsupported bit depth", audio.Format{Codec: "wav", SampleRate: 44100, BitDepth: 8}, true},
		{"no sample rate", audio.Format{Codec: "wav", BitDepth: 16}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWAV(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewWAV() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestWAVEncoder_Encode(t *testing.T) {
	tests := []struct {
		name     string
		bitDepth int
	}{
		{"16-bit", 16},
		{"24-bit", 24},
	}

	samples := []int32{-24576 << 8, -24576 << 8, 24576 << 8, 24576 << 8, 0}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoder, err := NewWAV(audio.Format{Codec: "wav", SampleRate: 44100, BitDepth: tt.bitDepth})
			if err != nil {
				t.Fatalf("NewWAV() failed: %v", err)
			}
			defer encoder.Close()

			path := filepath.Join(t.TempDir(), "out.wav")
			f, err := os.Create(path)
			if err != nil {
				t.Fatalf("create failed: %v", err)
			}
			buf := &audio.Buffer{Samples: samples, Format: audio.Format{Channels: 1}}
			if err := encoder.Encode(f, buf); err != nil {
				t.Fatalf("Encode() failed: %v", err)
			}
			if err := f.Close(); err != nil {
				t.Fatalf("close failed: %v", err)
			}

			in, err := os.Open(path)
			if err != nil {
				t.Fatalf("open failed: %v", err)
			}
			defer in.Close()

			dec := wav.NewDecoder(in)
			if !dec.IsValidFile() {
				t.Fatal("written file is not a valid WAV")
			}
			pcm, err := dec.FullPCMBuffer()
			if err != nil {
				t.Fatalf("FullPCMBuffer() failed: %v", err)
			}

			if int(dec.SampleRate) != 44100 || int(dec.NumChans) != 1 || int(dec.BitDepth) != tt.bitDepth {
				t.Errorf("unexpected header: %d Hz, %d ch, %d bit", dec.SampleRate, dec.NumChans, dec.BitDepth)
			}
			if len(pcm.Data) != len(samples) {
				t.Fatalf("got %d samples, want %d", len(pcm.Data), len(samples))
			}
			for i, s := range samples {
				want := audio.SampleToDepth(s, tt.bitDepth)
				if pcm.Data[i] != want {
					t.Errorf("sample %d = %d, want %d", i, pcm.Data[i], want)
				}
			}
		})
	}
}

func TestForPath(t *testing.T) {
	format := audio.Format{SampleRate: 44100, Channels: 1, BitDepth: 16}

	if enc, err := ForPath("out.wav", format); err != nil {
		t.Errorf("ForPath(.wav) error = %v", err)
	} else if _, ok := enc.(*WAVEncoder); !ok {
		t.Errorf("ForPath(.wav) = %T", enc)
	}

	if enc, err := ForPath("out.RAW", format); err != nil {
		t.Errorf("ForPath(.raw) error = %v", err)
	} else if _, ok := enc.(*PCMEncoder); !ok {
		t.Errorf("ForPath(.raw) = %T", enc)
	}

	if _, err := ForPath("out.mp3", format); err == nil {
		t.Error("expected error for .mp3 output")
	}
}
