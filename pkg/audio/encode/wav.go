// ABOUTME: WAV container encoder
// ABOUTME: Writes int32 samples as integer PCM WAV using go-audio
package encode

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/orao-retro/oraotap/pkg/audio"
)

const wavFormatPCM = 1

// WAVEncoder writes RIFF/WAVE files
type WAVEncoder struct {
	sampleRate int
	bitDepth   int
}

// NewWAV creates a new WAV encoder. Channel count is taken from each buffer.
func NewWAV(format audio.Format) (Encoder, error) {
	if format.Codec != "wav" {
		return nil, fmt.Errorf("invalid codec for WAV encoder: %s", format.Codec)
	}

	if err := validateBitDepth(format.BitDepth); err != nil {
		return nil, err
	}

	if format.SampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate: %d", format.SampleRate)
	}

	return &WAVEncoder{
		sampleRate: format.SampleRate,
		bitDepth:   format.BitDepth,
	}, nil
}

// Encode writes the buffer as a complete WAV file
func (e *WAVEncoder) Encode(w io.WriteSeeker, buf *audio.Buffer) error {
	channels := buf.Format.Channels
	if channels < 1 {
		channels = 1
	}

	data := make([]int, len(buf.Samples))
	for i, s := range buf.Samples {
		data[i] = audio.SampleToDepth(s, e.bitDepth)
	}

	enc := wav.NewEncoder(w, e.sampleRate, e.bitDepth, channels, wavFormatPCM)
	intBuf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  e.sampleRate,
		},
		Data:           data,
		SourceBitDepth: e.bitDepth,
	}

	if err := enc.Write(intBuf); err != nil {
		return fmt.Errorf("failed to write WAV data: %w", err)
	}

	// Close finalizes the RIFF sizes; it does not close w
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}

// Close releases resources
func (e *WAVEncoder) Close() error {
	return nil
}
