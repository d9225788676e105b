// ABOUTME: WAV container decoder
// ABOUTME: Decodes integer PCM and IEEE float WAV files to int32 samples using go-audio
package decode

import (
	"bytes"
	"fmt"
	"math"

	"github.com/go-audio/wav"
	"github.com/orao-retro/oraotap/pkg/audio"
)

// fmt chunk format codes
const (
	wavFormatPCM        = 1
	wavFormatFloat      = 3
	wavFormatExtensible = 0xFFFE
)

// WAVDecoder decodes RIFF/WAVE files
type WAVDecoder struct{}

// NewWAV creates a new WAV decoder
func NewWAV() Decoder {
	return &WAVDecoder{}
}

// Decode converts a complete WAV file to int32 samples
func (d *WAVDecoder) Decode(data []byte) (*audio.Buffer, error) {
	decoder := wav.NewDecoder(bytes.NewReader(data))
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file")
	}

	// go-audio skips the extensible subformat GUID, so 0xFFFE is read as
	// integer PCM. A 32-bit float payload still keeps its sign that way.
	isFloat := false
	switch decoder.WavAudioFormat {
	case wavFormatPCM, wavFormatExtensible:
	case wavFormatFloat:
		if decoder.BitDepth != 32 {
			return nil, fmt.Errorf("%w: %d-bit float WAV (only 32-bit)", ErrUnsupported, decoder.BitDepth)
		}
		isFloat = true
	default:
		return nil, fmt.Errorf("%w: WAV encoding %d", ErrUnsupported, decoder.WavAudioFormat)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read WAV samples: %w", err)
	}

	bitDepth := int(decoder.BitDepth)
	samples := make([]int32, len(buf.Data))
	for i, v := range buf.Data {
		switch {
		case isFloat:
			samples[i] = sampleFromFloat(math.Float32frombits(uint32(int32(v))))
		case bitDepth == 8:
			// 8-bit WAV is unsigned
			samples[i] = audio.SampleFromDepth(v-128, bitDepth)
		default:
			samples[i] = audio.SampleFromDepth(v, bitDepth)
		}
	}

	return &audio.Buffer{
		Samples: samples,
		Format: audio.Format{
			Codec:      "wav",
			SampleRate: int(decoder.SampleRate),
			Channels:   int(decoder.NumChans),
			BitDepth:   bitDepth,
		},
	}, nil
}

// sampleFromFloat scales a [-1, 1] float sample to the 24-bit range,
// clipping anything outside it. Samples too small to scale keep their sign.
func sampleFromFloat(f float32) int32 {
	switch {
	case math.IsNaN(float64(f)):
		return 0
	case f >= 1:
		return audio.Max24Bit
	case f <= -1:
		return audio.Min24Bit
	}
	s := int32(float64(f) * audio.Max24Bit)
	switch {
	case s == 0 && f > 0:
		return 1
	case s == 0 && f < 0:
		return -1
	}
	return s
}

// Close releases resources
func (d *WAVDecoder) Close() error {
	return nil
}
