// ABOUTME: Headerless PCM decoder
// ABOUTME: Decodes raw 16-bit and 24-bit little-endian PCM to int32 samples
package decode

import (
	"encoding/binary"
	"fmt"

	"github.com/orao-retro/oraotap/pkg/audio"
)

// PCMDecoder decodes raw PCM with a caller-supplied format
type PCMDecoder struct {
	format audio.Format
}

// NewPCM creates a new PCM decoder
func NewPCM(format audio.Format) (Decoder, error) {
	if format.Codec != "pcm" {
		return nil, fmt.Errorf("invalid codec for PCM decoder: %s", format.Codec)
	}

	if format.BitDepth != 16 && format.BitDepth != 24 {
		return nil, fmt.Errorf("unsupported bit depth: %d (supported: 16, 24)", format.BitDepth)
	}

	if format.Channels < 1 {
		format.Channels = 1
	}

	return &PCMDecoder{
		format: format,
	}, nil
}

// Decode converts PCM bytes to int32 samples
func (d *PCMDecoder) Decode(data []byte) (*audio.Buffer, error) {
	var samples []int32
	if d.format.BitDepth == 24 {
		// 24-bit PCM: 3 bytes per sample
		numSamples := len(data) / 3
		samples = make([]int32, numSamples)
		for i := 0; i < numSamples; i++ {
			b := [3]byte{data[i*3], data[i*3+1], data[i*3+2]}
			samples[i] = audio.SampleFrom24Bit(b)
		}
	} else {
		// 16-bit PCM: 2 bytes per sample
		numSamples := len(data) / 2
		samples = make([]int32, numSamples)
		for i := 0; i < numSamples; i++ {
			sample16 := int16(binary.LittleEndian.Uint16(data[i*2:]))
			samples[i] = audio.SampleFromInt16(sample16)
		}
	}

	// drop a trailing partial frame
	samples = samples[:len(samples)-len(samples)%d.format.Channels]

	return &audio.Buffer{Samples: samples, Format: d.format}, nil
}

// Close releases resources
func (d *PCMDecoder) Close() error {
	return nil
}
