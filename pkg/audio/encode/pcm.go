// ABOUTME: Headerless PCM encoder
// ABOUTME: Encodes int32 samples to 16-bit or 24-bit little-endian PCM bytes
package encode

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/orao-retro/oraotap/pkg/audio"
)

// PCMEncoder encodes PCM audio
type PCMEncoder struct {
	bitDepth int
}

// NewPCM creates a new PCM encoder
func NewPCM(format audio.Format) (Encoder, error) {
	if format.Codec != "pcm" {
		return nil, fmt.Errorf("invalid codec for PCM encoder: %s", format.Codec)
	}

	if err := validateBitDepth(format.BitDepth); err != nil {
		return nil, err
	}

	return &PCMEncoder{
		bitDepth: format.BitDepth,
	}, nil
}

// Bytes converts int32 samples to PCM bytes
func (e *PCMEncoder) Bytes(samples []int32) []byte {
	if e.bitDepth == 24 {
		// 24-bit PCM: 3 bytes per sample
		output := make([]byte, len(samples)*3)
		for i, sample := range samples {
			bytes := audio.SampleTo24Bit(sample)
			output[i*3] = bytes[0]
			output[i*3+1] = bytes[1]
			output[i*3+2] = bytes[2]
		}
		return output
	}

	// 16-bit PCM: 2 bytes per sample
	output := make([]byte, len(samples)*2)
	for i, sample := range samples {
		sample16 := audio.SampleToInt16(sample)
		binary.LittleEndian.PutUint16(output[i*2:], uint16(sample16))
	}
	return output
}

// Encode writes the buffer as raw PCM
func (e *PCMEncoder) Encode(w io.WriteSeeker, buf *audio.Buffer) error {
	if _, err := w.Write(e.Bytes(buf.Samples)); err != nil {
		return fmt.Errorf("failed to write PCM data: %w", err)
	}
	return nil
}

// Close releases resources
func (e *PCMEncoder) Close() error {
	return nil
}
