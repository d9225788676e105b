// ABOUTME: MP3 audio decoder
// ABOUTME: Decodes MP3 files to int32 samples using go-mp3
package decode

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hajimehoshi/go-mp3"
	"github.com/orao-retro/oraotap/pkg/audio"
)

// MP3Decoder decodes MP3 audio
type MP3Decoder struct{}

// NewMP3 creates a new MP3 decoder
func NewMP3() Decoder {
	return &MP3Decoder{}
}

// Decode converts a complete MP3 file to int32 samples.
// go-mp3 always produces 16-bit stereo.
func (d *MP3Decoder) Decode(data []byte) (*audio.Buffer, error) {
	decoder, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create mp3 decoder: %w", err)
	}

	pcm, err := io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("mp3 decode error: %w", err)
	}

	numSamples := len(pcm) / 2
	numSamples -= numSamples % 2
	samples := make([]int32, numSamples)
	for i := 0; i < numSamples; i++ {
		sample16 := int16(binary.LittleEndian.Uint16(pcm[i*2:]))
		samples[i] = audio.SampleFromInt16(sample16)
	}

	return &audio.Buffer{
		Samples: samples,
		Format: audio.Format{
			Codec:      "mp3",
			SampleRate: decoder.SampleRate(),
			Channels:   2,
			BitDepth:   16,
		},
	}, nil
}

// Close releases decoder resources
func (d *MP3Decoder) Close() error {
	return nil
}
