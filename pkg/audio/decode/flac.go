// ABOUTME: FLAC audio decoder
// ABOUTME: Decodes FLAC files to int32 samples using mewkiz/flac
package decode

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/orao-retro/oraotap/pkg/audio"
)

// FLACDecoder decodes FLAC audio
type FLACDecoder struct{}

// NewFLAC creates a new FLAC decoder
func NewFLAC() Decoder {
	return &FLACDecoder{}
}

// Decode converts a complete FLAC file to interleaved int32 samples
func (d *FLACDecoder) Decode(data []byte) (*audio.Buffer, error) {
	stream, err := flac.New(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode FLAC: %w", err)
	}
	defer stream.Close()

	info := stream.Info
	channels := int(info.NChannels)
	bitDepth := int(info.BitsPerSample)

	samples := make([]int32, 0, int(info.NSamples)*channels)
	for {
		frame, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse FLAC frame: %w", err)
		}

		for i := 0; i < int(frame.BlockSize); i++ {
			for ch := 0; ch < channels; ch++ {
				v := int(frame.Subframes[ch].Samples[i])
				samples = append(samples, audio.SampleFromDepth(v, bitDepth))
			}
		}
	}

	return &audio.Buffer{
		Samples: samples,
		Format: audio.Format{
			Codec:      "flac",
			SampleRate: int(info.SampleRate),
			Channels:   channels,
			BitDepth:   bitDepth,
		},
	}, nil
}

// Close releases decoder resources
func (d *FLACDecoder) Close() error {
	return nil
}
