// ABOUTME: Decoder interface definition
// ABOUTME: Common interface for waveform container decoders
package decode

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/orao-retro/oraotap/pkg/audio"
)

// ErrUnsupported is returned for containers or encodings that cannot be read
var ErrUnsupported = errors.New("unsupported audio format")

// Decoder reads a complete waveform container held in memory
type Decoder interface {
	// Decode converts container bytes to interleaved int32 samples (24-bit range)
	Decode(data []byte) (*audio.Buffer, error)

	// Close releases decoder resources
	Close() error
}

// ForPath picks a decoder from the file extension. raw describes headerless
// .raw/.pcm input, which carries no format of its own.
func ForPath(path string, raw audio.Format) (Decoder, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".wav", ".wave":
		return NewWAV(), nil
	case ".flac":
		return NewFLAC(), nil
	case ".mp3":
		return NewMP3(), nil
	case ".raw", ".pcm":
		raw.Codec = "pcm"
		return NewPCM(raw)
	default:
		return nil, fmt.Errorf("%w: %q (supported: .wav, .flac, .mp3, .raw, .pcm)", ErrUnsupported, ext)
	}
}
