// ABOUTME: Encoder interface definition
// ABOUTME: Common interface for waveform container encoders
package encode

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/orao-retro/oraotap/pkg/audio"
)

// Encoder writes a complete waveform to a container
type Encoder interface {
	// Encode writes buf to w. The writer must support seeking so headers
	// can be finalized once the data size is known.
	Encode(w io.WriteSeeker, buf *audio.Buffer) error

	// Close releases encoder resources
	Close() error
}

// ForPath picks an encoder from the file extension
func ForPath(path string, format audio.Format) (Encoder, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".wav", ".wave":
		format.Codec = "wav"
		return NewWAV(format)
	case ".raw", ".pcm":
		format.Codec = "pcm"
		return NewPCM(format)
	default:
		return nil, fmt.Errorf("unsupported output format: %q (supported: .wav, .raw, .pcm)", ext)
	}
}

func validateBitDepth(bitDepth int) error {
	if bitDepth != 16 && bitDepth != 24 {
		return fmt.Errorf("unsupported bit depth: %d (supported: 16, 24)", bitDepth)
	}
	return nil
}
