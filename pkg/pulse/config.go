// ABOUTME: Pulse codec timing and amplitude parameters
// ABOUTME: Run widths, decode threshold and their validation
package pulse

import (
	"fmt"

	"github.com/orao-retro/oraotap/pkg/audio"
)

const (
	// ZeroWidth is the half-period of a 0 bit, in samples
	ZeroWidth = 9
	// OneWidth is the half-period of a 1 bit, in samples
	OneWidth = 17
	// Threshold is the shortest first half-period decoded as a 1 bit
	Threshold = 11
	// Amplitude16 is the encoder's square-wave magnitude on a 16-bit scale
	Amplitude16 = 24576
)

// Config holds the pulse codec parameters
type Config struct {
	ZeroWidth int
	OneWidth  int
	Threshold int
	Amplitude int32 // 24-bit range, see audio.SampleFromInt16
}

// DefaultConfig returns the Orao tape timing
func DefaultConfig() Config {
	return Config{
		ZeroWidth: ZeroWidth,
		OneWidth:  OneWidth,
		Threshold: Threshold,
		Amplitude: audio.SampleFromInt16(Amplitude16),
	}
}

// Validate checks that encoded widths decode back to the same bits.
// The threshold must lie strictly between the two widths.
func (c Config) Validate() error {
	if c.ZeroWidth < 1 {
		return fmt.Errorf("zero width must be positive, got %d", c.ZeroWidth)
	}
	if c.OneWidth <= c.ZeroWidth {
		return fmt.Errorf("one width (%d) must exceed zero width (%d)", c.OneWidth, c.ZeroWidth)
	}
	// runs after the first are counted one short, so the threshold is
	// compared against ZeroWidth-1 .. ZeroWidth and OneWidth-1 .. OneWidth
	if c.Threshold <= c.ZeroWidth || c.Threshold > c.OneWidth-1 {
		return fmt.Errorf("threshold %d must lie between zero width %d and one width %d",
			c.Threshold, c.ZeroWidth, c.OneWidth)
	}
	if c.Amplitude <= 0 || c.Amplitude > audio.Max24Bit {
		return fmt.Errorf("amplitude out of range: %d", c.Amplitude)
	}
	return nil
}
