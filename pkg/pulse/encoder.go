// ABOUTME: Square-wave pulse encoder
// ABOUTME: Turns tape payload bytes into a continuous pulse train
package pulse

import "github.com/orao-retro/oraotap/pkg/tap"

// Encoder emits one low run and one high run per bit. The run width
// (not the amplitude) carries the bit value.
type Encoder struct {
	format    tap.Format
	zeroWidth int
	oneWidth  int
	amplitude int32
}

// NewEncoder creates an encoder sending bits in the given format's arrival order
func NewEncoder(format tap.Format, cfg Config) (*Encoder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Encoder{
		format:    format,
		zeroWidth: cfg.ZeroWidth,
		oneWidth:  cfg.OneWidth,
		amplitude: cfg.Amplitude,
	}, nil
}

// Len returns the number of samples Encode produces for payload
func (e *Encoder) Len(payload []byte) int {
	n := 0
	for _, b := range payload {
		for i := 0; i < 8; i++ {
			n += 2 * e.width(e.format.Bit(b, i))
		}
	}
	return n
}

// Encode converts payload bytes (header excluded) into samples
func (e *Encoder) Encode(payload []byte) []int32 {
	out := make([]int32, 0, e.Len(payload))
	for _, b := range payload {
		for i := 0; i < 8; i++ {
			w := e.width(e.format.Bit(b, i))
			for j := 0; j < w; j++ {
				out = append(out, -e.amplitude)
			}
			for j := 0; j < w; j++ {
				out = append(out, e.amplitude)
			}
		}
	}
	return out
}

func (e *Encoder) width(bit bool) int {
	if bit {
		return e.oneWidth
	}
	return e.zeroWidth
}
