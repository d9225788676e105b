// ABOUTME: Run-alternation pulse decoder
// ABOUTME: Turns a sample polarity sequence into tape payload bytes
package pulse

import (
	"github.com/orao-retro/oraotap/pkg/audio"
	"github.com/orao-retro/oraotap/pkg/tap"
)

// State is the decoder state between two samples.
//
// Each bit is one full wave cycle of two equal half-periods. Only the first
// half-period is scored; FirstPart is true while the second one is consumed.
type State struct {
	Prev      bool // polarity of the previous sample
	Run       int  // samples seen since the last transition
	FirstPart bool // first half of the current cycle already scored
	Acc       byte // partially assembled byte
	Bits      int  // bits held in Acc, 0..7
	primed    bool
}

// Decoder folds samples through State.
type Decoder struct {
	format    tap.Format
	threshold int
}

// NewDecoder creates a decoder that assembles bytes in the given format's bit order
func NewDecoder(format tap.Format, cfg Config) (*Decoder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Decoder{format: format, threshold: cfg.Threshold}, nil
}

// Format returns the bit order the decoder assembles bytes in
func (d *Decoder) Format() tap.Format {
	return d.format
}

// Step advances the state by one sample polarity. It returns the next
// state and, when a byte was completed, that byte with ok set.
func (d *Decoder) Step(s State, positive bool) (next State, b byte, ok bool) {
	// the first sample seeds the polarity so leading samples form the first run
	if !s.primed {
		s.primed = true
		s.Prev = positive
		s.Run = 1
		return s, 0, false
	}

	if positive == s.Prev {
		s.Run++
		return s, 0, false
	}

	if !s.FirstPart {
		s.Acc = d.format.ShiftIn(s.Acc, s.Run >= d.threshold)
		s.Bits++
		if s.Bits == 8 {
			b, ok = s.Acc, true
			s.Acc = 0
			s.Bits = 0
		}
		s.FirstPart = true
	} else {
		s.FirstPart = false
	}

	s.Run = 0
	s.Prev = positive
	return s, b, ok
}

// Flush pads a partial byte with zero bits and returns it.
// ok is false when no bits are pending.
func (d *Decoder) Flush(s State) (b byte, ok bool) {
	if s.Bits == 0 {
		return 0, false
	}
	acc := s.Acc
	for i := s.Bits; i < 8; i++ {
		acc = d.format.ShiftIn(acc, false)
	}
	return acc, true
}

// Decode converts a whole sample sequence into payload bytes. The header
// of the tape image is not included.
func (d *Decoder) Decode(samples []int32) []byte {
	return decodeSamples(d, samples)
}

// DecodeFloat is Decode for floating point samples in [-1, 1]
func (d *Decoder) DecodeFloat(samples []float64) []byte {
	return decodeSamples(d, samples)
}

func decodeSamples[S audio.Sample](d *Decoder, samples []S) []byte {
	// two half-periods of at least ZeroWidth samples per bit
	out := make([]byte, 0, len(samples)/(16*ZeroWidth)+1)

	var s State
	for _, sample := range samples {
		var b byte
		var ok bool
		s, b, ok = d.Step(s, audio.Positive(sample))
		if ok {
			out = append(out, b)
		}
	}
	if b, ok := d.Flush(s); ok {
		out = append(out, b)
	}
	return out
}
