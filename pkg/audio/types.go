// ABOUTME: Audio type definitions
// ABOUTME: Defines waveform formats, sample buffers and sample conversions
package audio

import (
	"fmt"
	"time"
)

const (
	// 24-bit audio range constants
	Max24Bit = 8388607  // 2^23 - 1
	Min24Bit = -8388608 // -2^23
)

// Sample is any signed amplitude type. Only the sign matters to the tape codec.
type Sample interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int | ~float32 | ~float64
}

// Positive reports the polarity of a sample. Zero counts as not positive.
func Positive[S Sample](s S) bool {
	return s > 0
}

// Format describes a waveform container
type Format struct {
	Codec      string
	SampleRate int
	Channels   int
	BitDepth   int
}

// Buffer holds a fully decoded waveform.
// Samples are interleaved int32 in the 24-bit range.
type Buffer struct {
	Samples []int32
	Format  Format
}

// Frames returns the number of samples per channel
func (b *Buffer) Frames() int {
	if b.Format.Channels <= 1 {
		return len(b.Samples)
	}
	return len(b.Samples) / b.Format.Channels
}

// Duration returns the playing time of the buffer
func (b *Buffer) Duration() time.Duration {
	if b.Format.SampleRate <= 0 {
		return 0
	}
	return time.Duration(b.Frames()) * time.Second / time.Duration(b.Format.SampleRate)
}

// Channel extracts one channel as a mono sample slice.
// For mono buffers the samples are returned without copying.
func (b *Buffer) Channel(ch int) ([]int32, error) {
	channels := b.Format.Channels
	if channels <= 1 {
		if ch != 0 {
			return nil, fmt.Errorf("channel %d out of range (mono)", ch)
		}
		return b.Samples, nil
	}
	if ch < 0 || ch >= channels {
		return nil, fmt.Errorf("channel %d out of range (%d channels)", ch, channels)
	}

	out := make([]int32, b.Frames())
	for i := range out {
		out[i] = b.Samples[i*channels+ch]
	}
	return out, nil
}

// Summary describes the buffer in one line for logging
func (b *Buffer) Summary() string {
	return fmt.Sprintf("%s: %d Hz, %d channel(s), %d-bit, %d frames (%.2fs)",
		b.Format.Codec, b.Format.SampleRate, b.Format.Channels, b.Format.BitDepth,
		b.Frames(), b.Duration().Seconds())
}

// SampleToInt16 converts int32 sample to int16 (for 16-bit playback)
func SampleToInt16(sample int32) int16 {
	// Right-shift to convert 24-bit (or 16-bit) to 16-bit range
	return int16(sample >> 8)
}

// SampleFromInt16 converts int16 sample to int32 (left-justified in 24-bit)
func SampleFromInt16(sample int16) int32 {
	return int32(sample) << 8
}

// SampleFromDepth scales an integer sample of the given bit depth to the 24-bit range
func SampleFromDepth(sample int, bitDepth int) int32 {
	switch {
	case bitDepth < 24:
		return int32(sample) << uint(24-bitDepth)
	case bitDepth > 24:
		return int32(sample >> uint(bitDepth-24))
	default:
		return int32(sample)
	}
}

// SampleToDepth scales a 24-bit range sample to the given bit depth
func SampleToDepth(sample int32, bitDepth int) int {
	switch {
	case bitDepth < 24:
		return int(sample >> uint(24-bitDepth))
	case bitDepth > 24:
		return int(sample) << uint(bitDepth-24)
	default:
		return int(sample)
	}
}

// SampleTo24Bit converts int32 to 24-bit packed bytes (little-endian)
func SampleTo24Bit(sample int32) [3]byte {
	return [3]byte{
		byte(sample),
		byte(sample >> 8),
		byte(sample >> 16),
	}
}

// SampleFrom24Bit converts 24-bit packed bytes to int32 (little-endian)
func SampleFrom24Bit(b [3]byte) int32 {
	val := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
	// Sign extend from 24-bit to 32-bit
	if val&0x800000 != 0 {
		val |= ^0xFFFFFF
	}
	return val
}
