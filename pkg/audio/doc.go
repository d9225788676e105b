// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines Format, Buffer types and sample conversion functions
// Package audio provides the waveform types shared by the container codecs.
//
// Samples are carried as int32 in the 24-bit range regardless of the source
// bit depth, so 16-bit, 24-bit and 32-bit containers share one representation.
// The tape codec only looks at sample polarity (see Positive).
//
// Example:
//
//	buf := &audio.Buffer{
//	    Samples: samples,
//	    Format:  audio.Format{Codec: "wav", SampleRate: 44100, Channels: 1, BitDepth: 16},
//	}
//	left, err := buf.Channel(0)
package audio
