// ABOUTME: Audio output package for playing synthesized tapes
// ABOUTME: Provides the Output interface, the oto backend and chunked streaming
// Package output provides audio playback for synthesized tape signals.
//
// The Oto backend plays 16-bit PCM through the system mixer. Stream feeds a
// whole recording to any Output in chunks so callers can report progress.
//
// Example:
//
//	out := output.NewOto()
//	err := out.Open(audio.Format{SampleRate: 44100, Channels: 1})
//	err = output.Stream(ctx, out, samples, 4410, nil)
package output
