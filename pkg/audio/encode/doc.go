// ABOUTME: Waveform container encoders for synthesized tapes
// ABOUTME: Provides Encoder interface and implementations for WAV and raw PCM
// Package encode writes synthesized tape waveforms to audio containers.
//
// Supports: WAV (16-bit and 24-bit), headerless PCM (16-bit and 24-bit)
//
// All encoders accept an audio.Buffer with int32 samples in 24-bit range.
//
// Example:
//
//	encoder, err := encode.NewWAV(format)
//	err = encoder.Encode(f, buf)
package encode
