// ABOUTME: Waveform container decoders for tape captures
// ABOUTME: Provides Decoder interface and implementations for WAV, FLAC, MP3 and raw PCM
// Package decode reads recorded tape waveforms from audio containers.
//
// Supports: WAV (8/16/24/32-bit integer), FLAC, MP3, headerless PCM (16 and 24-bit)
//
// All decoders read a fully buffered file and return an audio.Buffer with
// int32 samples in the 24-bit range. Multi-channel data stays interleaved;
// use Buffer.Channel to pick the channel carrying the tape signal.
//
// Example:
//
//	decoder, err := decode.ForPath("game.wav", audio.Format{})
//	buf, err := decoder.Decode(data)
//	samples, err := buf.Channel(0)
package decode
