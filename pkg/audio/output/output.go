// ABOUTME: Audio output interface definition
// ABOUTME: Common interface for playback backends and a chunked streaming helper
package output

import (
	"context"
	"fmt"

	"github.com/orao-retro/oraotap/pkg/audio"
)

// Output represents an audio output device
type Output interface {
	// Open initializes the output device
	Open(format audio.Format) error

	// Write outputs audio samples (blocks until written)
	Write(samples []int32) error

	// Close releases output resources
	Close() error
}

// Stream writes samples to out in chunks of chunk samples, calling progress
// with the running total after each one. It stops early when ctx is done.
func Stream(ctx context.Context, out Output, samples []int32, chunk int, progress func(written int)) error {
	if chunk <= 0 {
		return fmt.Errorf("invalid chunk size %d", chunk)
	}

	for written := 0; written < len(samples); {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		end := min(written+chunk, len(samples))
		if err := out.Write(samples[written:end]); err != nil {
			return fmt.Errorf("write failed at sample %d: %w", written, err)
		}
		written = end

		if progress != nil {
			progress(written)
		}
	}
	return nil
}
