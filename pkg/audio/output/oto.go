// ABOUTME: Oto-based audio output implementation
// ABOUTME: Streams PCM through a pipe-fed player with software volume control
package output

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/orao-retro/oraotap/pkg/audio"
)

// Oto output implementation using oto library
type Oto struct {
	// mu guards every field below; Close may run on another goroutine
	// while Write is streaming
	mu         sync.Mutex
	otoCtx     *oto.Context
	player     *oto.Player
	pipeReader *io.PipeReader
	pipeWriter *io.PipeWriter
	format     audio.Format
	volume     int
	muted      bool
}

// NewOto creates a new Oto output
func NewOto() *Oto {
	return &Oto{
		volume: 100,
	}
}

// Open initializes the output device
func (o *Oto) Open(format audio.Format) error {
	// oto only supports 16-bit output
	if format.BitDepth != 0 && format.BitDepth != 16 {
		log.Printf("Warning: oto only supports 16-bit output, ignoring requested bitDepth=%d", format.BitDepth)
	}
	if format.Channels < 1 {
		format.Channels = 1
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	// oto allows one context per process
	if o.otoCtx != nil {
		if o.format.SampleRate != format.SampleRate || o.format.Channels != format.Channels {
			return fmt.Errorf("output already open at %dHz %dch", o.format.SampleRate, o.format.Channels)
		}
		if o.pipeWriter != nil {
			return nil
		}
		if err := o.otoCtx.Resume(); err != nil {
			return fmt.Errorf("failed to resume oto context: %w", err)
		}
		o.startPlayer()
		return nil
	}

	op := &oto.NewContextOptions{
		SampleRate:   format.SampleRate,
		ChannelCount: format.Channels,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("failed to create oto context: %w", err)
	}

	<-readyChan

	o.otoCtx = ctx
	o.format = format
	o.format.BitDepth = 16
	o.startPlayer()

	log.Printf("Audio output initialized: %dHz, %d channels", format.SampleRate, format.Channels)

	return nil
}

// startPlayer creates the pipe and the persistent player reading from it.
// Callers hold o.mu.
func (o *Oto) startPlayer() {
	o.pipeReader, o.pipeWriter = io.Pipe()
	o.player = o.otoCtx.NewPlayer(o.pipeReader)
	o.player.Play()
}

// Write outputs audio samples (blocks until written)
func (o *Oto) Write(samples []int32) error {
	o.mu.Lock()
	w, volume, muted := o.pipeWriter, o.volume, o.muted
	o.mu.Unlock()

	if w == nil {
		return fmt.Errorf("output not initialized")
	}

	// a concurrent Close unblocks this with io.ErrClosedPipe
	if _, err := w.Write(pcm16(samples, volume, muted)); err != nil {
		return fmt.Errorf("pipe write failed: %w", err)
	}

	return nil
}

// Drain waits until the player has played everything written so far
func (o *Oto) Drain(ctx context.Context) error {
	o.mu.Lock()
	player := o.player
	o.mu.Unlock()

	if player == nil {
		return nil
	}

	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()

	for player.IsPlaying() && player.BufferedSize() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

// Close releases output resources. It is safe to call concurrently with
// Write and more than once.
func (o *Oto) Close() error {
	o.mu.Lock()
	w, player, r, otoCtx := o.pipeWriter, o.player, o.pipeReader, o.otoCtx
	o.pipeWriter, o.player, o.pipeReader = nil, nil, nil
	o.mu.Unlock()

	if w != nil {
		w.Close()
	}
	if player != nil {
		player.Close()
	}
	if r != nil {
		r.Close()
	}
	if otoCtx != nil && w != nil {
		if err := otoCtx.Suspend(); err != nil {
			return fmt.Errorf("failed to suspend oto context: %w", err)
		}
	}
	return nil
}

// SetVolume sets the volume (0-100)
func (o *Oto) SetVolume(volume int) {
	volume = max(0, min(100, volume))
	o.mu.Lock()
	o.volume = volume
	o.mu.Unlock()
	log.Printf("Volume set to %d", volume)
}

// SetMuted sets mute state
func (o *Oto) SetMuted(muted bool) {
	o.mu.Lock()
	o.muted = muted
	o.mu.Unlock()
	log.Printf("Muted: %v", muted)
}

// Volume returns the current volume and mute state
func (o *Oto) Volume() (int, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.volume, o.muted
}

// pcm16 scales samples by volume and packs them as 16-bit little-endian
func pcm16(samples []int32, volume int, muted bool) []byte {
	multiplier := getVolumeMultiplier(volume, muted)

	out := make([]byte, len(samples)*2)
	for i, sample := range samples {
		scaled := int64(float64(sample) * multiplier)

		// Clamp to 24-bit range to prevent overflow
		if scaled > audio.Max24Bit {
			scaled = audio.Max24Bit
		} else if scaled < audio.Min24Bit {
			scaled = audio.Min24Bit
		}

		binary.LittleEndian.PutUint16(out[i*2:], uint16(audio.SampleToInt16(int32(scaled))))
	}
	return out
}

// getVolumeMultiplier calculates volume multiplier
func getVolumeMultiplier(volume int, muted bool) float64 {
	if muted {
		return 0.0
	}
	return float64(volume) / 100.0
}
