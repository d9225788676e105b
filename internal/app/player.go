// ABOUTME: Tape player application orchestration
// ABOUTME: Synthesizes the pulse signal of a TAP image and plays it with optional TUI
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/orao-retro/oraotap/internal/config"
	"github.com/orao-retro/oraotap/internal/convert"
	"github.com/orao-retro/oraotap/internal/ui"
	"github.com/orao-retro/oraotap/pkg/audio"
	"github.com/orao-retro/oraotap/pkg/audio/output"
	"github.com/orao-retro/oraotap/pkg/tap"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrAborted is returned when playback was stopped before the end of the tape
var ErrAborted = errors.New("playback aborted")

// Config holds player configuration
type Config struct {
	Input string
	// Format forces the tape format ("new" or "old"); empty means detect
	Format string
	Trail  time.Duration
	// Chunk is the amount of signal written per progress update
	Chunk  time.Duration
	UseTUI bool
	Codec  *config.Config
}

// Output is a playback device with volume control
type Output interface {
	output.Output
	SetVolume(volume int)
	SetMuted(muted bool)
}

// drainer is implemented by outputs that buffer ahead of the speaker
type drainer interface {
	Drain(ctx context.Context) error
}

// Player plays one tape image
type Player struct {
	config  Config
	output  Output
	control *ui.PlaybackControl
	ctx     context.Context
	cancel  context.CancelFunc

	// mu guards the TUI handles; Stop runs on the signal goroutine
	mu       sync.Mutex
	tuiProg  *tea.Program
	tuiDone  chan struct{}
	stopOnce sync.Once

	format tap.Format
	buf    *audio.Buffer
	played int
}

// New creates a new player
func New(cfg Config, out Output) *Player {
	if cfg.Codec == nil {
		cfg.Codec = config.Default()
	}
	if cfg.Chunk <= 0 {
		cfg.Chunk = 100 * time.Millisecond
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Player{
		config:  cfg,
		output:  out,
		control: ui.NewPlaybackControl(),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Load reads the tape image and synthesizes its signal
func (p *Player) Load() error {
	data, err := os.ReadFile(p.config.Input)
	if err != nil {
		return fmt.Errorf("failed to read tape: %w", err)
	}

	if p.config.Format != "" {
		if p.format, err = tap.ParseFormat(p.config.Format); err != nil {
			return err
		}
	} else {
		var ok bool
		if p.format, ok = tap.Detect(data); !ok {
			log.Printf("Warning: unrecognised tape header in %s, assuming %s format", p.config.Input, p.format)
		}
	}

	rate := p.config.Codec.WAV.SampleRate
	trail := int(p.config.Trail.Seconds() * float64(rate))
	p.buf, err = convert.TapToWave(data, p.format, p.config.Codec.Pulse(), trail)
	if err != nil {
		return fmt.Errorf("failed to synthesize %s: %w", p.config.Input, err)
	}
	p.buf.Format.SampleRate = rate
	p.buf.Format.BitDepth = 16

	log.Printf("Loaded %s tape %s: %s", p.format, p.config.Input, p.buf.Summary())
	return nil
}

// Start plays the loaded tape and returns when it finished or was aborted
func (p *Player) Start() error {
	if p.buf == nil {
		return fmt.Errorf("no tape loaded")
	}
	if p.ctx.Err() != nil {
		return ErrAborted
	}

	if err := p.output.Open(p.buf.Format); err != nil {
		return fmt.Errorf("failed to open output: %w", err)
	}

	if p.config.UseTUI {
		p.startTUI()
	}

	go p.handleControls()

	err := p.play()
	p.updateTUI(ui.StatusMsg{Played: p.played, Done: true, Err: err})
	return err
}

// startTUI publishes the program and its done channel together, unless
// Stop already ran
func (p *Player) startTUI() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctx.Err() != nil {
		return
	}

	prog := ui.Run(p.tapeInfo(), p.control)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := prog.Run(); err != nil {
			log.Printf("TUI error: %v", err)
		}
		p.cancel()
	}()
	p.tuiProg, p.tuiDone = prog, done
}

func (p *Player) play() error {
	chunk := int(p.config.Chunk.Seconds() * float64(p.buf.Format.SampleRate))
	lastLog := time.Now()

	err := output.Stream(p.ctx, p.output, p.buf.Samples, max(chunk, 1), func(written int) {
		p.played = written
		p.updateTUI(ui.StatusMsg{Played: written})
		if !p.config.UseTUI && time.Since(lastLog) >= time.Second {
			log.Printf("Played %d/%d samples", written, len(p.buf.Samples))
			lastLog = time.Now()
		}
	})
	// a write interrupted by Stop also counts as an abort
	if errors.Is(err, context.Canceled) || (err != nil && p.ctx.Err() != nil) {
		return ErrAborted
	}
	if err != nil {
		return err
	}

	if d, ok := p.output.(drainer); ok {
		if err := d.Drain(p.ctx); err != nil {
			return ErrAborted
		}
	}

	log.Printf("Playback finished: %s", p.buf.Duration())
	return nil
}

// handleControls applies volume changes and quit requests from the TUI
func (p *Player) handleControls() {
	for {
		select {
		case vol := <-p.control.Changes:
			p.output.SetVolume(vol.Volume)
			p.output.SetMuted(vol.Muted)
		case <-p.control.Quit:
			log.Printf("Received quit signal from TUI")
			p.cancel()
			return
		case <-p.ctx.Done():
			return
		}
	}
}

func (p *Player) updateTUI(msg ui.StatusMsg) {
	p.mu.Lock()
	prog := p.tuiProg
	p.mu.Unlock()
	if prog != nil {
		prog.Send(msg)
	}
}

func (p *Player) tapeInfo() ui.TapeInfo {
	return ui.TapeInfo{
		Name:         filepath.Base(p.config.Input),
		Format:       p.format.String(),
		PayloadBytes: p.payloadBytes(),
		SampleRate:   p.buf.Format.SampleRate,
		TotalSamples: len(p.buf.Samples),
	}
}

func (p *Player) payloadBytes() int {
	info, err := os.Stat(p.config.Input)
	if err != nil {
		return 0
	}
	return int(info.Size()) - p.format.HeaderLen()
}

// Stop aborts playback and releases the output. It may run concurrently
// with Start and more than once.
func (p *Player) Stop() {
	p.stopOnce.Do(func() {
		// cancel under mu so startTUI cannot publish a program after this
		p.mu.Lock()
		p.cancel()
		prog, done := p.tuiProg, p.tuiDone
		p.mu.Unlock()

		if p.output != nil {
			p.output.Close()
		}

		if prog != nil {
			prog.Quit()
			<-done
		}
	})
}
