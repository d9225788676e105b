// ABOUTME: Conversion orchestration between waveforms and tape images
// ABOUTME: Reads the input whole, runs one codec pass and writes the output atomically
package convert

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/orao-retro/oraotap/internal/config"
	"github.com/orao-retro/oraotap/pkg/audio"
	"github.com/orao-retro/oraotap/pkg/audio/decode"
	"github.com/orao-retro/oraotap/pkg/audio/encode"
	"github.com/orao-retro/oraotap/pkg/pulse"
	"github.com/orao-retro/oraotap/pkg/tap"
)

// Options describes one conversion
type Options struct {
	Mode   Mode
	Input  string
	Output string

	// Format forces the input tape format for tap2wav ("new" or "old");
	// empty means detect it from the header
	Format string

	// Trail appends silence after a synthesized pulse train
	Trail time.Duration
}

// Converter runs conversions. Container codecs are looked up through
// injectable functions so tests can substitute them.
type Converter struct {
	config   *config.Config
	decoders func(path string) (decode.Decoder, error)
	encoders func(path string) (encode.Encoder, error)
}

// New creates a converter using the container codecs picked by file extension
func New(cfg *config.Config) *Converter {
	c := &Converter{config: cfg}
	c.decoders = func(path string) (decode.Decoder, error) {
		return decode.ForPath(path, cfg.RawFormat())
	}
	c.encoders = func(path string) (encode.Encoder, error) {
		return encode.ForPath(path, c.outputFormat(path))
	}
	return c
}

// outputFormat is the waveform format written to path: headerless PCM
// uses the raw settings, containers the WAV settings
func (c *Converter) outputFormat(path string) audio.Format {
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".raw" || ext == ".pcm" {
		return c.config.RawFormat()
	}
	return c.config.OutputFormat()
}

func (o Options) validate() error {
	if o.Mode == ModeNone {
		return usageError("no target format selected")
	}
	if o.Input == "" {
		return usageError("input file is mandatory")
	}
	if o.Output == "" {
		return usageError("output file is mandatory")
	}
	if o.Format != "" {
		if o.Mode != ModeTapToWAV {
			return usageError("--format only applies to tap2wav")
		}
		if _, err := tap.ParseFormat(o.Format); err != nil {
			return usageError("%v", err)
		}
	}
	if o.Trail < 0 {
		return usageError("negative trail duration %s", o.Trail)
	}
	return nil
}

// Run performs the conversion. Nothing is written unless the whole output
// was produced.
func (c *Converter) Run(opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}

	// container lookups are usage errors, so resolve them before reading
	var decoder decode.Decoder
	var encoder encode.Encoder
	var err error
	switch opts.Mode {
	case ModeWAVToNew, ModeWAVToOld:
		if decoder, err = c.decoders(opts.Input); err != nil {
			return usageError("%v", err)
		}
		defer decoder.Close()
	case ModeTapToWAV:
		if encoder, err = c.encoders(opts.Output); err != nil {
			return usageError("%v", err)
		}
		defer encoder.Close()
	}

	data, err := os.ReadFile(opts.Input)
	if err != nil {
		return &Error{Op: OpRead, Path: opts.Input, Err: err}
	}

	switch opts.Mode {
	case ModeWAVToNew, ModeWAVToOld:
		return c.waveToTap(opts, decoder, data)
	case ModeTapToWAV:
		return c.tapToWave(opts, encoder, data)
	default:
		return c.transcode(opts, data)
	}
}

func (c *Converter) waveToTap(opts Options, decoder decode.Decoder, data []byte) error {
	format, _ := opts.Mode.TargetFormat()
	log.Printf("Converting Orao WAV tape to %s TAP format", format)

	buf, err := decoder.Decode(data)
	if err != nil {
		return &Error{Op: OpDecode, Path: opts.Input, Err: err}
	}
	log.Printf("Input: %s", buf.Summary())

	image, err := WaveToTap(buf, format, c.config.Pulse())
	if err != nil {
		return &Error{Op: OpDecode, Path: opts.Input, Err: err}
	}
	log.Printf("Decoded %d payload bytes", len(image)-format.HeaderLen())

	return writeFile(opts.Output, func(w io.WriteSeeker) error {
		_, err := w.Write(image)
		return err
	})
}

func (c *Converter) tapToWave(opts Options, encoder encode.Encoder, data []byte) error {
	format := c.inputFormat(opts, data)
	log.Printf("Converting %s Orao TAP to waveform", format)

	out := c.outputFormat(opts.Output)
	trail := int(opts.Trail.Seconds() * float64(out.SampleRate))
	buf, err := TapToWave(data, format, c.config.Pulse(), trail)
	if err != nil {
		return &Error{Op: OpEncode, Path: opts.Input, Err: err}
	}
	buf.Format.SampleRate = out.SampleRate
	buf.Format.BitDepth = out.BitDepth
	log.Printf("Output: %s", buf.Summary())

	return writeFile(opts.Output, func(w io.WriteSeeker) error {
		return encoder.Encode(w, buf)
	})
}

func (c *Converter) inputFormat(opts Options, data []byte) tap.Format {
	if opts.Format != "" {
		// already checked by validate
		format, _ := tap.ParseFormat(opts.Format)
		return format
	}
	format, ok := tap.Detect(data)
	if !ok {
		log.Printf("Warning: unrecognised tape header in %s, assuming %s format", opts.Input, format)
	}
	return format
}

func (c *Converter) transcode(opts Options, data []byte) error {
	var out []byte
	var err error
	if opts.Mode == ModeOldToNew {
		log.Printf("Converting old Orao TAP to new TAP format")
		out, err = tap.ToNew(data)
	} else {
		log.Printf("Converting new Orao TAP to old TAP format")
		log.Printf("Warning: the old header is a placeholder; some emulators may not accept the result")
		out, err = tap.ToOld(data)
	}
	if err != nil {
		return &Error{Op: OpTranscode, Path: opts.Input, Err: err}
	}

	return writeFile(opts.Output, func(w io.WriteSeeker) error {
		_, err := w.Write(out)
		return err
	})
}

// WaveToTap decodes channel 0 of a waveform into a complete tape image
func WaveToTap(buf *audio.Buffer, format tap.Format, cfg pulse.Config) ([]byte, error) {
	samples, err := buf.Channel(0)
	if err != nil {
		return nil, err
	}

	dec, err := pulse.NewDecoder(format, cfg)
	if err != nil {
		return nil, err
	}

	img := tap.Image{Format: format, Payload: dec.Decode(samples)}
	return img.Bytes(), nil
}

// TapToWave encodes the payload of a tape image into a mono waveform,
// followed by trail samples of silence
func TapToWave(data []byte, format tap.Format, cfg pulse.Config, trail int) (*audio.Buffer, error) {
	img, err := tap.Parse(data, format)
	if err != nil {
		return nil, err
	}

	enc, err := pulse.NewEncoder(format, cfg)
	if err != nil {
		return nil, err
	}

	samples := enc.Encode(img.Payload)
	if trail > 0 {
		samples = append(samples, make([]int32, trail)...)
	}

	return &audio.Buffer{
		Samples: samples,
		Format:  audio.Format{Codec: "pulse", Channels: 1},
	}, nil
}

// writeFile writes through a temporary file in the target directory and
// renames it into place once fill succeeded
func writeFile(path string, fill func(w io.WriteSeeker) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return &Error{Op: OpWrite, Path: path, Err: err}
	}

	err = fill(tmp)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		if chmodErr := os.Chmod(tmp.Name(), 0644); chmodErr != nil {
			err = fmt.Errorf("failed to set permissions: %w", chmodErr)
		}
	}
	if err == nil {
		err = os.Rename(tmp.Name(), path)
	}
	if err != nil {
		os.Remove(tmp.Name())
		return &Error{Op: OpWrite, Path: path, Err: err}
	}
	return nil
}
