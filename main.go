// ABOUTME: Entry point for the oraotap converter
// ABOUTME: Parses CLI flags, sets up logging and runs one conversion
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/orao-retro/oraotap/internal/config"
	"github.com/orao-retro/oraotap/internal/convert"
	"github.com/orao-retro/oraotap/internal/version"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type flags struct {
	sel convert.Selection

	input  string
	output string
	format string
	trail  time.Duration

	configPath string
	rate       int
	bits       int

	logFile string
	quiet   bool
	version bool
}

func newFlagSet(f *flags) *pflag.FlagSet {
	fs := pflag.NewFlagSet("oraotap", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.BoolVar(&f.sel.WAVToNew, "wav2tap", false, "convert a WAV recording to a new-format TAP")
	fs.BoolVar(&f.sel.WAVToOld, "wav2oldtap", false, "convert a WAV recording to an old-format TAP")
	fs.BoolVar(&f.sel.TapToWAV, "tap2wav", false, "synthesize a WAV recording from a TAP image")
	fs.BoolVar(&f.sel.OldToNew, "old2new", false, "transcode an old-format TAP to the new format")
	fs.BoolVar(&f.sel.NewToOld, "new2old", false, "transcode a new-format TAP to the old format")

	fs.StringVarP(&f.input, "input", "i", "", "input file (or first positional argument)")
	fs.StringVarP(&f.output, "output", "o", "", "output file (or second positional argument)")
	fs.StringVar(&f.format, "format", "", "tap2wav input format, new or old (default: detect)")
	fs.DurationVar(&f.trail, "trail", 0, "silence appended after a synthesized recording")

	fs.StringVar(&f.configPath, "config", "", "YAML configuration file (default: $"+config.EnvPath+")")
	fs.IntVar(&f.rate, "rate", 0, "sample rate of synthesized and raw audio")
	fs.IntVar(&f.bits, "bits", 0, "bit depth of synthesized and raw audio, 16 or 24")

	fs.StringVar(&f.logFile, "log-file", "", "also append log output to this file")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress progress logging on stderr")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	fs.BoolP("help", "h", false, "show help")
	return fs
}

func run(args []string) error {
	var f flags
	fs := newFlagSet(&f)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(fs)
			return nil
		}
		return fmt.Errorf("%w: %v", convert.ErrUsage, err)
	}
	if help, _ := fs.GetBool("help"); help {
		printHelp(fs)
		return nil
	}
	if f.version {
		fmt.Println(version.String("oraotap"))
		return nil
	}

	if err := f.positional(fs.Args()); err != nil {
		return err
	}

	closeLog, err := setupLogging(f.logFile, f.quiet)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.LoadDefault(f.configPath)
	if err != nil {
		return err
	}
	if f.rate != 0 {
		cfg.WAV.SampleRate = f.rate
		cfg.Raw.SampleRate = f.rate
	}
	if f.bits != 0 {
		cfg.WAV.BitDepth = f.bits
		cfg.Raw.BitDepth = f.bits
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", convert.ErrUsage, err)
	}

	mode, err := f.sel.Mode()
	if err != nil {
		return err
	}

	return convert.New(cfg).Run(convert.Options{
		Mode:   mode,
		Input:  f.input,
		Output: f.output,
		Format: f.format,
		Trail:  f.trail,
	})
}

// positional fills input and output from bare arguments when the named
// flags were not given
func (f *flags) positional(args []string) error {
	for _, arg := range args {
		switch {
		case f.input == "":
			f.input = arg
		case f.output == "":
			f.output = arg
		default:
			return fmt.Errorf("%w: unexpected argument: %s", convert.ErrUsage, arg)
		}
	}
	return nil
}

// setupLogging sends log output to stderr, the optional log file, or both
func setupLogging(path string, quiet bool) (func(), error) {
	var writers []io.Writer
	if !quiet {
		writers = append(writers, os.Stderr)
	}

	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("error opening log file: %w", err)
		}
		writers = append(writers, f)
		closeFn = func() { _ = f.Close() }
	}

	switch len(writers) {
	case 0:
		log.SetOutput(io.Discard)
	case 1:
		log.SetOutput(writers[0])
	default:
		log.SetOutput(io.MultiWriter(writers...))
	}
	return closeFn, nil
}

func printHelp(fs *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `oraotap converts Orao cassette recordings and TAP images.

Usage:
  oraotap --wav2tap    [-i] recording.wav [-o] game.tap
  oraotap --wav2oldtap [-i] recording.wav [-o] game.tap
  oraotap --tap2wav    [-i] game.tap      [-o] recording.wav
  oraotap --old2new    [-i] old.tap       [-o] new.tap
  oraotap --new2old    [-i] new.tap       [-o] old.tap

Recordings may be WAV, FLAC or MP3. Headerless PCM (.raw, .pcm) uses
--rate and --bits. Exactly one conversion must be selected.

Flags:
%s`, fs.FlagUsages())
}
