// ABOUTME: Entry point for the Orao tape player
// ABOUTME: Plays a TAP image as a cassette signal through the sound card
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/orao-retro/oraotap/internal/app"
	"github.com/orao-retro/oraotap/internal/config"
	"github.com/orao-retro/oraotap/internal/version"
	"github.com/orao-retro/oraotap/pkg/audio/output"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, app.ErrAborted) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		format     string
		trail      time.Duration
		rate       int
		configPath string
		logFile    string
		noTUI      bool
		showVer    bool
	)

	fs := pflag.NewFlagSet("tapeplay", pflag.ContinueOnError)
	fs.StringVar(&format, "format", "", "tape format, new or old (default: detect)")
	fs.DurationVar(&trail, "trail", 500*time.Millisecond, "silence played after the tape")
	fs.IntVar(&rate, "rate", 0, "playback sample rate")
	fs.StringVar(&configPath, "config", "", "YAML configuration file (default: $"+config.EnvPath+")")
	fs.StringVar(&logFile, "log-file", "tapeplay.log", "log file path")
	fs.BoolVar(&noTUI, "no-tui", false, "disable TUI, stream logs to stderr instead")
	fs.BoolVar(&showVer, "version", false, "print version and exit")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if showVer {
		fmt.Println(version.String("tapeplay"))
		return nil
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: tapeplay [flags] game.tap")
	}

	// Set up logging
	f, err := os.OpenFile(logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("error opening log file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if noTUI {
		log.SetOutput(io.MultiWriter(os.Stderr, f))
	} else {
		// TUI mode: log only to file
		log.SetOutput(f)
	}

	cfg, err := config.LoadDefault(configPath)
	if err != nil {
		return err
	}
	if rate != 0 {
		cfg.WAV.SampleRate = rate
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	player := app.New(app.Config{
		Input:  fs.Arg(0),
		Format: format,
		Trail:  trail,
		UseTUI: !noTUI,
		Codec:  cfg,
	}, output.NewOto())
	defer player.Stop()

	if err := player.Load(); err != nil {
		return err
	}

	// Handle shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Printf("Shutdown signal received")
		player.Stop()
	}()

	return player.Start()
}
