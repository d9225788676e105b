// ABOUTME: Converter configuration loaded from YAML
// ABOUTME: Codec timing and container defaults with validation
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/orao-retro/oraotap/pkg/audio"
	"github.com/orao-retro/oraotap/pkg/pulse"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable holding a default config file path
const EnvPath = "ORAOTAP_CONFIG"

// ErrInvalid is returned when a configuration value is out of range
var ErrInvalid = errors.New("invalid configuration")

// Config holds all converter settings
type Config struct {
	Codec CodecConfig `yaml:"codec"`
	WAV   WAVConfig   `yaml:"wav"`
	Raw   RawConfig   `yaml:"raw"`
}

// CodecConfig holds pulse timing in samples and the output amplitude
type CodecConfig struct {
	ZeroWidth int `yaml:"zero_width"`
	OneWidth  int `yaml:"one_width"`
	Threshold int `yaml:"threshold"`
	// Amplitude is on a 16-bit scale
	Amplitude int `yaml:"amplitude"`
}

// WAVConfig describes synthesized WAV output
type WAVConfig struct {
	SampleRate int `yaml:"sample_rate"`
	BitDepth   int `yaml:"bit_depth"`
}

// RawConfig describes headerless PCM, which has no format of its own
type RawConfig struct {
	SampleRate int `yaml:"sample_rate"`
	BitDepth   int `yaml:"bit_depth"`
	Channels   int `yaml:"channels"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Codec: CodecConfig{
			ZeroWidth: pulse.ZeroWidth,
			OneWidth:  pulse.OneWidth,
			Threshold: pulse.Threshold,
			Amplitude: pulse.Amplitude16,
		},
		WAV: WAVConfig{
			SampleRate: 44100,
			BitDepth:   16,
		},
		Raw: RawConfig{
			SampleRate: 44100,
			BitDepth:   16,
			Channels:   1,
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", filename, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads path when set, then the file named by ORAOTAP_CONFIG,
// and otherwise returns the defaults.
func LoadDefault(path string) (*Config, error) {
	if path == "" {
		path = getEnv(EnvPath, "")
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks all values
func (c *Config) Validate() error {
	if err := c.Pulse().Validate(); err != nil {
		return fmt.Errorf("%w: codec: %v", ErrInvalid, err)
	}
	if c.Codec.Amplitude <= 0 || c.Codec.Amplitude > 32767 {
		return fmt.Errorf("%w: codec.amplitude must be in 1..32767, got %d", ErrInvalid, c.Codec.Amplitude)
	}
	if c.WAV.SampleRate <= 0 {
		return fmt.Errorf("%w: wav.sample_rate must be positive, got %d", ErrInvalid, c.WAV.SampleRate)
	}
	if c.WAV.BitDepth != 16 && c.WAV.BitDepth != 24 {
		return fmt.Errorf("%w: wav.bit_depth must be 16 or 24, got %d", ErrInvalid, c.WAV.BitDepth)
	}
	if c.Raw.SampleRate <= 0 {
		return fmt.Errorf("%w: raw.sample_rate must be positive, got %d", ErrInvalid, c.Raw.SampleRate)
	}
	if c.Raw.BitDepth != 16 && c.Raw.BitDepth != 24 {
		return fmt.Errorf("%w: raw.bit_depth must be 16 or 24, got %d", ErrInvalid, c.Raw.BitDepth)
	}
	if c.Raw.Channels < 1 {
		return fmt.Errorf("%w: raw.channels must be at least 1, got %d", ErrInvalid, c.Raw.Channels)
	}
	return nil
}

// Pulse returns the codec parameters in the pulse package's form
func (c *Config) Pulse() pulse.Config {
	return pulse.Config{
		ZeroWidth: c.Codec.ZeroWidth,
		OneWidth:  c.Codec.OneWidth,
		Threshold: c.Codec.Threshold,
		Amplitude: audio.SampleFromInt16(int16(clampAmplitude(c.Codec.Amplitude))),
	}
}

// OutputFormat describes the container synthesized waveforms are written in
func (c *Config) OutputFormat() audio.Format {
	return audio.Format{
		SampleRate: c.WAV.SampleRate,
		Channels:   1,
		BitDepth:   c.WAV.BitDepth,
	}
}

// RawFormat describes headerless PCM input and output
func (c *Config) RawFormat() audio.Format {
	return audio.Format{
		Codec:      "pcm",
		SampleRate: c.Raw.SampleRate,
		Channels:   c.Raw.Channels,
		BitDepth:   c.Raw.BitDepth,
	}
}

func clampAmplitude(a int) int {
	if a > 32767 {
		return 32767
	}
	if a < 0 {
		return 0
	}
	return a
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
