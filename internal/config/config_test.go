// ABOUTME: Tests for configuration loading
// ABOUTME: Covers defaults, YAML overrides, env lookup and validation
package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/orao-retro/oraotap/pkg/pulse"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "oraotap.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Pulse() != pulse.DefaultConfig() {
		t.Errorf("Pulse() = %+v, want %+v", cfg.Pulse(), pulse.DefaultConfig())
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
codec:
  threshold: 12
wav:
  sample_rate: 22050
  bit_depth: 24
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Codec.Threshold != 12 {
		t.Errorf("threshold = %d, want 12", cfg.Codec.Threshold)
	}
	if cfg.Codec.ZeroWidth != pulse.ZeroWidth {
		t.Errorf("zero width = %d, want default %d", cfg.Codec.ZeroWidth, pulse.ZeroWidth)
	}
	if got := cfg.OutputFormat(); got.SampleRate != 22050 || got.BitDepth != 24 || got.Channels != 1 {
		t.Errorf("unexpected output format: %+v", got)
	}
	if cfg.Raw.SampleRate != 44100 {
		t.Errorf("raw sample rate = %d, want default 44100", cfg.Raw.SampleRate)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"threshold below zero width", "codec:\n  threshold: 8\n"},
		{"threshold at one width", "codec:\n  threshold: 17\n"},
		{"amplitude too large", "codec:\n  amplitude: 40000\n"},
		{"bad bit depth", "wav:\n  bit_depth: 12\n"},
		{"no raw channels", "raw:\n  channels: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Load() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "codec: [1, 2"))
	if err == nil {
		t.Fatal("expected parse error, got nil")
	}
	if errors.Is(err, ErrInvalid) {
		t.Error("parse error should not be reported as ErrInvalid")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadDefaultUsesEnv(t *testing.T) {
	path := writeConfig(t, "wav:\n  sample_rate: 8000\n")
	t.Setenv(EnvPath, path)

	cfg, err := LoadDefault("")
	if err != nil {
		t.Fatalf("LoadDefault() failed: %v", err)
	}
	if cfg.WAV.SampleRate != 8000 {
		t.Errorf("sample rate = %d, want 8000", cfg.WAV.SampleRate)
	}
}

func TestLoadDefaultWithoutFile(t *testing.T) {
	t.Setenv(EnvPath, "")

	cfg, err := LoadDefault("")
	if err != nil {
		t.Fatalf("LoadDefault() failed: %v", err)
	}
	if cfg.WAV.SampleRate != 44100 {
		t.Errorf("sample rate = %d, want 44100", cfg.WAV.SampleRate)
	}
}

func TestRawFormat(t *testing.T) {
	f := Default().RawFormat()
	if f.Codec != "pcm" || f.Channels != 1 || f.BitDepth != 16 {
		t.Errorf("unexpected raw format: %+v", f)
	}
}
