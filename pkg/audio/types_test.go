// ABOUTME: Tests for audio types
// ABOUTME: Tests sample conversions, polarity and channel extraction
package audio

import "testing"

func TestSampleFromInt16(t *testing.T) {
	tests := []struct {
		name     string
		input    int16
		expected int32
	}{
		{"zero", 0, 0},
		{"positive", 100, 100 << 8},
		{"negative", -100, -100 << 8},
		{"max", 32767, 32767 << 8},
		{"min", -32768, -32768 << 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SampleFromInt16(tt.input)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestSampleToInt16(t *testing.T) {
	tests := []struct {
		name     string
		input    int32
		expected int16
	}{
		{"zero", 0, 0},
		{"positive", 100 << 8, 100},
		{"negative", -100 << 8, -100},
		{"24bit positive", 1000000, 3906}, // 1000000 >> 8 = 3906
		{"24bit negative", -1000000, -3907},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SampleToInt16(tt.input)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestSampleTo24Bit(t *testing.T) {
	tests := []struct {
		name     string
		input    int32
		expected [3]byte
	}{
		{"zero", 0, [3]byte{0, 0, 0}},
		{"positive", 0x123456, [3]byte{0x56, 0x34, 0x12}},
		{"negative", -256, [3]byte{0x00, 0xFF, 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SampleTo24Bit(tt.input)
			if result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestSampleFrom24Bit(t *testing.T) {
	tests := []struct {
		name     string
		input    [3]byte
		expected int32
	}{
		{"zero", [3]byte{0, 0, 0}, 0},
		{"positive", [3]byte{0x56, 0x34, 0x12}, 0x123456},
		{"negative", [3]byte{0x00, 0xFF, 0xFF}, -256},
		{"max positive", [3]byte{0xFF, 0xFF, 0x7F}, Max24Bit},
		{"max negative", [3]byte{0x00, 0x00, 0x80}, Min24Bit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SampleFrom24Bit(tt.input)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestRoundTrip16Bit(t *testing.T) {
	// Test that 16-bit samples survive round-trip conversion
	samples := []int16{0, 100, -100, 1000, -1000, 32767, -32768}

	for _, original := range samples {
		sample32 := SampleFromInt16(original)
		result := SampleToInt16(sample32)
		if result != original {
			t.Errorf("round-trip failed: %d -> %d -> %d", original, sample32, result)
		}
	}
}

func TestRoundTrip24Bit(t *testing.T) {
	// Test that 24-bit samples survive round-trip conversion
	samples := []int32{0, 100000, -100000, Max24Bit, Min24Bit}

	for _, original := range samples {
		bytes := SampleTo24Bit(original)
		result := SampleFrom24Bit(bytes)
		// Mask to 24-bit for comparison
		expected := original & 0xFFFFFF
		if expected&0x800000 != 0 {
			expected |= ^0xFFFFFF
		}
		if result != expected {
			t.Errorf("round-trip failed: %d -> %v -> %d (expected %d)", original, bytes, result, expected)
		}
	}
}

func TestSampleDepthRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		bitDepth int
		expected int32
	}{
		{"8-bit", -100, 8, -100 << 16},
		{"16-bit", 24576, 16, 24576 << 8},
		{"24-bit", -123456, 24, -123456},
		{"32-bit", 0x12345600, 32, 0x123456},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SampleFromDepth(tt.input, tt.bitDepth)
			if result != tt.expected {
				t.Errorf("SampleFromDepth() = %d, want %d", result, tt.expected)
			}
			if back := SampleToDepth(result, tt.bitDepth); back != tt.input {
				t.Errorf("SampleToDepth() = %d, want %d", back, tt.input)
			}
		})
	}
}

func TestPositive(t *testing.T) {
	if !Positive(int32(1)) || Positive(int32(0)) || Positive(int32(-1)) {
		t.Error("unexpected int32 polarity")
	}
	if !Positive(0.001) || Positive(-0.5) || Positive(0.0) {
		t.Error("unexpected float64 polarity")
	}
}

func TestBufferChannel(t *testing.T) {
	stereo := &Buffer{
		Samples: []int32{1, -1, 2, -2, 3, -3},
		Format:  Format{Codec: "pcm", SampleRate: 3, Channels: 2, BitDepth: 16},
	}

	left, err := stereo.Channel(0)
	if err != nil {
		t.Fatalf("Channel(0) failed: %v", err)
	}
	want := []int32{1, 2, 3}
	for i := range want {
		if left[i] != want[i] {
			t.Errorf("left[%d] = %d, want %d", i, left[i], want[i])
		}
	}

	if _, err := stereo.Channel(2); err == nil {
		t.Error("expected error for channel 2")
	}

	if stereo.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", stereo.Frames())
	}
	if stereo.Duration().Seconds() != 1 {
		t.Errorf("Duration() = %v, want 1s", stereo.Duration())
	}

	mono := &Buffer{Samples: []int32{5, 6}, Format: Format{Channels: 1}}
	got, err := mono.Channel(0)
	if err != nil || len(got) != 2 {
		t.Errorf("mono Channel(0) = %v, %v", got, err)
	}
	if _, err := mono.Channel(1); err == nil {
		t.Error("expected error for mono channel 1")
	}
}
