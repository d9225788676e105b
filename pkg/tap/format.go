// ABOUTME: Orao TAP sub-format definitions
// ABOUTME: Header layout and bit-assembly direction for new and old images
package tap

import (
	"bytes"
	"fmt"
	"strings"
)

// Format identifies one of the two historical TAP layouts.
// The header and the bit order always travel together.
type Format int

const (
	// New images start with a single sync byte and assemble bits MSB first
	New Format = iota
	// Old images start with a 360-byte header and assemble bits LSB first
	Old
)

const (
	// SyncByte marks the start of payload in a new image
	SyncByte byte = 0x4F

	// OldHeaderLen is the fixed size of the old image header
	OldHeaderLen = 360
)

// oldHeaderPrefix is the only non-zero part of the old header
var oldHeaderPrefix = []byte{0x68, 0x01, 0x00}

// Header returns a fresh copy of the header this format writes in front of the payload.
func (f Format) Header() []byte {
	switch f {
	case Old:
		h := make([]byte, OldHeaderLen)
		copy(h, oldHeaderPrefix)
		return h
	default:
		return []byte{SyncByte}
	}
}

// HeaderLen returns the number of leading bytes that precede the payload.
func (f Format) HeaderLen() int {
	if f == Old {
		return OldHeaderLen
	}
	return 1
}

// ShiftIn adds one decoded bit to a partially assembled byte.
// New shifts left and sets bit 0, Old shifts right and sets bit 7.
func (f Format) ShiftIn(acc byte, bit bool) byte {
	if f == Old {
		acc >>= 1
		if bit {
			acc |= 0x80
		}
		return acc
	}
	acc <<= 1
	if bit {
		acc |= 0x01
	}
	return acc
}

// Bit returns the i-th bit of b in tape arrival order (i = 0 is sent first).
// It is the inverse of eight successive ShiftIn calls.
func (f Format) Bit(b byte, i int) bool {
	if f == Old {
		return b>>uint(i)&1 == 1
	}
	return b>>uint(7-i)&1 == 1
}

func (f Format) String() string {
	switch f {
	case New:
		return "new"
	case Old:
		return "old"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat converts a format name ("new" or "old") to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "new":
		return New, nil
	case "old":
		return Old, nil
	default:
		return New, fmt.Errorf("unknown tape format: %q (supported: new, old)", s)
	}
}

// Detect guesses the format of a tape image from its leading bytes.
// The second return value is false when neither header is recognised.
func Detect(data []byte) (Format, bool) {
	if len(data) >= OldHeaderLen && bytes.HasPrefix(data, oldHeaderPrefix) {
		return Old, true
	}
	if len(data) > 0 && data[0] == SyncByte {
		return New, true
	}
	return New, false
}
