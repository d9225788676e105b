// ABOUTME: Bit reversal within a byte
// ABOUTME: Maps between the old and new payload bit orders
package tap

// Reverse mirrors the bits of b (bit i moves to bit 7-i). Reverse(Reverse(b)) == b.
func Reverse(b byte) byte {
	b = b>>4 | b<<4
	b = (b&0xCC)>>2 | (b&0x33)<<2
	b = (b&0xAA)>>1 | (b&0x55)<<1
	return b
}
