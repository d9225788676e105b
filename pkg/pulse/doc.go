// ABOUTME: Orao cassette pulse codec package
// ABOUTME: Provides the run-length pulse decoder and square-wave encoder
// Package pulse converts between cassette pulse trains and tape payload bytes.
//
// Every bit is one full square-wave cycle. A 0 bit uses half-periods of 9
// samples, a 1 bit half-periods of 17 samples. The decoder scores only the
// first half-period of each cycle against a threshold of 11 samples and
// looks at nothing but the sign of each sample.
//
// Widths are sample counts, so the codec does not depend on the sample rate.
//
// Example:
//
//	enc, err := pulse.NewEncoder(tap.New, pulse.DefaultConfig())
//	samples := enc.Encode(payload)
//
//	dec, err := pulse.NewDecoder(tap.New, pulse.DefaultConfig())
//	payload := dec.Decode(samples)
package pulse
