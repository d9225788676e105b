// ABOUTME: Orao tape image package
// ABOUTME: Provides the New/Old TAP formats, bit reversal and transcoding
// Package tap describes the two Orao TAP image layouts and converts between them.
//
// A new image is a single sync byte (0x4F) followed by the payload, each byte
// assembled most significant bit first. An old image is a 360-byte header
// (0x68 0x01 0x00 then zeros) followed by the payload, each byte assembled
// least significant bit first. The payload of one format is therefore the
// bit-reversed payload of the other.
//
// Example:
//
//	newImage, err := tap.ToNew(oldImage)
//
//	img, err := tap.Parse(data, tap.New)
//	old := img.Convert(tap.Old).Bytes()
package tap
