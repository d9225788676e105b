// ABOUTME: Tape image framing and old/new transcoding
// ABOUTME: Splits headers from payloads and rewrites them with reversed bit order
package tap

import (
	"errors"
	"fmt"
)

// ErrTruncated is returned when an image is shorter than its own header.
var ErrTruncated = errors.New("tape image shorter than header")

// Image is a tape payload tagged with the format its bytes are assembled in.
type Image struct {
	Format  Format
	Payload []byte
}

// Parse splits raw image bytes into header and payload. The header bytes
// are skipped without inspection; the payload shares memory with data.
func Parse(data []byte, format Format) (Image, error) {
	n := format.HeaderLen()
	if len(data) < n {
		return Image{}, fmt.Errorf("%s image of %d bytes: %w", format, len(data), ErrTruncated)
	}
	return Image{Format: format, Payload: data[n:]}, nil
}

// Bytes serializes the image with a freshly built header.
func (img Image) Bytes() []byte {
	header := img.Format.Header()
	out := make([]byte, 0, len(header)+len(img.Payload))
	out = append(out, header...)
	return append(out, img.Payload...)
}

// Convert returns the image re-expressed in the target format. Converting
// to the image's own format returns a copy.
func (img Image) Convert(to Format) Image {
	payload := make([]byte, len(img.Payload))
	if to == img.Format {
		copy(payload, img.Payload)
	} else {
		for i, b := range img.Payload {
			payload[i] = Reverse(b)
		}
	}
	return Image{Format: to, Payload: payload}
}

// ToNew converts a complete old image into a complete new image.
func ToNew(old []byte) ([]byte, error) {
	img, err := Parse(old, Old)
	if err != nil {
		return nil, err
	}
	return img.Convert(New).Bytes(), nil
}

// ToOld converts a complete new image into a complete old image. The old
// header is a placeholder ("68 01 00" and zeros); the original header
// metadata is not recoverable from a new image.
func ToOld(newImage []byte) ([]byte, error) {
	img, err := Parse(newImage, New)
	if err != nil {
		return nil, err
	}
	return img.Convert(Old).Bytes(), nil
}
