// Package imagedecoder decodes still images with the standard image codecs
// plus the BMP, TIFF and WebP decoders from golang.org/x/image.
package imagedecoder

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/user/timelapse/pkg/ports"
)

// Decoder implements ports.ImageDecoder using image.Decode.
type Decoder struct{}

// New creates a new Decoder.
func New() *Decoder {
	return &Decoder{}
}

// DecodeImage decodes image data, detecting the format from its header.
// Pixels are returned in the source color model without conversion.
func (d *Decoder) DecodeImage(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", fmt.Errorf("empty image data")
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", err
	}
	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, format, fmt.Errorf("image has no pixels")
	}
	return img, format, nil
}

var _ ports.ImageDecoder = (*Decoder)(nil)
