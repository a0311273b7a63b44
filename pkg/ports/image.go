package ports

import (
	"image"
)

// ImageDecoder turns encoded still image data into pixels.
type ImageDecoder interface {
	// DecodeImage decodes image data and reports the detected format name.
	DecodeImage(data []byte) (image.Image, string, error)
}
