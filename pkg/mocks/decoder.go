package mocks

import (
	"fmt"
	"image"

	"github.com/user/timelapse/pkg/ports"
)

// ImageDecoder is a mock implementation of ports.ImageDecoder.
//
// Without DecodeImageFunc it understands fixture data of the form "WxH" and
// returns a blank image of that size; anything else fails to decode.
type ImageDecoder struct {
	DecodeImageFunc func(data []byte) (image.Image, string, error)

	// Decoded records the data of every DecodeImage call.
	Decoded []string
}

// Fixture returns mock image data that decodes to a width x height image.
func Fixture(width, height int) []byte {
	return []byte(fmt.Sprintf("%dx%d", width, height))
}

func (m *ImageDecoder) DecodeImage(data []byte) (image.Image, string, error) {
	m.Decoded = append(m.Decoded, string(data))
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data)
	}

	var w, h int
	if _, err := fmt.Sscanf(string(data), "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
		return nil, "", fmt.Errorf("image: unknown format")
	}
	return image.NewGray(image.Rect(0, 0, w, h)), "mock", nil
}

var _ ports.ImageDecoder = (*ImageDecoder)(nil)
