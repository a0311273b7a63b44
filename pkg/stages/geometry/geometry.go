// Package geometry reads source images and enforces that every frame of a
// job shares the size established by the first one.
package geometry

import (
	"image"

	"github.com/user/timelapse/pkg/pipeline"
	"github.com/user/timelapse/pkg/ports"
)

// Validator loads images through the file system and decoder ports.
type Validator struct {
	fs      ports.FileSystem
	decoder ports.ImageDecoder
}

// NewValidator creates a Validator.
func NewValidator(fs ports.FileSystem, decoder ports.ImageDecoder) *Validator {
	return &Validator{fs: fs, decoder: decoder}
}

// Load reads and decodes one image. Any failure is an UnreadableImageError.
func (v *Validator) Load(ref pipeline.ImageRef) (image.Image, error) {
	data, err := v.fs.ReadFile(ref.Path)
	if err != nil {
		return nil, &pipeline.UnreadableImageError{Path: ref.Path, Err: err}
	}
	img, _, err := v.decoder.DecodeImage(data)
	if err != nil {
		return nil, &pipeline.UnreadableImageError{Path: ref.Path, Err: err}
	}
	return img, nil
}

// Establish loads the first image of a job and returns its geometry.
func (v *Validator) Establish(ref pipeline.ImageRef) (image.Image, pipeline.FrameGeometry, error) {
	img, err := v.Load(ref)
	if err != nil {
		return nil, pipeline.FrameGeometry{}, err
	}
	return img, Of(img), nil
}

// Check returns a GeometryMismatchError when img does not match want.
func (v *Validator) Check(ref pipeline.ImageRef, img image.Image, want pipeline.FrameGeometry) error {
	if got := Of(img); got != want {
		return &pipeline.GeometryMismatchError{Path: ref.Path, Want: want, Got: got}
	}
	return nil
}

// LoadChecked loads an image and verifies it against want.
func (v *Validator) LoadChecked(ref pipeline.ImageRef, want pipeline.FrameGeometry) (image.Image, error) {
	img, err := v.Load(ref)
	if err != nil {
		return nil, err
	}
	if err := v.Check(ref, img, want); err != nil {
		return nil, err
	}
	return img, nil
}

// Of returns the pixel size of img.
func Of(img image.Image) pipeline.FrameGeometry {
	b := img.Bounds()
	return pipeline.FrameGeometry{Width: b.Dx(), Height: b.Dy()}
}
