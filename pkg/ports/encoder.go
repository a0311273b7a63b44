package ports

import (
	"image"
)

// VideoEncoder abstracts the video container/codec writer.
// Frames must be submitted from a single goroutine in presentation order.
type VideoEncoder interface {
	// Begin opens the sink for a file at outputPath with fixed dimensions and frame rate.
	Begin(outputPath string, width, height, fps int, opts EncoderOptions) error

	// EncodeFrame appends one frame. The image bounds must match the Begin dimensions.
	EncodeFrame(img image.Image) error

	// End flushes the codec, writes the container trailer and closes the file.
	// It must be called once after a successful Begin, also when encoding failed.
	End() error
}

// EncoderOptions configures video encoding parameters.
type EncoderOptions struct {
	Codec string // Codec identifier (libx264, mpeg4)
	CRF   int    // Constant rate factor: 0-51 (lower is higher quality, 0 = codec default)
}
