package mocks

import (
	"image"

	"github.com/user/timelapse/pkg/ports"
)

// VideoEncoder is a mock implementation of ports.VideoEncoder.
type VideoEncoder struct {
	BeginFunc       func(outputPath string, width, height, fps int, opts ports.EncoderOptions) error
	EncodeFrameFunc func(img image.Image) error
	EndFunc         func() error

	// Recorded calls for verification
	BeginCalls []BeginCall
	Frames     []image.Image // Frames accepted by EncodeFrame
	EndCalls   int
}

// BeginCall records a call to Begin.
type BeginCall struct {
	OutputPath string
	Width      int
	Height     int
	FPS        int
	Options    ports.EncoderOptions
}

func (m *VideoEncoder) Begin(outputPath string, width, height, fps int, opts ports.EncoderOptions) error {
	m.BeginCalls = append(m.BeginCalls, BeginCall{
		OutputPath: outputPath,
		Width:      width,
		Height:     height,
		FPS:        fps,
		Options:    opts,
	})
	if m.BeginFunc != nil {
		return m.BeginFunc(outputPath, width, height, fps, opts)
	}
	return nil
}

func (m *VideoEncoder) EncodeFrame(img image.Image) error {
	if m.EncodeFrameFunc != nil {
		if err := m.EncodeFrameFunc(img); err != nil {
			return err
		}
	}
	m.Frames = append(m.Frames, img)
	return nil
}

func (m *VideoEncoder) End() error {
	m.EndCalls++
	if m.EndFunc != nil {
		return m.EndFunc()
	}
	return nil
}

var _ ports.VideoEncoder = (*VideoEncoder)(nil)
