// Package assemble implements the video assembly stage: it streams the source
// images of a job into the encoder sink, holds the last frame, and always
// finalizes the sink once it has been opened.
package assemble

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/user/timelapse/pkg/adapters/nullprogress"
	"github.com/user/timelapse/pkg/pipeline"
	"github.com/user/timelapse/pkg/ports"
	"github.com/user/timelapse/pkg/stages/geometry"
)

// Stage assembles images into a video.
type Stage struct {
	encoder   ports.VideoEncoder
	validator *geometry.Validator
	progress  ports.ProgressObserver
	logger    ports.Logger
}

// NewStage creates an assemble stage. progress may be nil.
func NewStage(encoder ports.VideoEncoder, validator *geometry.Validator, progress ports.ProgressObserver, logger ports.Logger) *Stage {
	if progress == nil {
		progress = nullprogress.New()
	}
	return &Stage{
		encoder:   encoder,
		validator: validator,
		progress:  progress,
		logger:    logger.WithComponent("assemble"),
	}
}

// Execute writes every image once, in order, followed by EndHoldFrames
// copies of the last one.
//
// When a frame fails after the encoder has started, the frames written so far
// are still finalized into a playable file; the result then has Partial set
// and the error is returned alongside it.
func (s *Stage) Execute(ctx context.Context, input pipeline.AssembleInput) (result pipeline.AssembleResult, err error) {
	if len(input.Images) == 0 {
		return result, pipeline.ErrEmptyInput
	}
	if input.FPS <= 0 {
		return result, fmt.Errorf("frame rate must be positive, got %d", input.FPS)
	}
	if input.EndHoldFrames < 0 {
		return result, fmt.Errorf("end hold must not be negative, got %d", input.EndHoldFrames)
	}

	first, geo, err := s.validator.Establish(input.Images[0])
	if err != nil {
		return result, err
	}
	result.Geometry = geo

	total := len(input.Images) + input.EndHoldFrames
	s.logger.Info("Assembling %d images (%s) at %d fps into %s", len(input.Images), geo, input.FPS, input.OutputPath)

	if err := s.encoder.Begin(input.OutputPath, geo.Width, geo.Height, input.FPS, input.Encoder); err != nil {
		return result, &pipeline.EncoderError{Op: "begin", Err: err}
	}

	s.progress.Start(total)
	defer func() {
		s.progress.Finish()

		loopFailed := err != nil
		if endErr := s.encoder.End(); endErr != nil {
			err = errors.Join(err, &pipeline.EncoderError{Op: "end", Err: endErr})
		} else if loopFailed && result.FramesWritten > 0 {
			result.Partial = true
			s.logger.Warn("Stopped after %d of %d frames, partial video kept at %s", result.FramesWritten, total, input.OutputPath)
		}
		result.DurationMs = pipeline.DurationMs(result.FramesWritten, input.FPS)
	}()

	var last image.Image
	for i, ref := range input.Images {
		img := first
		if i > 0 {
			if img, err = s.validator.LoadChecked(ref, geo); err != nil {
				return result, err
			}
		}
		if err = s.write(ctx, img); err != nil {
			return result, fmt.Errorf("frame %d (%s): %w", i, ref.Name, err)
		}
		result.SourceFrames++
		result.FramesWritten++
		s.logger.Debug("Wrote frame %d/%d: %s", result.FramesWritten, total, ref.Name)
		last = img
	}

	for i := 0; i < input.EndHoldFrames; i++ {
		if err = s.write(ctx, last); err != nil {
			return result, fmt.Errorf("hold frame %d: %w", i, err)
		}
		result.HoldFrames++
		result.FramesWritten++
	}

	return result, nil
}

// write checks for cancellation, then hands one frame to the encoder.
func (s *Stage) write(ctx context.Context, img image.Image) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.encoder.EncodeFrame(img); err != nil {
		return &pipeline.EncoderError{Op: "encode", Err: err}
	}
	s.progress.Advance()
	return nil
}
