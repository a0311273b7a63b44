package pipeline

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when a directory holds no eligible images.
var ErrEmptyInput = errors.New("no eligible images found")

// InvalidInputDirectoryError reports an input path that is missing or not a directory.
type InvalidInputDirectoryError struct {
	Path   string
	Reason string
}

func (e *InvalidInputDirectoryError) Error() string {
	return fmt.Sprintf("path to images must be a directory (%s): %s", e.Path, e.Reason)
}

// IsInvalidInputDirectory reports whether err is an InvalidInputDirectoryError.
func IsInvalidInputDirectory(err error) bool {
	var e *InvalidInputDirectoryError
	return errors.As(err, &e)
}

// UnreadableImageError reports an image that could not be read or decoded.
type UnreadableImageError struct {
	Path string
	Err  error
}

func (e *UnreadableImageError) Error() string {
	return fmt.Sprintf("unreadable image %s: %v", e.Path, e.Err)
}

func (e *UnreadableImageError) Unwrap() error { return e.Err }

// IsUnreadableImage reports whether err is an UnreadableImageError.
func IsUnreadableImage(err error) bool {
	var e *UnreadableImageError
	return errors.As(err, &e)
}

// GeometryMismatchError reports a frame whose size differs from the job geometry.
type GeometryMismatchError struct {
	Path string
	Want FrameGeometry
	Got  FrameGeometry
}

func (e *GeometryMismatchError) Error() string {
	return fmt.Sprintf("frame %s is %s, expected %s", e.Path, e.Got, e.Want)
}

// IsGeometryMismatch reports whether err is a GeometryMismatchError.
func IsGeometryMismatch(err error) bool {
	var e *GeometryMismatchError
	return errors.As(err, &e)
}

// EncoderError reports a failure of the video encoder sink.
type EncoderError struct {
	Op  string // begin, encode, end
	Err error
}

func (e *EncoderError) Error() string {
	return fmt.Sprintf("encoder %s: %v", e.Op, e.Err)
}

func (e *EncoderError) Unwrap() error { return e.Err }
