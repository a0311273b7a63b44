// Package ffmpegencoder writes MP4 video by piping raw RGBA frames into an
// ffmpeg child process.
//
// ffmpeg writes to a hidden temporary file next to the target. End closes the
// pipe, waits for ffmpeg to write the container trailer and renames the
// temporary file over the target, so an existing file is only replaced by a
// finished video.
package ffmpegencoder

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/image/draw"

	"github.com/user/timelapse/pkg/adapters/logger"
	"github.com/user/timelapse/pkg/ports"
)

const (
	// CodecH264 encodes with libx264.
	CodecH264 = "libx264"
	// CodecMPEG4 encodes MPEG-4 Part 2, the closest match to OpenCV's mp4v.
	CodecMPEG4 = "mpeg4"

	// DefaultCodec is used when EncoderOptions.Codec is empty.
	DefaultCodec = CodecH264

	defaultCRF     = 23
	defaultQScale  = 5
	stderrTailSize = 2048
)

// Options configures the encoder process.
type Options struct {
	FFmpegPath string // Optional explicit ffmpeg binary
	Logger     ports.Logger
}

// Encoder implements ports.VideoEncoder using an ffmpeg external process.
type Encoder struct {
	opts Options
	log  ports.Logger

	mu         sync.Mutex
	width      int
	height     int
	outputPath string
	tempPath   string
	cmd        *exec.Cmd
	stdin      io.WriteCloser
	stderr     bytes.Buffer
	frame      *image.RGBA
	frameCount int
}

// New creates a new ffmpeg-backed encoder.
func New(opts Options) *Encoder {
	log := opts.Logger
	if log == nil {
		log = logger.NewNoop()
	}
	return &Encoder{
		opts: opts,
		log:  log.WithComponent("ffmpeg"),
	}
}

// Begin starts ffmpeg for a video of the given size and frame rate.
func (e *Encoder) Begin(outputPath string, width, height, fps int, opts ports.EncoderOptions) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cmd != nil {
		return fmt.Errorf("ffmpegencoder: already started for %s", e.outputPath)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("ffmpegencoder: invalid frame size %dx%d", width, height)
	}
	if fps <= 0 {
		return fmt.Errorf("ffmpegencoder: invalid frame rate %d", fps)
	}

	ffmpegPath, err := FindFFmpeg(e.opts.FFmpegPath)
	if err != nil {
		return err
	}

	dir, name := filepath.Split(outputPath)
	if dir == "" {
		dir = "."
	}
	tmpFile, err := os.CreateTemp(dir, "."+name+".tmp-*.mp4")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tmpFile.Name()
	tmpFile.Close()

	args, err := BuildArgs(width, height, fps, opts, tempPath)
	if err != nil {
		os.Remove(tempPath)
		return err
	}

	e.stderr.Reset()
	cmd := exec.Command(ffmpegPath, args...)
	cmd.Stderr = &e.stderr
	detach(cmd)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("get stdin pipe: %w", err)
	}

	e.log.Debug("Starting %s %s", ffmpegPath, strings.Join(args, " "))
	if err := cmd.Start(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("start ffmpeg: %w", err)
	}

	e.cmd = cmd
	e.stdin = stdin
	e.width = width
	e.height = height
	e.outputPath = outputPath
	e.tempPath = tempPath
	e.frame = image.NewRGBA(image.Rect(0, 0, width, height))
	e.frameCount = 0
	return nil
}

// EncodeFrame writes one frame to ffmpeg.
func (e *Encoder) EncodeFrame(img image.Image) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stdin == nil {
		return ErrNotInitialized
	}

	bounds := img.Bounds()
	if bounds.Dx() != e.width || bounds.Dy() != e.height {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrFrameSize, bounds.Dx(), bounds.Dy(), e.width, e.height)
	}

	draw.Draw(e.frame, e.frame.Bounds(), img, bounds.Min, draw.Src)

	if _, err := e.stdin.Write(e.frame.Pix); err != nil {
		return fmt.Errorf("write frame %d: %w", e.frameCount, err)
	}
	e.frameCount++
	return nil
}

// End closes the input pipe, waits for ffmpeg and moves the finished file into
// place. The temporary file is removed when ffmpeg fails or no frame was written.
func (e *Encoder) End() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cmd == nil {
		return ErrNotInitialized
	}

	defer func() {
		e.cmd = nil
		e.stdin = nil
		e.frame = nil
		e.tempPath = ""
	}()

	e.stdin.Close()
	if err := e.cmd.Wait(); err != nil {
		os.Remove(e.tempPath)
		return fmt.Errorf("ffmpeg exited after %d frames: %w\nstderr: %s", e.frameCount, err, stderrTail(e.stderr.String()))
	}

	if e.frameCount == 0 {
		os.Remove(e.tempPath)
		return ErrNoFrames
	}

	if err := os.Chmod(e.tempPath, 0o644); err != nil {
		os.Remove(e.tempPath)
		return fmt.Errorf("set video permissions: %w", err)
	}
	if err := os.Rename(e.tempPath, e.outputPath); err != nil {
		os.Remove(e.tempPath)
		return fmt.Errorf("move video into place: %w", err)
	}

	e.log.Debug("Wrote %d frames to %s", e.frameCount, e.outputPath)
	return nil
}

// FrameCount returns the number of frames accepted since Begin.
func (e *Encoder) FrameCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frameCount
}

// BuildArgs returns the ffmpeg command line for one encoding job.
func BuildArgs(width, height, fps int, opts ports.EncoderOptions, output string) ([]string, error) {
	codec := opts.Codec
	if codec == "" {
		codec = DefaultCodec
	}

	odd := width%2 != 0 || height%2 != 0

	args := []string{
		"-hide_banner",
		"-loglevel", "error",
		"-y",
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-s", fmt.Sprintf("%dx%d", width, height),
		"-framerate", strconv.Itoa(fps),
		"-i", "pipe:0",
		"-an",
		"-c:v", codec,
	}

	switch codec {
	case CodecH264:
		// yuv420p needs even sizes; odd sizes keep full chroma instead of being cropped.
		pixFmt := "yuv420p"
		if odd {
			pixFmt = "yuv444p"
		}
		crf := opts.CRF
		if crf <= 0 || crf > 51 {
			crf = defaultCRF
		}
		args = append(args, "-preset", "medium", "-pix_fmt", pixFmt, "-crf", strconv.Itoa(crf))
	case CodecMPEG4:
		if odd {
			return nil, fmt.Errorf("%w: %s with %dx%d", ErrOddDimensions, codec, width, height)
		}
		args = append(args, "-pix_fmt", "yuv420p", "-q:v", strconv.Itoa(qscale(opts.CRF)))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCodec, codec)
	}

	args = append(args,
		"-movflags", "+faststart",
		"-f", "mp4",
		output,
	)
	return args, nil
}

// qscale maps a 0-51 CRF to mpeg4's 2-31 quantizer scale.
func qscale(crf int) int {
	if crf <= 0 {
		return defaultQScale
	}
	q := 2 + crf*29/51
	if q > 31 {
		q = 31
	}
	return q
}

func stderrTail(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > stderrTailSize {
		s = "..." + s[len(s)-stderrTailSize:]
	}
	return s
}

var _ ports.VideoEncoder = (*Encoder)(nil)
