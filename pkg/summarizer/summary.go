// Package summarizer provides summary generation for timelapse runs.
package summarizer

import (
	"time"

	"github.com/user/timelapse/pkg/orchestrator"
)

// Summary contains all data collected during one run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Source images
	Input InputInfo

	// Encoding settings
	Settings Settings

	// Video output details
	Video VideoInfo

	// Properties read back from the written file; nil when unavailable
	Probe *ProbeInfo

	// Error that ended the run, empty on success
	Error string
}

// InputInfo describes the source directory.
type InputInfo struct {
	Dir          string
	ImageCount   int
	SkippedFiles int
}

// Settings contains the encoding configuration.
type Settings struct {
	FPS     int
	Codec   string
	CRF     int
	Quality string
	Sort    string
}

// VideoInfo contains information about the output video.
type VideoInfo struct {
	OutputPath    string
	Width         int
	Height        int
	SourceFrames  int
	HoldFrames    int
	FramesWritten int
	DurationMs    int
	FileSize      int64
	Overwrote     bool
	Partial       bool
}

// ProbeInfo contains the container-level view of the output video.
type ProbeInfo struct {
	Codec      string
	Width      int
	Height     int
	Frames     int
	DurationMs int64
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// FromRunResult fills input, settings, video and probe data from a run.
func (b *Builder) FromRunResult(r orchestrator.RunResult) *Builder {
	b.WithInput(r.InputDir, r.ImageCount, r.SkippedFiles)
	b.summary.Settings.FPS = r.FPS
	b.summary.Settings.Codec = r.Codec
	b.summary.Settings.CRF = r.CRF
	b.WithVideo(VideoInfo{
		OutputPath:    r.OutputPath,
		Width:         r.Geometry.Width,
		Height:        r.Geometry.Height,
		SourceFrames:  r.SourceFrames,
		HoldFrames:    r.HoldFrames,
		FramesWritten: r.FramesWritten,
		DurationMs:    r.DurationMs,
		FileSize:      r.FileSize,
		Overwrote:     r.Overwrote,
		Partial:       r.Partial,
	})
	if r.Probe != nil {
		b.WithProbe(ProbeInfo{
			Codec:      r.Probe.Codec,
			Width:      r.Probe.Width,
			Height:     r.Probe.Height,
			Frames:     r.Probe.Frames,
			DurationMs: r.Probe.DurationMs,
		})
	}
	return b
}

// WithInput sets source directory information.
func (b *Builder) WithInput(dir string, images, skipped int) *Builder {
	b.summary.Input = InputInfo{
		Dir:          dir,
		ImageCount:   images,
		SkippedFiles: skipped,
	}
	return b
}

// WithSettings sets encoding settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithQuality records the quality preset and sort order names.
func (b *Builder) WithQuality(quality, sort string) *Builder {
	b.summary.Settings.Quality = quality
	b.summary.Settings.Sort = sort
	return b
}

// WithVideo sets video output information.
func (b *Builder) WithVideo(video VideoInfo) *Builder {
	b.summary.Video = video
	return b
}

// WithProbe sets the probed container information.
func (b *Builder) WithProbe(probe ProbeInfo) *Builder {
	b.summary.Probe = &probe
	return b
}

// WithError records the error that ended the run. nil is ignored.
func (b *Builder) WithError(err error) *Builder {
	if err != nil {
		b.summary.Error = err.Error()
	}
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
