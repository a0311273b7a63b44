// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/user/timelapse/pkg/pipeline"
	"github.com/user/timelapse/pkg/ports"
)

// Config contains all configuration for the orchestrator.
type Config struct {
	// Input
	InputDir string
	Sort     pipeline.SortOrder

	// Output
	OutputBase string // Base name without extension
	Overwrite  pipeline.OverwritePolicy

	// Encoding
	FPS     int
	EndHold bool // Repeat the last frame for one second
	Codec   string
	CRF     int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Sort:      pipeline.SortLexical,
		Overwrite: pipeline.OverwriteAsk,
		FPS:       24,
		EndHold:   true,
		Codec:     "libx264",
		CRF:       23,
	}
}

// EndHoldFrames returns how many copies of the last frame are appended.
func (c Config) EndHoldFrames() int {
	if !c.EndHold {
		return 0
	}
	return c.FPS
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	scanStage     pipeline.Stage[pipeline.ScanInput, pipeline.ScanResult]
	outpathStage  pipeline.Stage[pipeline.OutputPathInput, pipeline.OutputPathResult]
	assembleStage pipeline.Stage[pipeline.AssembleInput, pipeline.AssembleResult]
	fs            ports.FileSystem
	prober        ports.VideoProber
	logger        ports.Logger
}

// New creates a new Orchestrator. prober may be nil to skip verification.
func New(
	scanStage pipeline.Stage[pipeline.ScanInput, pipeline.ScanResult],
	outpathStage pipeline.Stage[pipeline.OutputPathInput, pipeline.OutputPathResult],
	assembleStage pipeline.Stage[pipeline.AssembleInput, pipeline.AssembleResult],
	fs ports.FileSystem,
	prober ports.VideoProber,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		scanStage:     scanStage,
		outpathStage:  outpathStage,
		assembleStage: assembleStage,
		fs:            fs,
		prober:        prober,
		logger:        logger,
	}
}

// Run executes the complete pipeline.
//
// When assembly stops part way, the partial video is kept and Run returns
// both the error and a RunResult describing what was written.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	result := RunResult{
		InputDir: config.InputDir,
		FPS:      config.FPS,
		Codec:    config.Codec,
		CRF:      config.CRF,
	}

	if err := o.validateInputDir(config.InputDir); err != nil {
		o.logger.Error("Invalid input directory: %v", err)
		return result, err
	}

	// 1. Collect images
	scanned, err := o.scanStage.Execute(ctx, pipeline.ScanInput{Dir: config.InputDir, Order: config.Sort})
	if err != nil {
		o.logger.Error("Failed to collect images: %v", err)
		return result, fmt.Errorf("scan stage: %w", err)
	}
	result.ImageCount = len(scanned.Images)
	result.SkippedFiles = scanned.Skipped
	o.logger.Info("Found %d images in %s", len(scanned.Images), config.InputDir)

	// 2. Resolve output path
	resolved, err := o.outpathStage.Execute(ctx, pipeline.OutputPathInput{Base: config.OutputBase, Policy: config.Overwrite})
	if err != nil {
		o.logger.Error("Failed to resolve output path: %v", err)
		return result, fmt.Errorf("outpath stage: %w", err)
	}
	result.OutputPath = resolved.Path
	result.Overwrote = resolved.Overwrite

	// 3. Assemble video
	assembled, err := o.assembleStage.Execute(ctx, pipeline.AssembleInput{
		Images:        scanned.Images,
		OutputPath:    resolved.Path,
		FPS:           config.FPS,
		EndHoldFrames: config.EndHoldFrames(),
		Encoder:       ports.EncoderOptions{Codec: config.Codec, CRF: config.CRF},
	})
	result.Geometry = assembled.Geometry
	result.SourceFrames = assembled.SourceFrames
	result.HoldFrames = assembled.HoldFrames
	result.FramesWritten = assembled.FramesWritten
	result.DurationMs = assembled.DurationMs
	result.Partial = assembled.Partial

	if result.Partial {
		o.inspect(&result)
	}
	if err != nil {
		o.logger.Error("Failed to assemble video: %v", err)
		return result, fmt.Errorf("assemble stage: %w", err)
	}

	// 4. Verify output
	o.inspect(&result)

	o.logger.Info("Wrote %d frames (%d ms) to %s", result.FramesWritten, result.DurationMs, result.OutputPath)
	return result, nil
}

func (o *Orchestrator) validateInputDir(dir string) error {
	if dir == "" {
		return &pipeline.InvalidInputDirectoryError{Path: dir, Reason: "no directory given"}
	}
	exists, err := o.fs.Exists(dir)
	if err != nil {
		return &pipeline.InvalidInputDirectoryError{Path: dir, Reason: err.Error()}
	}
	if !exists {
		return &pipeline.InvalidInputDirectoryError{Path: dir, Reason: "does not exist"}
	}
	isDir, err := o.fs.IsDir(dir)
	if err != nil {
		return &pipeline.InvalidInputDirectoryError{Path: dir, Reason: err.Error()}
	}
	if !isDir {
		return &pipeline.InvalidInputDirectoryError{Path: dir, Reason: "not a directory"}
	}
	return nil
}

// inspect fills in the file size and probe results. Failures only warn,
// since the video itself was written.
func (o *Orchestrator) inspect(result *RunResult) {
	if size, err := o.fs.Size(result.OutputPath); err == nil {
		result.FileSize = size
	} else {
		o.logger.Warn("Cannot stat %s: %v", result.OutputPath, err)
	}

	if o.prober == nil {
		return
	}
	info, err := o.prober.ProbeVideo(result.OutputPath)
	if err != nil {
		o.logger.Warn("Cannot probe %s: %v", result.OutputPath, err)
		return
	}
	result.Probe = &info
	if info.Frames != 0 && info.Frames != result.FramesWritten {
		o.logger.Warn("%s holds %d frames, expected %d", result.OutputPath, info.Frames, result.FramesWritten)
	}
	o.logger.Debug("Probed %s: %s %dx%d, %d frames", result.OutputPath, info.Codec, info.Width, info.Height, info.Frames)
}

// RunResult contains the results of a pipeline run for summary generation.
type RunResult struct {
	// Input
	InputDir     string
	ImageCount   int
	SkippedFiles int

	// Output
	OutputPath string
	Overwrote  bool
	FileSize   int64

	// Encoding
	FPS   int
	Codec string
	CRF   int

	// Assembly
	Geometry      pipeline.FrameGeometry
	SourceFrames  int
	HoldFrames    int
	FramesWritten int
	DurationMs    int
	Partial       bool

	// Read back from the finished file; nil when probing failed or was skipped
	Probe *ports.VideoInfo
}
