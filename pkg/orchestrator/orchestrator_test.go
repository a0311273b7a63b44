package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/user/timelapse/pkg/adapters/logger"
	"github.com/user/timelapse/pkg/mocks"
	"github.com/user/timelapse/pkg/pipeline"
	"github.com/user/timelapse/pkg/ports"
)

// mockScanStage is a mock for the scan stage.
type mockScanStage struct {
	result pipeline.ScanResult
	err    error
	input  pipeline.ScanInput
}

func (m *mockScanStage) Execute(ctx context.Context, input pipeline.ScanInput) (pipeline.ScanResult, error) {
	m.input = input
	if m.err != nil {
		return pipeline.ScanResult{}, m.err
	}
	return m.result, nil
}

// mockOutpathStage is a mock for the output path stage.
type mockOutpathStage struct {
	result pipeline.OutputPathResult
	err    error
	input  pipeline.OutputPathInput
	called bool
}

func (m *mockOutpathStage) Execute(ctx context.Context, input pipeline.OutputPathInput) (pipeline.OutputPathResult, error) {
	m.called = true
	m.input = input
	if m.err != nil {
		return pipeline.OutputPathResult{}, m.err
	}
	return m.result, nil
}

// mockAssembleStage is a mock for the assemble stage.
type mockAssembleStage struct {
	result pipeline.AssembleResult
	err    error
	input  pipeline.AssembleInput
	called bool
}

func (m *mockAssembleStage) Execute(ctx context.Context, input pipeline.AssembleInput) (pipeline.AssembleResult, error) {
	m.called = true
	m.input = input
	return m.result, m.err
}

type harness struct {
	fs       *mocks.FileSystem
	prober   *mocks.VideoProber
	scan     *mockScanStage
	outpath  *mockOutpathStage
	assemble *mockAssembleStage
	orch     *Orchestrator
}

func newHarness() *harness {
	h := &harness{
		fs:     mocks.NewFileSystem(),
		prober: &mocks.VideoProber{Info: ports.VideoInfo{Codec: "h264", Width: 640, Height: 480, Frames: 13}},
		scan: &mockScanStage{result: pipeline.ScanResult{
			Images: []pipeline.ImageRef{
				{Path: "/in/a.png", Name: "a.png"},
				{Path: "/in/b.png", Name: "b.png"},
				{Path: "/in/c.png", Name: "c.png"},
			},
			Skipped: 1,
		}},
		outpath: &mockOutpathStage{result: pipeline.OutputPathResult{Path: "/out/sky.mp4"}},
		assemble: &mockAssembleStage{result: pipeline.AssembleResult{
			Geometry:      pipeline.FrameGeometry{Width: 640, Height: 480},
			SourceFrames:  3,
			HoldFrames:    10,
			FramesWritten: 13,
			DurationMs:    1300,
		}},
	}
	h.fs.AddDir("/in")
	h.fs.AddFile("/out/sky.mp4", make([]byte, 2048))
	h.orch = New(h.scan, h.outpath, h.assemble, h.fs, h.prober, logger.NewNoop())
	return h
}

func testConfig() Config {
	config := DefaultConfig()
	config.InputDir = "/in"
	config.OutputBase = "/out/sky"
	config.FPS = 10
	return config
}

func TestOrchestrator_Run(t *testing.T) {
	h := newHarness()

	result, err := h.orch.Run(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if h.scan.input.Dir != "/in" || h.scan.input.Order != pipeline.SortLexical {
		t.Errorf("unexpected scan input: %+v", h.scan.input)
	}
	if h.outpath.input.Base != "/out/sky" || h.outpath.input.Policy != pipeline.OverwriteAsk {
		t.Errorf("unexpected outpath input: %+v", h.outpath.input)
	}

	in := h.assemble.input
	if len(in.Images) != 3 || in.OutputPath != "/out/sky.mp4" || in.FPS != 10 {
		t.Errorf("unexpected assemble input: %+v", in)
	}
	if in.EndHoldFrames != 10 {
		t.Errorf("expected hold of one second (10 frames), got %d", in.EndHoldFrames)
	}
	if in.Encoder.Codec != "libx264" || in.Encoder.CRF != 23 {
		t.Errorf("unexpected encoder options: %+v", in.Encoder)
	}

	if result.ImageCount != 3 || result.SkippedFiles != 1 {
		t.Errorf("unexpected image counts: %+v", result)
	}
	if result.FramesWritten != 13 || result.DurationMs != 1300 {
		t.Errorf("unexpected frame counts: %+v", result)
	}
	if result.FileSize != 2048 {
		t.Errorf("expected file size 2048, got %d", result.FileSize)
	}
	if result.Probe == nil || result.Probe.Codec != "h264" {
		t.Errorf("expected probe results, got %+v", result.Probe)
	}
	if len(h.prober.Paths) != 1 || h.prober.Paths[0] != "/out/sky.mp4" {
		t.Errorf("expected one probe of the output, got %v", h.prober.Paths)
	}
}

func TestOrchestrator_Run_NoHold(t *testing.T) {
	h := newHarness()
	config := testConfig()
	config.EndHold = false

	if _, err := h.orch.Run(context.Background(), config); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.assemble.input.EndHoldFrames != 0 {
		t.Errorf("expected no hold frames, got %d", h.assemble.input.EndHoldFrames)
	}
}

func TestOrchestrator_Run_InvalidInputDir(t *testing.T) {
	tests := []struct {
		name string
		dir  string
	}{
		{"empty", ""},
		{"missing", "/nope"},
		{"file", "/out/sky.mp4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			config := testConfig()
			config.InputDir = tt.dir

			_, err := h.orch.Run(context.Background(), config)
			if !pipeline.IsInvalidInputDirectory(err) {
				t.Fatalf("expected InvalidInputDirectoryError, got %v", err)
			}
			if h.outpath.called || h.assemble.called {
				t.Error("no stage should run for an invalid directory")
			}
		})
	}
}

func TestOrchestrator_Run_ScanError(t *testing.T) {
	h := newHarness()
	h.scan.err = pipeline.ErrEmptyInput

	_, err := h.orch.Run(context.Background(), testConfig())
	if !errors.Is(err, pipeline.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if h.outpath.called || h.assemble.called {
		t.Error("later stages should not run after a scan failure")
	}
}

func TestOrchestrator_Run_OutpathError(t *testing.T) {
	h := newHarness()
	boom := errors.New("permission denied")
	h.outpath.err = boom

	if _, err := h.orch.Run(context.Background(), testConfig()); !errors.Is(err, boom) {
		t.Fatalf("expected outpath error, got %v", err)
	}
	if h.assemble.called {
		t.Error("assemble should not run without an output path")
	}
}

func TestOrchestrator_Run_Partial(t *testing.T) {
	h := newHarness()
	unreadable := &pipeline.UnreadableImageError{Path: "/in/b.png", Err: errors.New("bad data")}
	h.assemble.result = pipeline.AssembleResult{
		Geometry:      pipeline.FrameGeometry{Width: 640, Height: 480},
		SourceFrames:  1,
		FramesWritten: 1,
		DurationMs:    100,
		Partial:       true,
	}
	h.assemble.err = unreadable

	result, err := h.orch.Run(context.Background(), testConfig())
	if !pipeline.IsUnreadableImage(err) {
		t.Fatalf("expected UnreadableImageError, got %v", err)
	}
	if !result.Partial || result.FramesWritten != 1 {
		t.Errorf("expected partial result with 1 frame, got %+v", result)
	}
	if result.FileSize != 2048 || result.Probe == nil {
		t.Error("partial output should still be inspected")
	}
}

func TestOrchestrator_Run_AssembleErrorWithoutOutput(t *testing.T) {
	h := newHarness()
	h.assemble.err = &pipeline.UnreadableImageError{Path: "/in/a.png", Err: errors.New("bad data")}
	h.assemble.result = pipeline.AssembleResult{}

	result, err := h.orch.Run(context.Background(), testConfig())
	if err == nil {
		t.Fatal("expected error")
	}
	if len(h.prober.Paths) != 0 || result.FileSize != 0 {
		t.Error("nothing should be inspected when no output was produced")
	}
}

func TestOrchestrator_Run_ProbeFailureIsNotFatal(t *testing.T) {
	h := newHarness()
	h.prober.Err = errors.New("not an mp4")

	result, err := h.orch.Run(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("probe failure should not fail the run: %v", err)
	}
	if result.Probe != nil {
		t.Error("expected no probe results")
	}
}

func TestOrchestrator_Run_NilProber(t *testing.T) {
	h := newHarness()
	orch := New(h.scan, h.outpath, h.assemble, h.fs, nil, logger.NewNoop())

	result, err := orch.Run(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Probe != nil {
		t.Error("expected no probe results without a prober")
	}
}

func TestConfig_EndHoldFrames(t *testing.T) {
	config := DefaultConfig()
	if got := config.EndHoldFrames(); got != 24 {
		t.Errorf("expected 24 hold frames by default, got %d", got)
	}
	config.EndHold = false
	if got := config.EndHoldFrames(); got != 0 {
		t.Errorf("expected 0 hold frames, got %d", got)
	}
}

func TestOrchestrator_Run_StageOrder(t *testing.T) {
	h := newHarness()
	var order []string

	scanStage := pipeline.StageFunc[pipeline.ScanInput, pipeline.ScanResult](
		func(ctx context.Context, in pipeline.ScanInput) (pipeline.ScanResult, error) {
			order = append(order, "scan")
			return h.scan.Execute(ctx, in)
		})
	outpathStage := pipeline.StageFunc[pipeline.OutputPathInput, pipeline.OutputPathResult](
		func(ctx context.Context, in pipeline.OutputPathInput) (pipeline.OutputPathResult, error) {
			order = append(order, "outpath")
			return h.outpath.Execute(ctx, in)
		})
	assembleStage := pipeline.StageFunc[pipeline.AssembleInput, pipeline.AssembleResult](
		func(ctx context.Context, in pipeline.AssembleInput) (pipeline.AssembleResult, error) {
			order = append(order, "assemble")
			return h.assemble.Execute(ctx, in)
		})

	orch := New(scanStage, outpathStage, assembleStage, h.fs, nil, logger.NewNoop())
	if _, err := orch.Run(context.Background(), testConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := strings.Join(order, ","); got != "scan,outpath,assemble" {
		t.Errorf("unexpected stage order: %s", got)
	}
}
