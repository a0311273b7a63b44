package pipeline

import (
	"fmt"

	"github.com/user/timelapse/pkg/ports"
)

// =============================================================================
// Common Types
// =============================================================================

// ImageRef identifies one source image of a timelapse.
type ImageRef struct {
	Path  string // Full path to the file
	Name  string // Base file name
	Ext   string // Lower-cased extension including the dot
	Index int    // Position in the sorted sequence
}

// FrameGeometry is the pixel size every frame of one job must share.
type FrameGeometry struct {
	Width  int
	Height int
}

// String returns the geometry as WxH.
func (g FrameGeometry) String() string {
	return fmt.Sprintf("%dx%d", g.Width, g.Height)
}

// IsZero reports whether the geometry has not been established.
func (g FrameGeometry) IsZero() bool {
	return g.Width == 0 && g.Height == 0
}

// SortOrder selects how image file names are ordered.
type SortOrder string

const (
	// SortLexical orders names by byte-wise string comparison.
	SortLexical SortOrder = "lexical"
	// SortNatural compares digit runs numerically (img2 < img10).
	SortNatural SortOrder = "natural"
)

// OverwritePolicy decides what happens when the output file already exists.
type OverwritePolicy string

const (
	OverwriteAsk    OverwritePolicy = "ask"
	OverwriteAlways OverwritePolicy = "always"
	OverwriteNever  OverwritePolicy = "never"
)

// =============================================================================
// Scan Stage Types
// =============================================================================

// ScanInput contains parameters for collecting source images.
type ScanInput struct {
	Dir   string
	Order SortOrder
}

// ScanResult contains the ordered images found in a directory.
type ScanResult struct {
	Images  []ImageRef
	Skipped int // Regular files rejected by the extension filter
}

// =============================================================================
// Output Path Stage Types
// =============================================================================

// OutputPathInput contains parameters for resolving the output file path.
type OutputPathInput struct {
	Base      string // Requested base name, without extension
	Extension string // Container extension including the dot (default: .mp4)
	Policy    OverwritePolicy
}

// OutputPathResult contains the resolved output path.
type OutputPathResult struct {
	Path      string
	Overwrite bool // True when Path already exists and will be replaced
	Suffix    int  // Numeric suffix appended to the base (0 = none)
}

// =============================================================================
// Assemble Stage Types
// =============================================================================

// AssembleInput describes one assembly job.
type AssembleInput struct {
	Images        []ImageRef
	OutputPath    string
	FPS           int // Frames per second (default: 24)
	EndHoldFrames int // Extra copies of the last frame (0 or FPS)
	Encoder       ports.EncoderOptions
}

// AssembleResult reports what was written to the encoder sink.
type AssembleResult struct {
	Geometry      FrameGeometry
	SourceFrames  int // Source images written
	HoldFrames    int // End-hold copies written
	FramesWritten int // SourceFrames + HoldFrames
	DurationMs    int
	Partial       bool // True when the job stopped early but the sink was finalized
}

// DurationMs returns the playback length of frames at fps.
func DurationMs(frames, fps int) int {
	if fps <= 0 {
		return 0
	}
	return frames * 1000 / fps
}
