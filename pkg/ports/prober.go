package ports

// VideoInfo describes the video track of a finished file.
type VideoInfo struct {
	Codec      string
	Width      int
	Height     int
	Frames     int
	DurationMs int64
}

// VideoProber reads back the properties of an encoded video file.
type VideoProber interface {
	ProbeVideo(path string) (VideoInfo, error)
}
