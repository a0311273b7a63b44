// Package mp4probe inspects MP4 files: codec, frame size, sample count and duration.
package mp4probe

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/Eyevinn/mp4ff/mp4"

	"github.com/user/timelapse/pkg/ports"
)

// Codec represents a video codec type.
type Codec string

const (
	CodecH264    Codec = "h264"
	CodecMPEG4   Codec = "mpeg4"
	CodecAV1     Codec = "av1"
	CodecHEVC    Codec = "hevc"
	CodecUnknown Codec = "unknown"
)

// Info describes the first video track of an MP4 file.
type Info struct {
	Codec       Codec
	Width       int
	Height      int
	SampleCount int // Number of video frames; 0 for fragmented files
	Timescale   uint32
	DurationMs  int64 // Sum of sample durations
	Fragmented  bool
}

// FPS returns the average frame rate, or 0 when unknown.
func (i Info) FPS() float64 {
	if i.DurationMs <= 0 || i.SampleCount == 0 {
		return 0
	}
	return float64(i.SampleCount) * 1000 / float64(i.DurationMs)
}

// ProbeFile inspects the MP4 file at path.
func ProbeFile(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return ProbeReader(f)
}

// ProbeBytes inspects MP4 data held in memory.
func ProbeBytes(data []byte) (Info, error) {
	return ProbeReader(bytes.NewReader(data))
}

// ProbeReader inspects MP4 data from r.
func ProbeReader(r io.ReadSeeker) (Info, error) {
	mp4File, err := mp4.DecodeFile(r)
	if err != nil {
		return Info{}, fmt.Errorf("decode mp4: %w", err)
	}

	if mp4File.IsFragmented() {
		if mp4File.Init != nil && mp4File.Init.Moov != nil {
			for _, trak := range mp4File.Init.Moov.Traks {
				if isVideoTrack(trak) {
					info := trackInfo(trak)
					info.Fragmented = true
					return info, nil
				}
			}
		}
		return Info{}, fmt.Errorf("no video track found")
	}

	if mp4File.Moov != nil {
		for _, trak := range mp4File.Moov.Traks {
			if isVideoTrack(trak) {
				info := trackInfo(trak)
				countSamples(trak, &info)
				return info, nil
			}
		}
	}

	return Info{}, fmt.Errorf("no video track found")
}

func isVideoTrack(trak *mp4.TrakBox) bool {
	return trak.Mdia != nil && trak.Mdia.Hdlr != nil && trak.Mdia.Hdlr.HandlerType == "vide"
}

func trackInfo(trak *mp4.TrakBox) Info {
	info := Info{Codec: CodecUnknown}

	if trak.Tkhd != nil {
		info.Width = int(uint32(trak.Tkhd.Width) >> 16)
		info.Height = int(uint32(trak.Tkhd.Height) >> 16)
	}
	if trak.Mdia.Mdhd != nil {
		info.Timescale = trak.Mdia.Mdhd.Timescale
	}

	if trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil || trak.Mdia.Minf.Stbl.Stsd == nil {
		return info
	}

	for _, child := range trak.Mdia.Minf.Stbl.Stsd.Children {
		if entry, ok := child.(*mp4.VisualSampleEntryBox); ok {
			info.Width = int(entry.Width)
			info.Height = int(entry.Height)
		}
		switch child.Type() {
		case "avc1", "avc3":
			info.Codec = CodecH264
		case "mp4v":
			info.Codec = CodecMPEG4
		case "av01":
			info.Codec = CodecAV1
		case "hvc1", "hev1":
			info.Codec = CodecHEVC
		default:
			continue
		}
		break
	}
	return info
}

func countSamples(trak *mp4.TrakBox, info *Info) {
	if trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil {
		return
	}
	stbl := trak.Mdia.Minf.Stbl

	if stbl.Stsz != nil {
		info.SampleCount = int(stbl.Stsz.SampleNumber)
	}

	if stbl.Stts != nil && info.Timescale > 0 {
		var total uint64
		for i, count := range stbl.Stts.SampleCount {
			total += uint64(count) * uint64(stbl.Stts.SampleTimeDelta[i])
		}
		info.DurationMs = int64(total * 1000 / uint64(info.Timescale))
	}
}

// Prober implements ports.VideoProber on top of ProbeFile.
type Prober struct{}

// NewProber creates a Prober.
func NewProber() *Prober {
	return &Prober{}
}

// ProbeVideo inspects the MP4 file at path.
func (p *Prober) ProbeVideo(path string) (ports.VideoInfo, error) {
	info, err := ProbeFile(path)
	if err != nil {
		return ports.VideoInfo{}, err
	}
	return ports.VideoInfo{
		Codec:      string(info.Codec),
		Width:      info.Width,
		Height:     info.Height,
		Frames:     info.SampleCount,
		DurationMs: info.DurationMs,
	}, nil
}

var _ ports.VideoProber = (*Prober)(nil)
