package mocks

import (
	"github.com/user/timelapse/pkg/ports"
)

// VideoProber is a mock implementation of ports.VideoProber.
type VideoProber struct {
	Info ports.VideoInfo
	Err  error

	Paths []string
}

func (m *VideoProber) ProbeVideo(path string) (ports.VideoInfo, error) {
	m.Paths = append(m.Paths, path)
	return m.Info, m.Err
}

var _ ports.VideoProber = (*VideoProber)(nil)
