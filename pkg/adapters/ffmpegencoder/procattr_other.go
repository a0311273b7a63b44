//go:build !unix

package ffmpegencoder

import "os/exec"

func detach(cmd *exec.Cmd) {}
