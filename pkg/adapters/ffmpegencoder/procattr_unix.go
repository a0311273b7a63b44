//go:build unix

package ffmpegencoder

import (
	"os/exec"
	"syscall"
)

// detach moves ffmpeg into its own process group so a terminal Ctrl-C reaches
// only this process, which then finalizes the file through stdin EOF.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}
