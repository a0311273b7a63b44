package ffmpegencoder

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

var (
	// ErrFFmpegNotFound is returned when no ffmpeg binary can be located.
	ErrFFmpegNotFound = errors.New("ffmpegencoder: ffmpeg not found")
	// ErrNotInitialized is returned when EncodeFrame or End is called without Begin.
	ErrNotInitialized = errors.New("ffmpegencoder: encoder not initialized")
	// ErrUnsupportedCodec is returned for codec identifiers the encoder does not know.
	ErrUnsupportedCodec = errors.New("ffmpegencoder: unsupported codec")
	// ErrOddDimensions is returned when a 4:2:0-only codec gets an odd width or height.
	ErrOddDimensions = errors.New("ffmpegencoder: codec requires even frame dimensions")
	// ErrNoFrames is returned by End when no frame was accepted.
	ErrNoFrames = errors.New("ffmpegencoder: no frames encoded")
	// ErrFrameSize is returned when a frame does not match the Begin dimensions.
	ErrFrameSize = errors.New("ffmpegencoder: frame size does not match")
)

// FindFFmpeg searches for ffmpeg.
// Priority: 1) customPath, 2) FFMPEG_PATH env, 3) PATH, 4) common locations
func FindFFmpeg(customPath string) (string, error) {
	if customPath != "" {
		if _, err := os.Stat(customPath); err == nil {
			return customPath, nil
		}
		return "", fmt.Errorf("%w: custom path %s not found", ErrFFmpegNotFound, customPath)
	}

	if envPath := os.Getenv("FFMPEG_PATH"); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
		return "", fmt.Errorf("%w: FFMPEG_PATH %s not found", ErrFFmpegNotFound, envPath)
	}

	execName := "ffmpeg"
	if runtime.GOOS == "windows" {
		execName = "ffmpeg.exe"
	}
	if path, err := exec.LookPath(execName); err == nil {
		return path, nil
	}

	for _, p := range commonPaths() {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w. %s", ErrFFmpegNotFound, InstallHint())
}

// IsAvailable checks if ffmpeg can be located without a custom path.
func IsAvailable() bool {
	_, err := FindFFmpeg("")
	return err == nil
}

// InstallHint returns platform-specific installation instructions.
func InstallHint() string {
	switch runtime.GOOS {
	case "darwin":
		return "Install with: brew install ffmpeg"
	case "linux":
		return "Install with: apt-get install ffmpeg (Ubuntu/Debian) or dnf install ffmpeg (Fedora)"
	case "windows":
		return "Download from https://ffmpeg.org/download.html and add to PATH"
	default:
		return "Download from https://ffmpeg.org/download.html"
	}
}

func commonPaths() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{
			`C:\ffmpeg\bin\ffmpeg.exe`,
			`C:\Program Files\ffmpeg\bin\ffmpeg.exe`,
			`C:\Program Files (x86)\ffmpeg\bin\ffmpeg.exe`,
		}
	case "darwin":
		return []string{
			"/opt/homebrew/bin/ffmpeg",
			"/usr/local/bin/ffmpeg",
			"/usr/bin/ffmpeg",
		}
	default:
		return []string{
			"/usr/bin/ffmpeg",
			"/usr/local/bin/ffmpeg",
			"/snap/bin/ffmpeg",
		}
	}
}
