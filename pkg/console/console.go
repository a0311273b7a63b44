// Package console owns process-wide terminal state: whether ANSI styling is
// used on stdout and stderr. It is initialized once by main and torn down at exit.
package console

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// ANSI color codes
const (
	Reset  = "\033[0m"
	Gray   = "\033[90m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Red    = "\033[31m"
	Cyan   = "\033[36m"
)

var (
	mu          sync.RWMutex
	initialized bool
	colorOut    bool
	colorErr    bool
	resetWriter io.Writer = os.Stderr
)

// Init detects color support once for the process and returns the teardown
// function that restores the terminal. Calling Init again returns a no-op teardown.
// NO_COLOR (any value) disables styling.
func Init() (teardown func()) {
	mu.Lock()
	defer mu.Unlock()

	if initialized {
		return func() {}
	}
	initialized = true

	_, noColor := os.LookupEnv("NO_COLOR")
	colorOut = !noColor && isTerminal(os.Stdout)
	colorErr = !noColor && isTerminal(os.Stderr)

	return teardownOnce()
}

func teardownOnce() func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			mu.Lock()
			defer mu.Unlock()
			if colorErr {
				// Leave the terminal unstyled even if a bar was cut off mid-render.
				fmt.Fprint(resetWriter, Reset)
			}
			initialized = false
			colorOut = false
			colorErr = false
		})
	}
}

// ColorEnabled reports whether styling is enabled for stdout.
func ColorEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return colorOut
}

// StderrColorEnabled reports whether styling is enabled for stderr.
func StderrColorEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return colorErr
}

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	return isTerminal(f)
}

// Paint wraps s in the given color when enabled is true.
func Paint(enabled bool, color, s string) string {
	if !enabled {
		return s
	}
	return color + s + Reset
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
