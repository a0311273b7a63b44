package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/user/timelapse/pkg/ports"
)

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewWriters(ports.LevelWarn, &out, &errOut)

	log.Debug("debug line")
	log.Info("info line")
	log.Warn("warn line")
	log.Error("error line")

	if out.Len() != 0 {
		t.Errorf("expected no stdout output, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "warn line") {
		t.Errorf("expected warn on stderr, got %q", errOut.String())
	}
	if !strings.Contains(errOut.String(), "error line") {
		t.Errorf("expected error on stderr, got %q", errOut.String())
	}
}

func TestConsoleLogger_FormatsArgs(t *testing.T) {
	var out bytes.Buffer
	log := NewWriters(ports.LevelDebug, &out, &out)

	log.Info("test message %d in %s", 3, "/frames")

	if got := strings.TrimSpace(out.String()); got != "test message 3 in /frames" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestConsoleLogger_WithComponent(t *testing.T) {
	var out bytes.Buffer
	log := NewWriters(ports.LevelDebug, &out, &out).WithComponent("assemble")

	log.Debug("frame %d", 7)

	if got := strings.TrimSpace(out.String()); got != "[assemble] frame 7" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestConsoleLogger_Quiet(t *testing.T) {
	var out bytes.Buffer
	log := NewWriters(ports.LevelQuiet, &out, &out)

	log.Error("should not appear")

	if out.Len() != 0 {
		t.Errorf("expected no output at quiet level, got %q", out.String())
	}
}
