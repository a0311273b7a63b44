package progressbar

import (
	"bytes"
	"strings"
	"testing"
)

func TestBar_RendersCount(t *testing.T) {
	var buf bytes.Buffer
	bar := New(&buf, Options{Description: "frames"})

	bar.Start(3)
	for i := 0; i < 3; i++ {
		bar.Advance()
	}
	bar.Finish()

	out := buf.String()
	if !strings.Contains(out, "frames") {
		t.Errorf("expected description in output, got %q", out)
	}
	if !strings.Contains(out, "3/3") {
		t.Errorf("expected final count in output, got %q", out)
	}
}

func TestBar_CallsBeforeStartAreIgnored(t *testing.T) {
	var buf bytes.Buffer
	bar := New(&buf, Options{})

	bar.Advance()
	bar.Finish()

	if buf.Len() != 0 {
		t.Errorf("expected no output before Start, got %q", buf.String())
	}
}

func TestBar_IncompleteFinish(t *testing.T) {
	var buf bytes.Buffer
	bar := New(&buf, Options{Description: "frames"})

	bar.Start(10)
	bar.Advance()
	bar.Advance()
	bar.Finish()

	if strings.Contains(buf.String(), "10/10") {
		t.Errorf("incomplete bar should not jump to the end, got %q", buf.String())
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Error("expected Finish to end the line")
	}
}
