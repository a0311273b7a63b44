package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPrompter_Confirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{" yes \n", true},
		{"n\n", false},
		{"\n", false},
		{"sure\n", false},
		{"", false}, // EOF
		{"y", true}, // EOF without newline
	}

	for _, tt := range tests {
		var out bytes.Buffer
		p := New(strings.NewReader(tt.input), &out)

		got, err := p.Confirm("clip.mp4 already exists. overwrite it?")
		if err != nil {
			t.Fatalf("Confirm(%q) failed: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Confirm(%q): expected %v, got %v", tt.input, tt.want, got)
		}
		if !strings.HasPrefix(out.String(), "clip.mp4 already exists. overwrite it? (y/n) ") {
			t.Errorf("unexpected prompt %q", out.String())
		}
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestPrompter_ReadError(t *testing.T) {
	p := New(failingReader{}, &bytes.Buffer{})
	if _, err := p.Confirm("overwrite?"); err == nil {
		t.Error("expected read error to be returned")
	}
}

func TestPrompter_SequentialQuestions(t *testing.T) {
	p := New(strings.NewReader("n\ny\n"), &bytes.Buffer{})

	first, _ := p.Confirm("first?")
	second, _ := p.Confirm("second?")
	if first || !second {
		t.Errorf("expected (false, true), got (%v, %v)", first, second)
	}
}
