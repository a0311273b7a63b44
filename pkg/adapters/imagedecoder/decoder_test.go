package imagedecoder

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/fogleman/gg"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func drawFrame(width, height int) image.Image {
	dc := gg.NewContext(width, height)
	dc.SetRGB(0.1, 0.2, 0.3)
	dc.Clear()
	dc.SetRGB(1, 0.5, 0)
	dc.DrawRectangle(float64(width)/4, float64(height)/4, float64(width)/2, float64(height)/2)
	dc.Fill()
	return dc.Image()
}

func TestDecoder_Formats(t *testing.T) {
	src := drawFrame(64, 48)

	tests := []struct {
		name   string
		encode func(*bytes.Buffer) error
	}{
		{"png", func(b *bytes.Buffer) error { return png.Encode(b, src) }},
		{"jpeg", func(b *bytes.Buffer) error { return jpeg.Encode(b, src, &jpeg.Options{Quality: 90}) }},
		{"bmp", func(b *bytes.Buffer) error { return bmp.Encode(b, src) }},
		{"tiff", func(b *bytes.Buffer) error { return tiff.Encode(b, src, nil) }},
	}

	dec := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.encode(&buf); err != nil {
				t.Fatalf("encode %s: %v", tt.name, err)
			}

			img, format, err := dec.DecodeImage(buf.Bytes())
			if err != nil {
				t.Fatalf("DecodeImage failed: %v", err)
			}
			if format != tt.name {
				t.Errorf("expected format %s, got %s", tt.name, format)
			}
			if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 48 {
				t.Errorf("expected 64x48, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
			}
		})
	}
}

func TestDecoder_Corrupt(t *testing.T) {
	dec := New()

	if _, _, err := dec.DecodeImage(nil); err == nil {
		t.Error("expected error for empty data")
	}
	if _, _, err := dec.DecodeImage([]byte("definitely not an image")); err == nil {
		t.Error("expected error for garbage data")
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, drawFrame(32, 32)); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	truncated := buf.Bytes()[:buf.Len()/2]
	if _, _, err := dec.DecodeImage(truncated); err == nil {
		t.Error("expected error for truncated png")
	}
}
