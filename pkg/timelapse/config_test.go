package timelapse

import (
	"testing"

	"github.com/user/timelapse/pkg/pipeline"
)

func TestNewConfigBuilder_Defaults(t *testing.T) {
	cfg := NewConfigBuilder().Build()

	if cfg.FPS != 24 {
		t.Errorf("expected FPS 24, got %d", cfg.FPS)
	}
	if !cfg.EndHold {
		t.Error("expected end hold enabled by default")
	}
	if cfg.Codec != "libx264" {
		t.Errorf("expected libx264, got %s", cfg.Codec)
	}
	if cfg.VideoCRF != 23 {
		t.Errorf("expected medium CRF 23, got %d", cfg.VideoCRF)
	}
	if cfg.Sort != pipeline.SortLexical || cfg.Overwrite != pipeline.OverwriteAsk {
		t.Errorf("unexpected file defaults: %+v", cfg)
	}
}

func TestConfigBuilder_Chaining(t *testing.T) {
	cfg := NewConfigBuilder().
		WithFPS(10).
		WithEndHold(false).
		WithCodec("mpeg4").
		WithVideoCRF(30).
		WithSort(pipeline.SortNatural).
		WithOverwrite(pipeline.OverwriteNever).
		Build()

	if cfg.FPS != 10 || cfg.EndHold || cfg.Codec != "mpeg4" || cfg.VideoCRF != 30 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Sort != pipeline.SortNatural || cfg.Overwrite != pipeline.OverwriteNever {
		t.Errorf("unexpected file options: %+v", cfg)
	}
}

func TestConfigBuilder_Constraints(t *testing.T) {
	tests := []struct {
		name    string
		builder *ConfigBuilder
		fps     int
		crf     int
	}{
		{"zero fps", NewConfigBuilder().WithFPS(0), 1, 23},
		{"negative fps", NewConfigBuilder().WithFPS(-5), 1, 23},
		{"negative crf", NewConfigBuilder().WithVideoCRF(-1), 24, 0},
		{"crf above range", NewConfigBuilder().WithVideoCRF(99), 24, 51},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.builder.Build()
			if cfg.FPS != tt.fps {
				t.Errorf("expected FPS %d, got %d", tt.fps, cfg.FPS)
			}
			if cfg.VideoCRF != tt.crf {
				t.Errorf("expected CRF %d, got %d", tt.crf, cfg.VideoCRF)
			}
		})
	}
}

func TestQualityPresets(t *testing.T) {
	tests := []struct {
		preset QualityPreset
		crf    int
	}{
		{QualityLow, 28},
		{QualityMedium, 23},
		{QualityHigh, 18},
		{"unknown", 23},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := NewConfigBuilder().WithQualityPreset(tt.preset).Build()
			if cfg.VideoCRF != tt.crf {
				t.Errorf("expected CRF %d, got %d", tt.crf, cfg.VideoCRF)
			}
		})
	}

	if !IsQualityPreset("high") || IsQualityPreset("ultra") {
		t.Error("IsQualityPreset mismatch")
	}
}

func TestConfig_ToOrchestratorConfig(t *testing.T) {
	cfg := NewConfigBuilder().WithFPS(10).WithQualityPreset(QualityHigh).Build()
	oc := cfg.ToOrchestratorConfig("/photos", "/out/sky")

	if oc.InputDir != "/photos" || oc.OutputBase != "/out/sky" {
		t.Errorf("unexpected paths: %+v", oc)
	}
	if oc.FPS != 10 || oc.CRF != 18 || oc.Codec != "libx264" {
		t.Errorf("unexpected encoding: %+v", oc)
	}
	if oc.EndHoldFrames() != 10 {
		t.Errorf("expected 10 hold frames, got %d", oc.EndHoldFrames())
	}
}
