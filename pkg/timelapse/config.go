// Package timelapse provides a high-level API for configuring timelapse videos.
package timelapse

import (
	"github.com/user/timelapse/pkg/orchestrator"
	"github.com/user/timelapse/pkg/pipeline"
)

// QualityPreset represents a video quality preset name.
type QualityPreset string

const (
	QualityLow    QualityPreset = "low"
	QualityMedium QualityPreset = "medium"
	QualityHigh   QualityPreset = "high"
)

// QualitySettings contains quality parameters for video encoding.
type QualitySettings struct {
	VideoCRF int // CRF value (0-51, lower is better)
}

// GetQualitySettings returns quality settings for the given preset.
func GetQualitySettings(preset QualityPreset) QualitySettings {
	switch preset {
	case QualityLow:
		return QualitySettings{VideoCRF: 28}
	case QualityHigh:
		return QualitySettings{VideoCRF: 18}
	default: // medium
		return QualitySettings{VideoCRF: 23}
	}
}

// IsQualityPreset reports whether name is a known preset.
func IsQualityPreset(name string) bool {
	switch QualityPreset(name) {
	case QualityLow, QualityMedium, QualityHigh:
		return true
	}
	return false
}

// Config represents the configuration for timelapse video generation.
type Config struct {
	// Timing
	FPS     int  // Frames per second (min: 1)
	EndHold bool // Hold the last frame for one second

	// Encoding
	Codec    string // ffmpeg encoder name (libx264 or mpeg4)
	VideoCRF int    // CRF value (0-51, lower is better)

	// Files
	Sort      pipeline.SortOrder
	Overwrite pipeline.OverwritePolicy
}

// ConfigBuilder provides a fluent interface for building Config.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: defaults(),
	}
}

func defaults() Config {
	return Config{
		FPS:     24,
		EndHold: true,

		// Encoding (medium quality preset)
		Codec:    "libx264",
		VideoCRF: GetQualitySettings(QualityMedium).VideoCRF,

		Sort:      pipeline.SortLexical,
		Overwrite: pipeline.OverwriteAsk,
	}
}

// Build returns the final Config, applying constraints.
func (b *ConfigBuilder) Build() Config {
	cfg := b.config

	// Enforce minimum frame rate of 1
	if cfg.FPS < 1 {
		cfg.FPS = 1
	}

	if cfg.VideoCRF < 0 {
		cfg.VideoCRF = 0
	}
	if cfg.VideoCRF > 51 {
		cfg.VideoCRF = 51
	}

	if cfg.Sort == "" {
		cfg.Sort = pipeline.SortLexical
	}
	if cfg.Overwrite == "" {
		cfg.Overwrite = pipeline.OverwriteAsk
	}

	return cfg
}

// WithFPS sets the frame rate. Values below 1 will be forced to 1.
func (b *ConfigBuilder) WithFPS(fps int) *ConfigBuilder {
	b.config.FPS = fps
	return b
}

// WithEndHold enables or disables the one-second hold of the last frame.
func (b *ConfigBuilder) WithEndHold(hold bool) *ConfigBuilder {
	b.config.EndHold = hold
	return b
}

// WithCodec sets the ffmpeg encoder.
func (b *ConfigBuilder) WithCodec(codec string) *ConfigBuilder {
	b.config.Codec = codec
	return b
}

// WithVideoCRF sets the CRF value (0-51, lower is better).
func (b *ConfigBuilder) WithVideoCRF(crf int) *ConfigBuilder {
	b.config.VideoCRF = crf
	return b
}

// WithQualityPreset applies a quality preset (low, medium, high).
func (b *ConfigBuilder) WithQualityPreset(preset QualityPreset) *ConfigBuilder {
	b.config.VideoCRF = GetQualitySettings(preset).VideoCRF
	return b
}

// WithSort sets how image names are ordered.
func (b *ConfigBuilder) WithSort(order pipeline.SortOrder) *ConfigBuilder {
	b.config.Sort = order
	return b
}

// WithOverwrite sets what happens when the output file exists.
func (b *ConfigBuilder) WithOverwrite(policy pipeline.OverwritePolicy) *ConfigBuilder {
	b.config.Overwrite = policy
	return b
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig(inputDir, outputBase string) orchestrator.Config {
	return orchestrator.Config{
		InputDir: inputDir,
		Sort:     c.Sort,

		OutputBase: outputBase,
		Overwrite:  c.Overwrite,

		FPS:     c.FPS,
		EndHold: c.EndHold,
		Codec:   c.Codec,
		CRF:     c.VideoCRF,
	}
}
