// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/timelapse/pkg/orchestrator"
	"github.com/user/timelapse/pkg/pipeline"
	"github.com/user/timelapse/pkg/timelapse"
)

// Config represents the full configuration for timelapse.
type Config struct {
	// Input/Output
	InputDir string `yaml:"dir"`
	Output   string `yaml:"output"`

	// Files
	Sort      string `yaml:"sort"`
	Overwrite string `yaml:"overwrite"`

	// Encoding
	FPS        int    `yaml:"fps"`
	EndHold    bool   `yaml:"end_hold"`
	Codec      string `yaml:"codec"`
	Quality    string `yaml:"quality"`
	CRF        int    `yaml:"crf"` // 0 = take CRF from Quality
	FFmpegPath string `yaml:"ffmpeg_path"`

	// Console
	LogLevel string `yaml:"log_level"`
	Progress bool   `yaml:"progress"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Sort:      string(pipeline.SortLexical),
		Overwrite: string(pipeline.OverwriteAsk),

		FPS:     24,
		EndHold: true,
		Codec:   "libx264",
		Quality: string(timelapse.QualityMedium),

		LogLevel: "info",
		Progress: true,
	}
}

// LoadFromFile loads configuration from a YAML file on top of Defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	switch c.Codec {
	case "libx264", "mpeg4":
	default:
		return fmt.Errorf("unsupported codec %q (libx264 or mpeg4)", c.Codec)
	}
	if c.Quality != "" && !timelapse.IsQualityPreset(c.Quality) {
		return fmt.Errorf("unknown quality %q (low, medium or high)", c.Quality)
	}
	if c.CRF < 0 || c.CRF > 51 {
		return fmt.Errorf("crf must be between 0 and 51, got %d", c.CRF)
	}
	switch pipeline.OverwritePolicy(c.Overwrite) {
	case pipeline.OverwriteAsk, pipeline.OverwriteAlways, pipeline.OverwriteNever:
	default:
		return fmt.Errorf("unknown overwrite policy %q (ask, always or never)", c.Overwrite)
	}
	switch pipeline.SortOrder(c.Sort) {
	case pipeline.SortLexical, pipeline.SortNatural:
	default:
		return fmt.Errorf("unknown sort order %q (lexical or natural)", c.Sort)
	}
	return nil
}

// Timelapse converts Config to the high-level timelapse.Config.
func (c Config) Timelapse() timelapse.Config {
	b := timelapse.NewConfigBuilder().
		WithFPS(c.FPS).
		WithEndHold(c.EndHold).
		WithCodec(c.Codec).
		WithSort(pipeline.SortOrder(c.Sort)).
		WithOverwrite(pipeline.OverwritePolicy(c.Overwrite))

	if c.Quality != "" {
		b = b.WithQualityPreset(timelapse.QualityPreset(c.Quality))
	}
	if c.CRF > 0 {
		b = b.WithVideoCRF(c.CRF)
	}
	return b.Build()
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	return c.Timelapse().ToOrchestratorConfig(c.InputDir, c.Output)
}
