// Package main provides the CLI entry point for timelapse.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/timelapse/pkg/adapters/ffmpegencoder"
	"github.com/user/timelapse/pkg/adapters/imagedecoder"
	"github.com/user/timelapse/pkg/adapters/logger"
	"github.com/user/timelapse/pkg/adapters/mp4probe"
	"github.com/user/timelapse/pkg/adapters/nullprogress"
	"github.com/user/timelapse/pkg/adapters/osfilesystem"
	"github.com/user/timelapse/pkg/adapters/progressbar"
	"github.com/user/timelapse/pkg/adapters/prompt"
	"github.com/user/timelapse/pkg/config"
	"github.com/user/timelapse/pkg/console"
	"github.com/user/timelapse/pkg/orchestrator"
	"github.com/user/timelapse/pkg/ports"
	"github.com/user/timelapse/pkg/stages/assemble"
	"github.com/user/timelapse/pkg/stages/geometry"
	"github.com/user/timelapse/pkg/stages/outpath"
	"github.com/user/timelapse/pkg/stages/scan"
	"github.com/user/timelapse/pkg/summarizer"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Build   BuildCmd   `cmd:"" default:"withargs" help:"Assemble a directory of images into an MP4 timelapse."`
	Probe   ProbeCmd   `cmd:"" help:"Show the video track of an MP4 file."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// BuildCmd defines the build subcommand.
type BuildCmd struct {
	// Input and output
	Dir    string `short:"d" type:"existingdir" help:"Directory containing the images (required)."`
	Output string `short:"o" help:"Output file base name; .mp4 is appended (required)."`
	Config string `type:"existingfile" help:"YAML configuration file; flags override its values."`

	// Timing
	FPS    *int `name:"fps" short:"f" help:"Frames per second (default: 24)."`
	NoHold bool `help:"Do not hold the last image for one extra second."`

	// Encoding
	Codec      *string `help:"Video encoder: libx264 or mpeg4 (default: libx264)."`
	Quality    *string `short:"q" help:"Quality preset: low, medium or high (default: medium)."`
	CRF        *int    `name:"crf" help:"CRF value (0-51, lower is better, overrides quality preset)."`
	FFmpegPath string  `name:"ffmpeg-path" help:"Path to ffmpeg (falls back to FFMPEG_PATH env, then PATH)."`

	// Files
	Overwrite *string `help:"When the output exists: ask, always or never (default: ask)."`
	Sort      *string `help:"Image order: lexical or natural (default: lexical)."`
	Summary   string  `help:"Write a run summary to this file (Markdown format)."`

	// Console
	NoProgress bool    `help:"Do not show the progress bar."`
	LogLevel   *string `short:"l" help:"Log level (debug, info, warn, error)."`
	Quiet      bool    `short:"Q" help:"Suppress all log output."`
}

// ProbeCmd defines the probe subcommand.
type ProbeCmd struct {
	File string `arg:"" type:"existingfile" help:"MP4 file to inspect."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("timelapse"),
		kong.Description(l10n.T("Assemble still images into an MP4 timelapse video.")),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the build command.
func (cmd *BuildCmd) Run() error {
	teardown := console.Init()
	defer teardown()

	cfg, err := cmd.loadConfig()
	if err != nil {
		return err
	}

	// Create logger
	var log ports.Logger
	if cmd.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cfg.LogLevel))
	}

	if _, err := ffmpegencoder.FindFFmpeg(cfg.FFmpegPath); err != nil {
		return err
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, finishing the video...")
			cancel()
		case <-ctx.Done():
		}
	}()

	// Create adapters
	fs := osfilesystem.New()
	decoder := imagedecoder.New()
	encoder := ffmpegencoder.New(ffmpegencoder.Options{FFmpegPath: cfg.FFmpegPath, Logger: log})
	prompter := prompt.New(os.Stdin, os.Stderr)

	var progress ports.ProgressObserver = nullprogress.New()
	if cfg.Progress && !cmd.Quiet && console.IsInteractive(os.Stderr) {
		progress = progressbar.New(os.Stderr, progressbar.Options{
			Description: l10n.T("Encoding"),
			Color:       console.StderrColorEnabled(),
			Throttle:    65 * time.Millisecond,
		})
	}

	// Create stages
	scanStage := scan.NewStage(fs, log)
	outpathStage := outpath.NewStage(fs, prompter, log)
	assembleStage := assemble.NewStage(encoder, geometry.NewValidator(fs, decoder), progress, log)

	// Create orchestrator
	orch := orchestrator.New(
		scanStage,
		outpathStage,
		assembleStage,
		fs,
		mp4probe.NewProber(),
		log,
	)

	result, runErr := orch.Run(ctx, cfg.ToOrchestratorConfig())

	if cmd.Summary != "" {
		summary := summarizer.NewBuilder().
			FromRunResult(result).
			WithQuality(cfg.Quality, cfg.Sort).
			WithError(runErr).
			Build()
		formatter := summarizer.NewMarkdownFormatter(
			summarizer.WithTranslator(func(s string) string { return l10n.T(s) }),
			summarizer.WithVersion(version),
		)
		if err := summarizer.NewWriter(formatter, fs).Write(cmd.Summary, summary); err != nil {
			log.Error("Failed to write summary: %v", err)
		} else {
			log.Info("Summary saved to %s", cmd.Summary)
		}
	}

	if runErr != nil {
		if errors.Is(runErr, context.Canceled) && result.Partial {
			log.Warn("Partial video saved to %s", result.OutputPath)
		}
		return runErr
	}

	log.Info("Output saved to %s", result.OutputPath)
	return nil
}

// loadConfig builds a Config from defaults, the optional file and CLI overrides.
func (cmd *BuildCmd) loadConfig() (config.Config, error) {
	cfg := config.Defaults()
	if cmd.Config != "" {
		loaded, err := config.LoadFromFile(cmd.Config)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	cmd.applyOverrides(&cfg)

	if cfg.InputDir == "" {
		return cfg, errors.New(l10n.T("--dir is required"))
	}
	if cfg.Output == "" {
		return cfg, errors.New(l10n.T("--output is required"))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (cmd *BuildCmd) applyOverrides(cfg *config.Config) {
	if cmd.Dir != "" {
		cfg.InputDir = cmd.Dir
	}
	if cmd.Output != "" {
		cfg.Output = cmd.Output
	}
	if cmd.FPS != nil {
		cfg.FPS = *cmd.FPS
	}
	if cmd.NoHold {
		cfg.EndHold = false
	}
	if cmd.Codec != nil {
		cfg.Codec = *cmd.Codec
	}
	if cmd.Quality != nil {
		cfg.Quality = *cmd.Quality
	}
	if cmd.CRF != nil {
		cfg.CRF = *cmd.CRF
	}
	if cmd.FFmpegPath != "" {
		cfg.FFmpegPath = cmd.FFmpegPath
	}
	if cmd.Overwrite != nil {
		cfg.Overwrite = *cmd.Overwrite
	}
	if cmd.Sort != nil {
		cfg.Sort = *cmd.Sort
	}
	if cmd.NoProgress {
		cfg.Progress = false
	}
	if cmd.LogLevel != nil {
		cfg.LogLevel = *cmd.LogLevel
	}
}

// Run executes the probe command.
func (cmd *ProbeCmd) Run() error {
	info, err := mp4probe.ProbeFile(cmd.File)
	if err != nil {
		return fmt.Errorf("probe %s: %w", cmd.File, err)
	}

	fmt.Println(l10n.F("Codec: %s", info.Codec))
	fmt.Println(l10n.F("Frame size: %dx%d", info.Width, info.Height))
	if info.Fragmented {
		fmt.Println(l10n.T("Frames: unknown (fragmented file)"))
	} else {
		fmt.Println(l10n.F("Frames: %d", info.SampleCount))
	}
	fmt.Println(l10n.F("Duration: %d ms (%.2f fps)", info.DurationMs, info.FPS()))
	return nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("timelapse version %s", version))
	return nil
}
