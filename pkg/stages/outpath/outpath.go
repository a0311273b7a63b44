// Package outpath resolves the file a timelapse is written to without
// clobbering existing files unless the user agrees.
package outpath

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ideamans/go-l10n"

	"github.com/user/timelapse/pkg/pipeline"
	"github.com/user/timelapse/pkg/ports"
)

// DefaultExtension is the container extension appended to the base name.
const DefaultExtension = ".mp4"

// Stage resolves output paths.
type Stage struct {
	fs       ports.FileSystem
	prompter ports.Prompter
	logger   ports.Logger
}

// NewStage creates an output path stage. prompter may be nil, in which case
// the ask policy behaves like never.
func NewStage(fs ports.FileSystem, prompter ports.Prompter, logger ports.Logger) *Stage {
	return &Stage{
		fs:       fs,
		prompter: prompter,
		logger:   logger.WithComponent("outpath"),
	}
}

// Execute returns base+ext when it is free or the overwrite is accepted, and
// otherwise the first free base<n>+ext for n = 1, 2, ...
func (s *Stage) Execute(ctx context.Context, input pipeline.OutputPathInput) (pipeline.OutputPathResult, error) {
	ext := input.Extension
	if ext == "" {
		ext = DefaultExtension
	}
	if input.Base == "" {
		return pipeline.OutputPathResult{}, fmt.Errorf("output base name is empty")
	}

	candidate := input.Base + ext
	exists, err := s.fs.Exists(candidate)
	if err != nil {
		return pipeline.OutputPathResult{}, fmt.Errorf("check %s: %w", candidate, err)
	}
	if !exists {
		return pipeline.OutputPathResult{Path: candidate}, nil
	}

	overwrite, err := s.allowOverwrite(candidate, input.Policy)
	if err != nil {
		return pipeline.OutputPathResult{}, err
	}
	if overwrite {
		s.logger.Info("Overwriting %s", candidate)
		return pipeline.OutputPathResult{Path: candidate, Overwrite: true}, nil
	}

	for n := 1; ; n++ {
		if err := ctx.Err(); err != nil {
			return pipeline.OutputPathResult{}, err
		}
		candidate = input.Base + strconv.Itoa(n) + ext
		exists, err := s.fs.Exists(candidate)
		if err != nil {
			return pipeline.OutputPathResult{}, fmt.Errorf("check %s: %w", candidate, err)
		}
		if !exists {
			s.logger.Info("Writing to %s instead", candidate)
			return pipeline.OutputPathResult{Path: candidate, Suffix: n}, nil
		}
	}
}

func (s *Stage) allowOverwrite(path string, policy pipeline.OverwritePolicy) (bool, error) {
	switch policy {
	case pipeline.OverwriteAlways:
		return true, nil
	case pipeline.OverwriteNever:
		return false, nil
	}

	if s.prompter == nil {
		return false, nil
	}
	ok, err := s.prompter.Confirm(l10n.F("%s already exists. overwrite it?", path))
	if err != nil {
		return false, fmt.Errorf("confirm overwrite: %w", err)
	}
	return ok, nil
}
