// Package scan implements the image collection stage: it lists a directory,
// keeps still images and orders them deterministically.
package scan

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/user/timelapse/pkg/pipeline"
	"github.com/user/timelapse/pkg/ports"
)

// DefaultExtensions lists the still image formats the decoder adapter handles.
var DefaultExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// Stage collects the eligible images of a directory.
type Stage struct {
	fs         ports.FileSystem
	logger     ports.Logger
	extensions map[string]bool
}

// NewStage creates a scan stage accepting DefaultExtensions.
func NewStage(fs ports.FileSystem, logger ports.Logger) *Stage {
	return NewStageWithExtensions(fs, logger, DefaultExtensions)
}

// NewStageWithExtensions creates a scan stage accepting the given extensions
// (with leading dot, matched case-insensitively).
func NewStageWithExtensions(fs ports.FileSystem, logger ports.Logger, extensions []string) *Stage {
	set := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		set[strings.ToLower(ext)] = true
	}
	return &Stage{
		fs:         fs,
		logger:     logger.WithComponent("scan"),
		extensions: set,
	}
}

// Execute lists input.Dir and returns its images in sequence order.
// Directory enumeration order is never trusted; names are always sorted.
func (s *Stage) Execute(ctx context.Context, input pipeline.ScanInput) (pipeline.ScanResult, error) {
	result := pipeline.ScanResult{}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	names, err := s.fs.ListFiles(input.Dir)
	if err != nil {
		return result, fmt.Errorf("list %s: %w", input.Dir, err)
	}

	eligible := make([]string, 0, len(names))
	for _, name := range names {
		if s.IsEligible(name) {
			eligible = append(eligible, name)
		} else {
			s.logger.Debug("Skipping %s: not a supported image", name)
			result.Skipped++
		}
	}

	if len(eligible) == 0 {
		return result, fmt.Errorf("%w in %s", pipeline.ErrEmptyInput, input.Dir)
	}

	Sort(eligible, input.Order)

	result.Images = make([]pipeline.ImageRef, len(eligible))
	for i, name := range eligible {
		result.Images[i] = pipeline.ImageRef{
			Path:  filepath.Join(input.Dir, name),
			Name:  name,
			Ext:   strings.ToLower(filepath.Ext(name)),
			Index: i,
		}
	}

	s.logger.Debug("Collected %d images, skipped %d files", len(result.Images), result.Skipped)
	return result, nil
}

// IsEligible reports whether name has a supported image extension.
func (s *Stage) IsEligible(name string) bool {
	return s.extensions[strings.ToLower(filepath.Ext(name))]
}

// Sort orders names in place. Unknown orders fall back to lexical.
func Sort(names []string, order pipeline.SortOrder) {
	if order == pipeline.SortNatural {
		sort.Slice(names, func(i, j int) bool { return NaturalLess(names[i], names[j]) })
		return
	}
	sort.Strings(names)
}
