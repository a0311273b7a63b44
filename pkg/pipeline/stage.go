// Package pipeline holds the stage abstraction, job types and typed errors
// shared by the scan, output path and assemble stages.
package pipeline

import (
	"context"
)

// Stage is one step of a timelapse run. The orchestrator calls Execute once per run.
type Stage[In, Out any] interface {
	Execute(ctx context.Context, input In) (Out, error)
}

// StageFunc adapts a plain function to Stage.
type StageFunc[In, Out any] func(ctx context.Context, input In) (Out, error)

func (f StageFunc[In, Out]) Execute(ctx context.Context, input In) (Out, error) {
	return f(ctx, input)
}
