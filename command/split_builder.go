package command

import (
	"context"
	"fmt"

	"mp4boxer/internal/timeutil"
	"mp4boxer/models"
	"mp4boxer/mp4box"
)

// SplitBuilder builds the MP4Box command that extracts a single segment from
// a source video.
//
// The resulting invocation is:
//
//	MP4Box -splitx <start>:<end> <source> -out <segment output>
type SplitBuilder struct {
	runner  mp4box.Runner
	source  string
	segment *models.Segment
}

// NewSplitBuilder creates a SplitBuilder for one segment of the given source
// file.
func NewSplitBuilder(runner mp4box.Runner, source string, segment *models.Segment) *SplitBuilder {
	return &SplitBuilder{
		runner:  runner,
		source:  source,
		segment: segment,
	}
}

// BuildArgs constructs the -splitx command arguments.
func (b *SplitBuilder) BuildArgs() []string {
	if b.segment == nil {
		return nil
	}

	return []string{
		"-splitx", timeutil.FormatRange(b.segment.Start, b.segment.End),
		b.source,
		"-out", b.segment.OutputPath,
	}
}

// Run executes the split command.
func (b *SplitBuilder) Run(ctx context.Context) error {
	output, err := b.runner.CombinedOutput(ctx, b.BuildArgs()...)
	if err != nil {
		return fmt.Errorf("mp4box split failed: %w (output: %s)", err, string(output))
	}
	return nil
}

// DryRun returns the command string without executing.
func (b *SplitBuilder) DryRun() string {
	return renderCommand(b.BuildArgs())
}
