package command

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"mp4boxer/mp4box"
)

// MergeBuilder builds the MP4Box command that concatenates an ordered list of
// inputs into a single output file.
//
// The first input is the base (-add), every subsequent input is appended
// (-cat), with -force-cat set globally:
//
//	MP4Box -force-cat -add <first> -cat <second> ... <output>
type MergeBuilder struct {
	runner mp4box.Runner
	inputs []string
	output string
}

// NewMergeBuilder creates a MergeBuilder for the given inputs, which must
// already be in the desired concatenation order.
func NewMergeBuilder(runner mp4box.Runner, inputs []string, output string) *MergeBuilder {
	return &MergeBuilder{
		runner: runner,
		inputs: inputs,
		output: output,
	}
}

// BuildArgs constructs the -force-cat command arguments.
func (b *MergeBuilder) BuildArgs() []string {
	if len(b.inputs) == 0 {
		return nil
	}

	args := []string{"-force-cat"}
	args = append(args, lo.FlatMap(b.inputs, func(input string, index int) []string {
		if index == 0 {
			return []string{"-add", input}
		}
		return []string{"-cat", input}
	})...)

	return append(args, b.output)
}

// Run executes the merge command as a single invocation.
func (b *MergeBuilder) Run(ctx context.Context) error {
	output, err := b.runner.CombinedOutput(ctx, b.BuildArgs()...)
	if err != nil {
		return fmt.Errorf("mp4box merge failed: %w (output: %s)", err, string(output))
	}
	return nil
}

// DryRun returns the command string without executing.
func (b *MergeBuilder) DryRun() string {
	return renderCommand(b.BuildArgs())
}
