// Package command provides the Command interface and the MP4Box argument
// builders used by the split and merge operations.
//
// Builders construct argument slices, execute them through an injected
// mp4box.Runner, or render them for inspection without executing.
package command

import (
	"context"
	"strings"

	"mp4boxer/mp4box"
)

// Command represents one MP4Box invocation that can be built, executed, or
// previewed.
type Command interface {
	// BuildArgs constructs the MP4Box command arguments as a slice suitable
	// for exec.Command.
	BuildArgs() []string

	// Run executes the command through the runner, blocking until the
	// process exits. Returns an error carrying the captured output if the
	// tool exits non-zero.
	Run(ctx context.Context) error

	// DryRun returns the command line as a string without executing it.
	DryRun() string
}

func renderCommand(args []string) string {
	return mp4box.DefaultBin + " " + strings.Join(args, " ")
}
