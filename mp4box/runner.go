// Package mp4box provides the external tool layer: process execution and
// duration probing for the MP4Box command-line utility.
//
// All media manipulation is delegated to MP4Box; this package only spawns it,
// captures its output, and classifies success by exit status.
package mp4box

import (
	"context"
	"os/exec"
)

// DefaultBin is the MP4Box executable name resolved via PATH.
const DefaultBin = "MP4Box"

// Runner executes the external tool and returns its combined stdout/stderr.
//
// The interface exists so the split and merge operations can be tested
// without spawning processes.
type Runner interface {
	// CombinedOutput runs the tool with the given arguments, blocking until
	// the process exits, and returns the combined stdout/stderr along with
	// any execution error (non-zero exit included).
	CombinedOutput(ctx context.Context, args ...string) ([]byte, error)
}

type execRunner struct {
	bin string
}

// NewRunner creates a Runner that invokes the given MP4Box binary. An empty
// bin falls back to DefaultBin.
func NewRunner(bin string) Runner {
	if bin == "" {
		bin = DefaultBin
	}
	return &execRunner{bin: bin}
}

func (r *execRunner) CombinedOutput(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, r.bin, args...)
	return cmd.CombinedOutput()
}
