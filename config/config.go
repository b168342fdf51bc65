package config

import "fmt"

// Operations selectable for one run. Exactly one of split or merge runs per
// invocation.
const (
	OpSplit = "split"
	OpMerge = "merge"
)

// Config holds all orchestrator configuration options. It is constructed once
// per run and not mutated afterwards.
type Config struct {
	// Operation to run: "split" or "merge". CLI-only, not read from file.
	Op string `yaml:"-"`

	// SourceVideo is the video to split.
	SourceVideo string `yaml:"source_video"`

	// SegmentsDir is the directory holding the videos to merge.
	SegmentsDir string `yaml:"segments_dir"`

	// Output is the merged output file path.
	Output string `yaml:"output"`

	// OutputDir is the directory split segments are written into.
	OutputDir string `yaml:"output_dir"`

	// SegmentDuration is the requested per-segment duration in seconds.
	SegmentDuration float64 `yaml:"segment_duration"`

	// MP4BoxBin is the MP4Box executable to invoke.
	MP4BoxBin string `yaml:"mp4box_bin"`

	// Order names the merge ordering key: "numeric", "natural" or "lex".
	Order string `yaml:"order"`

	// Behavioral flags
	Verbose bool `yaml:"verbose"` // Show debug-level logs
	DryRun  bool `yaml:"dry_run"` // Show config without invoking MP4Box
}

// DefaultConfig returns configuration with the defaults of the reference
// workflow: segments live next to the source in video_segments/ and merge
// back into merged.mp4.
func DefaultConfig() *Config {
	return &Config{
		Op:              "",
		SourceVideo:     "",
		SegmentsDir:     "video_segments",
		Output:          "merged.mp4",
		OutputDir:       "video_segments",
		SegmentDuration: 60,
		MP4BoxBin:       "MP4Box",
		Order:           "numeric",
		Verbose:         false,
		DryRun:          false,
	}
}

// OpValues returns valid operation values.
func OpValues() []string {
	return []string{OpSplit, OpMerge}
}

// IsValidOp checks if op is valid.
func IsValidOp(op string) bool {
	for _, valid := range OpValues() {
		if op == valid {
			return true
		}
	}
	return false
}

// OrderValues returns valid merge ordering names.
func OrderValues() []string {
	return []string{"numeric", "natural", "lex"}
}

// IsValidOrder checks if order is valid.
func IsValidOrder(order string) bool {
	for _, valid := range OrderValues() {
		if order == valid {
			return true
		}
	}
	return false
}

// PrintConfig prints the effective configuration, used by dry-run mode.
func (c *Config) PrintConfig() {
	fmt.Printf("Operation:         %s\n", c.Op)
	fmt.Printf("MP4Box binary:     %s\n", c.MP4BoxBin)
	switch c.Op {
	case OpSplit:
		fmt.Printf("Source video:      %s\n", c.SourceVideo)
		fmt.Printf("Output directory:  %s\n", c.OutputDir)
		fmt.Printf("Segment duration:  %.3fs\n", c.SegmentDuration)
	case OpMerge:
		fmt.Printf("Segments dir:      %s\n", c.SegmentsDir)
		fmt.Printf("Output:            %s\n", c.Output)
		fmt.Printf("Order:             %s\n", c.Order)
	}
	fmt.Printf("Verbose:           %v\n", c.Verbose)
}
