package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// MergeFromFlags parses command-line flags and overrides config values
func (c *Config) MergeFromFlags() error {
	fs := flag.NewFlagSet("mp4boxer", flag.ContinueOnError)
	fs.Usage = printUsage

	// Operation selectors
	split := fs.Bool("split", false, "Split the source video into fixed-length segments")
	merge := fs.Bool("merge", false, "Merge the videos in the segments directory into one file")

	// Config file override (handled by LoadConfig before this function is called)
	_ = fs.String("config", "", "Path to config file (default: search standard locations)")

	// Paths
	input := fs.String("input", "", "Source video to split (default: from config)")
	segmentsDir := fs.String("segments-dir", "", "Directory containing the videos to merge (default: from config)")
	output := fs.String("output", "", "Merged output file path (default: from config)")
	outputDir := fs.String("output-dir", "", "Directory split segments are written into (default: from config)")

	// Operation settings
	segmentDuration := fs.Float64("segment-duration", -1, "Per-segment duration in seconds (default: from config)")
	mp4boxBin := fs.String("mp4box", "", "MP4Box executable to invoke (default: from config)")
	order := fs.String("order", "", fmt.Sprintf("Merge ordering: %s (default: from config)", strings.Join(OrderValues(), ", ")))

	// Behavioral flags
	verbose := fs.Bool("verbose", false, "Enable verbose logging")
	dryRun := fs.Bool("dry-run", false, "Show configuration without invoking MP4Box")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	// Exactly one operation per run
	if *split && *merge {
		return fmt.Errorf("-split and -merge are mutually exclusive")
	}
	if *split {
		c.Op = OpSplit
	} else if *merge {
		c.Op = OpMerge
	}

	// Override with flag values (only if explicitly set)
	if *input != "" {
		c.SourceVideo = *input
	}
	if *segmentsDir != "" {
		c.SegmentsDir = *segmentsDir
	}
	if *output != "" {
		c.Output = *output
	}
	if *outputDir != "" {
		c.OutputDir = *outputDir
	}
	if *segmentDuration >= 0 {
		c.SegmentDuration = *segmentDuration
	}
	if *mp4boxBin != "" {
		c.MP4BoxBin = *mp4boxBin
	}
	if *order != "" {
		c.Order = *order
	}
	if *verbose {
		c.Verbose = true
	}
	if *dryRun {
		c.DryRun = true
	}

	return nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `mp4boxer - split and merge MP4 videos via MP4Box

Usage:
  mp4boxer -split -input <video> [-output-dir <dir>] [-segment-duration <seconds>]
  mp4boxer -merge [-segments-dir <dir>] [-output <file>] [-order numeric|natural|lex]

Options:
  -split                  Split the source video into fixed-length segments
  -merge                  Merge the videos in the segments directory into one file
  -input <path>           Source video to split
  -segments-dir <path>    Directory containing the videos to merge
  -output <path>          Merged output file path
  -output-dir <path>      Directory split segments are written into
  -segment-duration <s>   Per-segment duration in seconds
  -order <name>           Merge ordering: numeric, natural, lex
  -mp4box <path>          MP4Box executable to invoke
  -config <path>          Path to config file
  -verbose                Enable verbose logging
  -dry-run                Show configuration without invoking MP4Box
`)
}
