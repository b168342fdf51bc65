package config

import (
	"fmt"
	"os"
	"strings"
)

// Validate checks if the configuration is valid for the selected operation
func (c *Config) Validate() error {
	var errors []string

	if c.Op == "" {
		errors = append(errors, "an operation is required: pass -split or -merge")
	} else if !IsValidOp(c.Op) {
		errors = append(errors, fmt.Sprintf("invalid operation '%s', must be one of: %s",
			c.Op, strings.Join(OpValues(), ", ")))
	}

	if c.MP4BoxBin == "" {
		errors = append(errors, "mp4box binary is required")
	}

	switch c.Op {
	case OpSplit:
		if c.SourceVideo == "" {
			errors = append(errors, "input video is required for split")
		} else if _, err := os.Stat(c.SourceVideo); os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("input video does not exist: %s", c.SourceVideo))
		}

		if c.OutputDir == "" {
			errors = append(errors, "output directory is required for split")
		}

		if c.SegmentDuration <= 0 {
			errors = append(errors, "segment duration must be positive")
		}

	case OpMerge:
		if c.SegmentsDir == "" {
			errors = append(errors, "segments directory is required for merge")
		}

		if c.Output == "" {
			errors = append(errors, "output file is required for merge")
		}

		if !IsValidOrder(c.Order) {
			errors = append(errors, fmt.Sprintf("invalid order '%s', must be one of: %s",
				c.Order, strings.Join(OrderValues(), ", ")))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}
