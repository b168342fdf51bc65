// Package models provides the core data structures shared by the split and
// merge operations.
package models

import (
	"fmt"
	"strings"
)

// Segment represents one time-bounded slice of a source video.
//
// Segments are derived from the probed duration of the source and a requested
// per-segment duration; they are recomputed on every run and never persisted.
// The End of the final segment may exceed the actual media duration — MP4Box
// clamps the range to the end of the file.
//
// Index is 0-based; output filenames carry a 1-based suffix (Index+1).
type Segment struct {
	Index      int     `json:"index"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	OutputPath string  `json:"output_path"`
}

// NewSegment creates a Segment and validates it.
func NewSegment(index int, start, end float64, outputPath string) (*Segment, error) {
	s := &Segment{
		Index:      index,
		Start:      start,
		End:        end,
		OutputPath: outputPath,
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid segment: %w", err)
	}
	return s, nil
}

// Validate checks that the segment describes a usable time range.
//
// Returns an error if:
//   - Index is negative
//   - OutputPath is empty or whitespace-only
//   - Start is negative
//   - Start >= End (empty or inverted range)
func (s *Segment) Validate() error {
	if s.Index < 0 {
		return fmt.Errorf("index cannot be negative")
	}

	if strings.TrimSpace(s.OutputPath) == "" {
		return fmt.Errorf("output_path cannot be empty")
	}

	if s.Start < 0 {
		return fmt.Errorf("start cannot be negative")
	}

	if s.Start >= s.End {
		return fmt.Errorf("start must be less than end")
	}

	return nil
}
