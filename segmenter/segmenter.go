// Package segmenter computes how a video of a known duration divides into
// fixed-length segments.
//
// The arithmetic here is the only derived computation in the system; actual
// splitting is delegated to MP4Box.
package segmenter

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"mp4boxer/internal/timeutil"
	"mp4boxer/models"
)

// Count returns the number of fixed-length segments of the requested duration
// that fit in a video of the given total duration.
//
// Returns 0 if the video is shorter than the requested duration (too short to
// split meaningfully), otherwise ceil(total/requested).
//
// requestedSeconds must be positive; zero or negative values are rejected
// with a validation error.
func Count(totalSeconds, requestedSeconds float64) (int, error) {
	if requestedSeconds <= 0 {
		return 0, fmt.Errorf("segment duration must be positive, got %s", timeutil.FormatSeconds(requestedSeconds))
	}

	if totalSeconds < requestedSeconds {
		return 0, nil
	}

	return int(math.Ceil(totalSeconds / requestedSeconds)), nil
}

// Plan builds the segment descriptors for splitting sourcePath into
// fixed-length segments of requestedSeconds each.
//
// Segment i covers [i*requested, (i+1)*requested); the final segment's end
// may exceed the actual duration, which MP4Box clamps. Output files are named
// <base>_segment_<i+1>.mp4 under outputDir.
//
// Returns an empty plan (nil, nil) when the video is too short to split.
func Plan(sourcePath, outputDir string, totalSeconds, requestedSeconds float64) ([]*models.Segment, error) {
	count, err := Count(totalSeconds, requestedSeconds)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	base := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))

	segments := make([]*models.Segment, 0, count)
	for i := 0; i < count; i++ {
		start := float64(i) * requestedSeconds
		end := start + requestedSeconds
		outputPath := filepath.Join(outputDir, fmt.Sprintf("%s_segment_%d.mp4", base, i+1))

		segment, err := models.NewSegment(i, start, end, outputPath)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i+1, err)
		}

		segments = append(segments, segment)
	}

	return segments, nil
}
