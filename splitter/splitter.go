// Package splitter implements the split operation: probe a source video's
// duration, plan fixed-length segments, and drive one MP4Box invocation per
// segment.
package splitter

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"mp4boxer/command"
	"mp4boxer/models"
	"mp4boxer/mp4box"
	"mp4boxer/segmenter"
)

// ProgressCallback is invoked after each segment is written.
type ProgressCallback func(done, total int, segment *models.Segment)

// Splitter splits one source video into fixed-length segments.
//
// Segments are produced strictly sequentially in increasing index order; the
// first MP4Box failure aborts the remaining segments. Already-written
// segments are not cleaned up and nothing is retried.
type Splitter struct {
	runner    mp4box.Runner
	prober    *mp4box.Prober
	log       zerolog.Logger
	source    string
	outputDir string
	progress  ProgressCallback
}

// New creates a Splitter for the given source video, writing segments into
// outputDir.
func New(runner mp4box.Runner, log zerolog.Logger, source, outputDir string) *Splitter {
	return &Splitter{
		runner:    runner,
		prober:    mp4box.NewProber(runner, log),
		log:       log,
		source:    source,
		outputDir: outputDir,
	}
}

// SetProgressCallback registers a callback invoked after each segment
// completes.
func (s *Splitter) SetProgressCallback(cb ProgressCallback) *Splitter {
	s.progress = cb
	return s
}

// Report describes the outcome of a split run.
type Report struct {
	// Skipped is true when the source was shorter than the requested segment
	// duration (or its duration was unknown) and no work was done.
	Skipped bool

	// Duration is the probed source duration in seconds; 0 means unknown.
	Duration float64

	// Results holds one entry per attempted segment, in index order. On
	// failure the last entry is the failed segment; later segments were
	// never attempted.
	Results []*models.Result
}

// Split probes the source duration and extracts ceil(duration/segmentSeconds)
// segments of segmentSeconds each.
//
// A source shorter than segmentSeconds (including unknown duration) yields a
// non-fatal skipped report with a nil error. A non-zero MP4Box exit aborts
// the remaining segments and returns an error carrying the tool output.
func (s *Splitter) Split(ctx context.Context, segmentSeconds float64) (*Report, error) {
	total := s.prober.Duration(ctx, s.source)

	segments, err := segmenter.Plan(s.source, s.outputDir, total, segmentSeconds)
	if err != nil {
		return nil, err
	}

	if len(segments) == 0 {
		s.log.Info().
			Str("file", s.source).
			Float64("duration", total).
			Float64("segment_duration", segmentSeconds).
			Msg("skipping split: video is shorter than the requested segment duration")
		return &Report{Skipped: true, Duration: total}, nil
	}

	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	report := &Report{
		Duration: total,
		Results:  make([]*models.Result, 0, len(segments)),
	}

	for i, segment := range segments {
		cmd := command.NewSplitBuilder(s.runner, s.source, segment)

		if err := cmd.Run(ctx); err != nil {
			s.log.Error().
				Err(err).
				Str("file", s.source).
				Int("segment", segment.Index+1).
				Int("total", len(segments)).
				Msg("segment split failed, aborting remaining segments")

			failure, _ := models.NewResultFailure(segment.Index, err)
			report.Results = append(report.Results, failure)

			return report, fmt.Errorf("splitting %s: segment %d of %d: %w",
				s.source, segment.Index+1, len(segments), err)
		}

		success, _ := models.NewResultSuccess(segment.Index, segment.OutputPath)
		report.Results = append(report.Results, success)

		s.log.Info().
			Str("file", s.source).
			Int("segment", segment.Index+1).
			Int("total", len(segments)).
			Str("output", segment.OutputPath).
			Msg("segment written")

		if s.progress != nil {
			s.progress(i+1, len(segments), segment)
		}
	}

	return report, nil
}
