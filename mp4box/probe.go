package mp4box

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"mp4boxer/internal/timeutil"
)

// durationMarker identifies the line of MP4Box -info output that carries the
// total playback duration.
const durationMarker = "Duration"

// Prober extracts duration metadata from media files via MP4Box -info.
type Prober struct {
	runner Runner
	log    zerolog.Logger
}

// NewProber creates a Prober using the given runner and logger.
func NewProber(runner Runner, log zerolog.Logger) *Prober {
	return &Prober{runner: runner, log: log}
}

// Duration returns the duration of the media file in seconds.
//
// It invokes MP4Box in info mode, captures the combined output, and scans it
// line-by-line for the first line containing the duration marker. The second
// whitespace-delimited token of that line is parsed as an HH.MM.SS.mmm
// duration.
//
// A failed process, a missing duration line, or an unparsable token all
// degrade to 0 ("duration unknown") — probe failures never propagate to the
// caller.
func (p *Prober) Duration(ctx context.Context, path string) float64 {
	output, err := p.runner.CombinedOutput(ctx, "-info", path)
	if err != nil {
		p.log.Warn().
			Err(err).
			Str("file", path).
			Str("output", string(output)).
			Msg("mp4box -info failed, treating duration as unknown")
		return 0
	}

	for _, line := range strings.Split(string(output), "\n") {
		if !strings.Contains(line, durationMarker) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			p.log.Warn().Str("file", path).Str("line", line).Msg("duration line has no token")
			return 0
		}

		seconds, err := timeutil.ParseDurationToken(fields[1])
		if err != nil {
			p.log.Warn().Err(err).Str("file", path).Msg("could not parse duration token")
			return 0
		}

		return seconds
	}

	p.log.Warn().Str("file", path).Msg("no duration line in mp4box output")
	return 0
}
