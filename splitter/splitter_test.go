package splitter

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mp4boxer/models"
)

// fakeRunner answers -info with canned output and scripts split failures.
type fakeRunner struct {
	infoOutput string
	infoErr    error

	splitFailAt int // 1-based split invocation to fail, 0 = never
	splitCalls  int
	calls       [][]string
}

func (f *fakeRunner) CombinedOutput(_ context.Context, args ...string) ([]byte, error) {
	f.calls = append(f.calls, args)

	if len(args) > 0 && args[0] == "-info" {
		return []byte(f.infoOutput), f.infoErr
	}

	f.splitCalls++
	if f.splitFailAt != 0 && f.splitCalls == f.splitFailAt {
		return []byte("splitx: segment boundary error"), errors.New("exit status 1")
	}
	return nil, nil
}

func (f *fakeRunner) splitArgs() [][]string {
	var out [][]string
	for _, call := range f.calls {
		if len(call) > 0 && call[0] == "-splitx" {
			out = append(out, call)
		}
	}
	return out
}

func infoOutput(duration string) string {
	return "* Movie Info *\n\tDuration " + duration + "\n"
}

func TestSplit_TwoSegments(t *testing.T) {
	outputDir := t.TempDir()
	runner := &fakeRunner{infoOutput: infoOutput("00:01:30.000")} // 90 seconds

	sp := New(runner, zerolog.Nop(), "/videos/holiday.mp4", outputDir)
	report, err := sp.Split(context.Background(), 60)

	require.NoError(t, err)
	assert.False(t, report.Skipped)
	assert.Equal(t, 90.0, report.Duration)
	require.Len(t, report.Results, 2)

	splits := runner.splitArgs()
	require.Len(t, splits, 2)
	assert.Equal(t, []string{
		"-splitx", "0:60",
		"/videos/holiday.mp4",
		"-out", filepath.Join(outputDir, "holiday_segment_1.mp4"),
	}, splits[0])
	assert.Equal(t, []string{
		"-splitx", "60:120",
		"/videos/holiday.mp4",
		"-out", filepath.Join(outputDir, "holiday_segment_2.mp4"),
	}, splits[1])

	for i, result := range report.Results {
		assert.True(t, result.Success)
		assert.Equal(t, i, result.Index)
	}
}

func TestSplit_AbortsOnToolFailure(t *testing.T) {
	outputDir := t.TempDir()
	// 150 seconds at 60 per segment: 3 segments planned.
	runner := &fakeRunner{infoOutput: infoOutput("00:02:30.000"), splitFailAt: 2}

	sp := New(runner, zerolog.Nop(), "/videos/film.mp4", outputDir)
	report, err := sp.Split(context.Background(), 60)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "segment 2 of 3")

	// Segment 1 was attempted, segment 3 was not.
	assert.Equal(t, 2, runner.splitCalls)

	require.Len(t, report.Results, 2)
	assert.True(t, report.Results[0].Success)
	assert.False(t, report.Results[1].Success)
	assert.Error(t, report.Results[1].Err)
}

func TestSplit_SequentialIndexOrder(t *testing.T) {
	outputDir := t.TempDir()
	runner := &fakeRunner{infoOutput: infoOutput("00:04:10.000")} // 250s -> 5 segments

	sp := New(runner, zerolog.Nop(), "/videos/film.mp4", outputDir)
	var seen []int
	sp.SetProgressCallback(func(done, total int, _ *models.Segment) {
		seen = append(seen, done)
		assert.Equal(t, 5, total)
	})

	_, err := sp.Split(context.Background(), 60)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, seen)

	splits := runner.splitArgs()
	require.Len(t, splits, 5)
	for i, args := range splits {
		expected := []string{
			"-splitx", fmt.Sprintf("%d:%d", i*60, (i+1)*60),
			"/videos/film.mp4",
			"-out", filepath.Join(outputDir, fmt.Sprintf("film_segment_%d.mp4", i+1)),
		}
		assert.Equal(t, expected, args)
	}
}

func TestSplit_SkippedWhenTooShort(t *testing.T) {
	runner := &fakeRunner{infoOutput: infoOutput("00:00:30.000")}

	sp := New(runner, zerolog.Nop(), "/videos/clip.mp4", t.TempDir())
	report, err := sp.Split(context.Background(), 60)

	require.NoError(t, err)
	assert.True(t, report.Skipped)
	assert.Equal(t, 30.0, report.Duration)
	assert.Empty(t, report.Results)

	// Only the probe ran; no split was spawned.
	assert.Empty(t, runner.splitArgs())
}

func TestSplit_SkippedOnUnknownDuration(t *testing.T) {
	runner := &fakeRunner{infoOutput: "Error opening file", infoErr: errors.New("exit status 1")}

	sp := New(runner, zerolog.Nop(), "/videos/broken.mp4", t.TempDir())
	report, err := sp.Split(context.Background(), 60)

	require.NoError(t, err)
	assert.True(t, report.Skipped)
	assert.Equal(t, 0.0, report.Duration)
	assert.Empty(t, runner.splitArgs())
}

func TestSplit_InvalidSegmentDuration(t *testing.T) {
	runner := &fakeRunner{infoOutput: infoOutput("00:01:30.000")}

	sp := New(runner, zerolog.Nop(), "/videos/film.mp4", t.TempDir())
	_, err := sp.Split(context.Background(), 0)

	assert.Error(t, err)
}
