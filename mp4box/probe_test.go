package mp4box

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner returns canned output without spawning a process.
type fakeRunner struct {
	output []byte
	err    error
	calls  [][]string
}

func (f *fakeRunner) CombinedOutput(_ context.Context, args ...string) ([]byte, error) {
	f.calls = append(f.calls, args)
	return f.output, f.err
}

func TestProber_Duration(t *testing.T) {
	output := `* Movie Info *
	Timescale 1000 - 1 track
	Duration 00:01:30.000
	Fragmented File no
`
	runner := &fakeRunner{output: []byte(output)}
	prober := NewProber(runner, zerolog.Nop())

	got := prober.Duration(context.Background(), "/videos/holiday.mp4")

	assert.Equal(t, 90.0, got)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"-info", "/videos/holiday.mp4"}, runner.calls[0])
}

func TestProber_Duration_DotSeparatedToken(t *testing.T) {
	runner := &fakeRunner{output: []byte("Duration 01.02.03.004\n")}
	prober := NewProber(runner, zerolog.Nop())

	got := prober.Duration(context.Background(), "/videos/long.mp4")

	assert.InDelta(t, 3723.004, got, 1e-9)
}

func TestProber_Duration_NoDurationLine(t *testing.T) {
	runner := &fakeRunner{output: []byte("* Movie Info *\n\tTimescale 1000 - 1 track\n")}
	prober := NewProber(runner, zerolog.Nop())

	got := prober.Duration(context.Background(), "/videos/holiday.mp4")

	assert.Equal(t, 0.0, got)
}

func TestProber_Duration_ProcessFailure(t *testing.T) {
	runner := &fakeRunner{output: []byte("Error opening file"), err: errors.New("exit status 1")}
	prober := NewProber(runner, zerolog.Nop())

	got := prober.Duration(context.Background(), "/videos/missing.mp4")

	assert.Equal(t, 0.0, got)
}

func TestProber_Duration_UnparsableToken(t *testing.T) {
	runner := &fakeRunner{output: []byte("Duration unknown\n")}
	prober := NewProber(runner, zerolog.Nop())

	got := prober.Duration(context.Background(), "/videos/odd.mp4")

	assert.Equal(t, 0.0, got)
}

func TestProber_Duration_FirstDurationLineWins(t *testing.T) {
	output := "Duration 00:00:10.000\nTrack Duration 00:00:20.000\n"
	runner := &fakeRunner{output: []byte(output)}
	prober := NewProber(runner, zerolog.Nop())

	got := prober.Duration(context.Background(), "/videos/tracks.mp4")

	assert.Equal(t, 10.0, got)
}
