package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"

	"mp4boxer/config"
	"mp4boxer/merger"
	"mp4boxer/models"
	"mp4boxer/mp4box"
	"mp4boxer/splitter"
)

func main() {
	// Step 1: Load configuration (CLI flags > config file > defaults)
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	// Step 2: Handle dry-run mode
	if cfg.DryRun {
		cfg.PrintConfig()
		fmt.Println("\nConfiguration is valid. No MP4Box invocations will be made.")
		return
	}

	log := newLogger(cfg.Verbose)

	// Step 3: Set up context with cancellation for graceful shutdown.
	// Cancelling mid-run may leave partially written segments on disk.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Warn().Msg("interrupt received, stopping")
		cancel()
	}()

	// Step 4: Run the selected operation
	runner := mp4box.NewRunner(cfg.MP4BoxBin)

	switch cfg.Op {
	case config.OpSplit:
		err = runSplit(ctx, cfg, runner, log)
	case config.OpMerge:
		err = runMerge(ctx, cfg, runner, log)
	}

	if err != nil {
		if ctx.Err() == context.Canceled {
			log.Warn().Msg("operation cancelled")
			os.Exit(130) // Standard exit code for SIGINT
		}
		log.Error().Err(err).Msg("operation failed")
		os.Exit(1)
	}
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func runSplit(ctx context.Context, cfg *config.Config, runner mp4box.Runner, log zerolog.Logger) error {
	sp := splitter.New(runner, log, cfg.SourceVideo, cfg.OutputDir)

	// The segment count is only known after probing, so the bar is created
	// on the first callback.
	var bar *progressbar.ProgressBar
	sp.SetProgressCallback(func(done, total int, _ *models.Segment) {
		if bar == nil {
			bar = progressbar.Default(int64(total), "splitting")
		}
		_ = bar.Set(done)
	})

	report, err := sp.Split(ctx, cfg.SegmentDuration)
	if err != nil {
		return err
	}

	if report.Skipped {
		log.Info().
			Str("file", cfg.SourceVideo).
			Msg("nothing to do: video is shorter than the requested segment duration")
		return nil
	}

	log.Info().
		Int("segments", len(report.Results)).
		Str("output_dir", cfg.OutputDir).
		Msg("split completed")
	return nil
}

func runMerge(ctx context.Context, cfg *config.Config, runner mp4box.Runner, log zerolog.Logger) error {
	order, ok := merger.OrderByName(cfg.Order)
	if !ok {
		return fmt.Errorf("unknown merge order %q", cfg.Order)
	}

	m := merger.New(runner, log, cfg.SegmentsDir, cfg.Output)

	if err := m.Merge(ctx, order); err != nil {
		if errors.Is(err, merger.ErrNoInputFiles) {
			return fmt.Errorf("nothing to merge: %w", err)
		}
		return err
	}

	return nil
}
