// Package merger implements the merge operation: list the video files in a
// directory, order them with a caller-supplied key, and concatenate them into
// one output file with a single MP4Box invocation.
package merger

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"mp4boxer/command"
	"mp4boxer/mp4box"
)

// videoExt is the media-file extension recognized when listing inputs.
const videoExt = ".mp4"

// ErrNoInputFiles is returned when the segments directory contains no video
// files. No process is spawned in that case.
var ErrNoInputFiles = errors.New("no video files found in segments directory")

// Merger concatenates the video files of a directory into one output file.
type Merger struct {
	runner      mp4box.Runner
	log         zerolog.Logger
	segmentsDir string
	output      string
}

// New creates a Merger over segmentsDir writing the concatenated result to
// output.
func New(runner mp4box.Runner, log zerolog.Logger, segmentsDir, output string) *Merger {
	return &Merger{
		runner:      runner,
		log:         log,
		segmentsDir: segmentsDir,
		output:      output,
	}
}

// Merge lists the .mp4 files in the segments directory (flat, non-recursive),
// sorts them with the given ordering, and runs a single MP4Box -force-cat
// invocation concatenating them into the output file.
//
// The sort is stable, so files with equal keys keep their listing order. A
// nil ordering falls back to Lexicographic. A directory with a single file is
// merged anyway (the result degenerates to a copy); this is logged as a
// warning. A non-zero MP4Box exit fails the whole merge — partial-output
// state is owned by the tool.
func (m *Merger) Merge(ctx context.Context, less Less) error {
	files, err := m.listVideoFiles()
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("%w: %s", ErrNoInputFiles, m.segmentsDir)
	}

	if len(files) == 1 {
		m.log.Warn().
			Str("file", files[0]).
			Msg("only one video file to merge, output degenerates to a copy")
	}

	if less == nil {
		less = Lexicographic()
	}
	sort.SliceStable(files, func(i, j int) bool { return less(files[i], files[j]) })

	m.log.Info().Strs("files", files).Msg("merging video files")

	cmd := command.NewMergeBuilder(m.runner, files, m.output)
	if err := cmd.Run(ctx); err != nil {
		m.log.Error().Err(err).Str("output", m.output).Msg("merge failed")
		return fmt.Errorf("merging %s: %w", m.segmentsDir, err)
	}

	m.log.Info().Str("output", m.output).Int("inputs", len(files)).Msg("videos merged")
	return nil
}

// listVideoFiles returns the .mp4 files directly under the segments
// directory. Subdirectories are not descended into.
func (m *Merger) listVideoFiles() ([]string, error) {
	entries, err := os.ReadDir(m.segmentsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read segments directory: %w", err)
	}

	files := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (string, bool) {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), videoExt) {
			return "", false
		}
		return filepath.Join(m.segmentsDir, entry.Name()), true
	})

	return files, nil
}
