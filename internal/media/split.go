package media

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
)

// ErrChunk indicates the splitter produced no chunks for non-empty input.
var ErrChunk = errors.New("audio chunking failed")

// Chunk is a bounded contiguous slice of normalized audio. It exists only
// for the duration of one job's processing and is never persisted.
type Chunk struct {
	Path           string
	StartOffsetSec float64
	DurationSec    float64
}

// PlanChunks partitions a total duration into consecutive chunks of at most
// maxSec, with the final chunk carrying the remainder. The chunks cover the
// whole duration with no gaps and no overlaps.
func PlanChunks(totalSec, maxSec float64) []Chunk {
	if totalSec <= 0 || maxSec <= 0 {
		return nil
	}
	var plan []Chunk
	for start := 0.0; start < totalSec; start += maxSec {
		duration := maxSec
		if start+duration > totalSec {
			duration = totalSec - start
		}
		plan = append(plan, Chunk{StartOffsetSec: start, DurationSec: duration})
	}
	return plan
}

// Split cuts the normalized WAV into segments of at most maxSec using the
// ffmpeg segment muxer in copy mode, so no re-encoding occurs and the cut
// points stay on sample boundaries. The returned chunks carry their
// job-global start offsets.
func (t *Tools) Split(ctx context.Context, wavPath, workdir string, maxSec float64) ([]Chunk, error) {
	totalSec, err := t.Duration(ctx, wavPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrChunk, err)
	}

	pattern := filepath.Join(workdir, "chunk_%04d.wav")
	if _, err := t.run(ctx, t.ffmpeg,
		"-y", "-hide_banner", "-loglevel", "error",
		"-i", wavPath,
		"-f", "segment",
		"-segment_time", strconv.FormatFloat(maxSec, 'f', -1, 64),
		"-c", "copy",
		"-reset_timestamps", "1",
		pattern,
	); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrChunk, err)
	}

	files, err := filepath.Glob(filepath.Join(workdir, "chunk_*.wav"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrChunk, err)
	}
	sort.Strings(files)
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no segments produced", ErrChunk)
	}

	plan := PlanChunks(totalSec, maxSec)
	if len(files) != len(plan) {
		return nil, fmt.Errorf("%w: expected %d segments, found %d", ErrChunk, len(plan), len(files))
	}
	for i := range plan {
		plan[i].Path = files[i]
	}
	return plan, nil
}
