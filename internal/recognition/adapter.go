package recognition

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"scribe/internal/logging"
	"scribe/internal/media"
)

// Adapter runs a Recognizer over audio chunks with config narrowing: the
// full configuration is tried first, and a rejection earns exactly one
// retry on the minimal configuration before the error becomes fatal.
type Adapter struct {
	backend Recognizer
	cfg     Config
	logger  *slog.Logger
}

// NewAdapter wires a backend with the job-wide recognition configuration.
func NewAdapter(backend Recognizer, cfg Config, logger *slog.Logger) *Adapter {
	return &Adapter{
		backend: backend,
		cfg:     cfg,
		logger:  logging.NewComponentLogger(logger, "recognition"),
	}
}

// TranscribeChunk reads a chunk from disk and recognizes it. Timestamps in
// the result stay relative to the chunk start; callers stitch them onto the
// global timeline afterwards.
func (a *Adapter) TranscribeChunk(ctx context.Context, chunk media.Chunk) (Result, error) {
	audio, err := os.ReadFile(chunk.Path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: read chunk: %v", ErrRecognize, err)
	}

	result, err := a.backend.Recognize(ctx, audio, a.cfg)
	if err == nil {
		return result, nil
	}
	if ctx.Err() != nil {
		return Result{}, ctx.Err()
	}

	a.logger.WarnContext(ctx, "recognition rejected full config, retrying minimal",
		logging.Float64("offset_sec", chunk.StartOffsetSec),
		logging.Error(err))

	result, retryErr := a.backend.Recognize(ctx, audio, a.cfg.Minimal())
	if retryErr != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrRecognize, retryErr)
	}
	return result, nil
}
