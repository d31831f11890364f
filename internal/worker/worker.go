package worker

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"scribe/internal/config"
	"scribe/internal/logging"
	"scribe/internal/media"
	"scribe/internal/queue"
	"scribe/internal/recognition"
	"scribe/internal/storage"
	"scribe/internal/subtitles"
)

// MessageSource is the blocking dequeue the worker consumes from. A nil
// message with nil error means the wait timed out with nothing to do.
type MessageSource interface {
	Pop(ctx context.Context, timeout time.Duration) (*queue.Message, error)
}

// JobStore covers the three lifecycle transitions the worker performs.
type JobStore interface {
	MarkProcessing(ctx context.Context, id string) error
	MarkDone(ctx context.Context, id, srtKey string, durationSec float64) error
	MarkFailed(ctx context.Context, id, reason string) error
}

// MediaTools covers the ffmpeg/ffprobe operations of the pipeline.
type MediaTools interface {
	Duration(ctx context.Context, path string) (float64, error)
	Normalize(ctx context.Context, src, workdir string) (string, error)
	Split(ctx context.Context, wavPath, workdir string, maxSec float64) ([]media.Chunk, error)
}

// Transcriber recognizes one audio chunk, fallback handling included.
type Transcriber interface {
	TranscribeChunk(ctx context.Context, chunk media.Chunk) (recognition.Result, error)
}

// Worker processes jobs one at a time, strictly sequentially.
type Worker struct {
	cfg         *config.Config
	source      MessageSource
	store       JobStore
	objects     storage.ObjectStore
	tools       MediaTools
	transcriber Transcriber
	logger      *slog.Logger
}

// New assembles a worker from its collaborators.
func New(cfg *config.Config, source MessageSource, store JobStore, objects storage.ObjectStore, tools MediaTools, transcriber Transcriber, logger *slog.Logger) *Worker {
	return &Worker{
		cfg:         cfg,
		source:      source,
		store:       store,
		objects:     objects,
		tools:       tools,
		transcriber: transcriber,
		logger:      logging.NewComponentLogger(logger, "worker"),
	}
}

// RunOnce performs one blocking dequeue and processes the message it
// yields, if any. A timed-out wait returns nil; it is the expected idle
// case. Processing failures are persisted on the job record and also
// returned so the caller can log and exit non-zero.
func (w *Worker) RunOnce(ctx context.Context) error {
	timeout := time.Duration(w.cfg.Queue.PopTimeoutSeconds) * time.Second
	msg, err := w.source.Pop(ctx, timeout)
	if err != nil {
		return fmt.Errorf("dequeue: %w", err)
	}
	if msg == nil {
		w.logger.InfoContext(ctx, "queue empty, exiting",
			logging.Duration("wait", timeout))
		return nil
	}

	logger := w.logger.With(
		logging.String(logging.FieldJobID, msg.JobID),
		logging.String(logging.FieldFileKey, msg.FileKey),
		logging.String(logging.FieldEngine, msg.Engine))
	logger.InfoContext(ctx, "job dequeued")

	if err := w.store.MarkProcessing(ctx, msg.JobID); err != nil {
		return fmt.Errorf("mark processing: %w", err)
	}
	if err := w.process(ctx, msg, logger); err != nil {
		logger.ErrorContext(ctx, "job failed", logging.Error(err))
		if markErr := w.store.MarkFailed(ctx, msg.JobID, err.Error()); markErr != nil {
			logger.ErrorContext(ctx, "failed to persist failure", logging.Error(markErr))
		}
		return err
	}
	logger.InfoContext(ctx, "job done")
	return nil
}

func (w *Worker) process(ctx context.Context, msg *queue.Message, logger *slog.Logger) error {
	key := storage.NormalizeKey(msg.FileKey, w.cfg.Storage.Bucket)

	exists, err := w.objects.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, key)
	}

	workdir, err := os.MkdirTemp(w.cfg.Paths.StagingDir, "job-"+msg.JobID+"-")
	if err != nil {
		return fmt.Errorf("create staging dir: %w", err)
	}
	defer os.RemoveAll(workdir)

	src := filepath.Join(workdir, "source"+storage.SourceExt(key))
	if err := w.objects.Download(ctx, key, src); err != nil {
		return err
	}

	durationSec, err := w.tools.Duration(ctx, src)
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "media probed",
		logging.Float64(logging.FieldDuration, durationSec))

	wav, err := w.tools.Normalize(ctx, src, workdir)
	if err != nil {
		return err
	}

	chunks, err := w.tools.Split(ctx, wav, workdir, w.cfg.Recognition.MaxChunkSeconds)
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "audio split", logging.Int("chunks", len(chunks)))

	// Chunks run strictly in order; each result's offset comes from its
	// chunk, so stitching keeps the global timeline monotonic.
	var (
		results     []recognition.ChunkResult
		transcripts []string
	)
	for i, chunk := range chunks {
		result, err := w.transcriber.TranscribeChunk(ctx, chunk)
		if err != nil {
			return fmt.Errorf("chunk %d: %w", i, err)
		}
		results = append(results, recognition.ChunkResult{
			OffsetSec: chunk.StartOffsetSec,
			Words:     result.Words,
		})
		if text := strings.TrimSpace(result.Transcript); text != "" {
			transcripts = append(transcripts, text)
		}
		logger.InfoContext(ctx, "chunk recognized",
			logging.Int(logging.FieldChunk, i),
			logging.Int("words", len(result.Words)))
	}

	srtText := w.render(ctx, recognition.Stitch(results), strings.Join(transcripts, " "), durationSec, logger)

	srtPath := filepath.Join(workdir, "subtitle.srt")
	if err := os.WriteFile(srtPath, []byte(srtText), 0o644); err != nil {
		return fmt.Errorf("write subtitle: %w", err)
	}

	outKey := storage.SubtitleKey(key)
	if err := w.objects.Upload(ctx, outKey, srtPath, "application/x-subrip"); err != nil {
		return err
	}

	if err := w.store.MarkDone(ctx, msg.JobID, outKey, durationSec); err != nil {
		return fmt.Errorf("mark done: %w", err)
	}
	return nil
}

// render picks the rendering path. Gibberish and timestamp-free results are
// degraded outcomes, not errors: the job still completes as done.
func (w *Worker) render(ctx context.Context, words []recognition.Word, transcript string, durationSec float64, logger *slog.Logger) string {
	sub := w.cfg.Subtitles

	if len(words) == 0 {
		logger.WarnContext(ctx, "no word timestamps, rendering single cue")
		return subtitles.RenderFallback(transcript, durationSec, sub.LineLength)
	}

	if subtitles.LooksLikeGibberish(words, sub.GibberishSample, sub.GibberishThreshold) {
		logger.WarnContext(ctx, "transcript classified as gibberish, rendering blocks")
		cues := subtitles.SegmentBlocks(transcript, sub.BlockWords, sub.BlockSeconds)
		if len(cues) == 0 {
			return subtitles.RenderFallback(transcript, durationSec, sub.LineLength)
		}
		return subtitles.Render(cues, sub.LineLength)
	}

	filtered := subtitles.FilterWords(words)
	if len(filtered) == 0 {
		logger.WarnContext(ctx, "all words filtered as noise, rendering single cue")
		return subtitles.RenderFallback("", durationSec, sub.LineLength)
	}
	cues := subtitles.SegmentWords(filtered, subtitles.Policy{
		PauseGapSeconds: sub.PauseGapSeconds,
		MaxCueChars:     sub.MaxCueChars,
		MaxCueSeconds:   sub.MaxCueSeconds,
	})
	return subtitles.Render(cues, sub.LineLength)
}
