package jobs

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

// ErrNotFound indicates no job exists for the requested identifier.
var ErrNotFound = errors.New("job not found")

// Store manages job persistence backed by Postgres.
type Store struct {
	pool *pgxpool.Pool
}

// Open connects to the database and ensures the jobs table exists.
func Open(ctx context.Context, url string) (*Store, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("open jobs db: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping jobs db: %w", err)
	}
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure jobs schema: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() {
	if s != nil && s.pool != nil {
		s.pool.Close()
	}
}

// Create inserts a new job in status queued.
func (s *Store) Create(ctx context.Context, job *Job) error {
	if job == nil {
		return errors.New("job is nil")
	}
	job.Status = StatusQueued
	_, err := s.pool.Exec(ctx,
		`INSERT INTO jobs (id, file_key, status, engine, duration_sec) VALUES ($1, $2, $3, $4, $5)`,
		job.ID, job.FileKey, job.Status, job.Engine, job.DurationSec,
	)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

// GetByID fetches a job by identifier.
func (s *Store) GetByID(ctx context.Context, id string) (*Job, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, file_key, status, COALESCE(engine, ''), COALESCE(srt_key, ''),
		        COALESCE(duration_sec, 0), COALESCE(error_msg, ''), created_at, finished_at
		 FROM jobs WHERE id = $1`, id)
	job, err := scanJob(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	return job, nil
}

// List returns jobs ordered by creation time, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]*Job, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, file_key, status, COALESCE(engine, ''), COALESCE(srt_key, ''),
		        COALESCE(duration_sec, 0), COALESCE(error_msg, ''), created_at, finished_at
		 FROM jobs ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var out []*Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		out = append(out, job)
	}
	return out, rows.Err()
}

// MarkProcessing transitions a job from queued to processing.
func (s *Store) MarkProcessing(ctx context.Context, id string) error {
	if _, err := s.pool.Exec(ctx,
		`UPDATE jobs SET status = $1 WHERE id = $2`,
		StatusProcessing, id,
	); err != nil {
		return fmt.Errorf("mark processing: %w", err)
	}
	return nil
}

// MarkDone records the output reference and measured duration and finishes
// the job in a single update.
func (s *Store) MarkDone(ctx context.Context, id, srtKey string, durationSec float64) error {
	if _, err := s.pool.Exec(ctx,
		`UPDATE jobs SET status = $1, srt_key = $2, duration_sec = $3, finished_at = $4 WHERE id = $5`,
		StatusDone, srtKey, durationSec, time.Now().UTC(), id,
	); err != nil {
		return fmt.Errorf("mark done: %w", err)
	}
	return nil
}

// MarkFailed finishes the job with a bounded failure reason.
func (s *Store) MarkFailed(ctx context.Context, id, reason string) error {
	if _, err := s.pool.Exec(ctx,
		`UPDATE jobs SET status = $1, error_msg = $2, finished_at = $3 WHERE id = $4`,
		StatusFailed, TruncateError(reason), time.Now().UTC(), id,
	); err != nil {
		return fmt.Errorf("mark failed: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*Job, error) {
	var job Job
	if err := row.Scan(
		&job.ID, &job.FileKey, &job.Status, &job.Engine, &job.SrtKey,
		&job.DurationSec, &job.ErrorMsg, &job.CreatedAt, &job.FinishedAt,
	); err != nil {
		return nil, err
	}
	return &job, nil
}
