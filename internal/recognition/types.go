package recognition

import (
	"context"
	"errors"
)

// ErrRecognize indicates the backend rejected a chunk even on the minimal
// configuration. The error is fatal for the whole job.
var ErrRecognize = errors.New("recognition failed")

// Word is a single recognized token with timestamps in seconds. Before
// stitching the timestamps are relative to the chunk start; afterwards they
// are job-global.
type Word struct {
	Text  string
	Start float64
	End   float64
}

// Result is the usable portion of one backend response: the top-ranked
// alternative's transcript and word timings. Lower-ranked alternatives are
// discarded.
type Result struct {
	Transcript string
	Words      []Word
}

// Config describes the recognition features requested for a chunk.
type Config struct {
	Language    string
	Model       string
	Punctuation bool
	PhraseHints []string
}

// Minimal returns the known-safe fallback configuration, preserving only
// language and model. Punctuation and phrase adaptation are dropped; word
// time offsets are always requested.
func (c Config) Minimal() Config {
	return Config{Language: c.Language, Model: c.Model}
}

// Recognizer transcribes one chunk of audio.
type Recognizer interface {
	Recognize(ctx context.Context, audio []byte, cfg Config) (Result, error)
}
