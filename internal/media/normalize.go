package media

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNormalize indicates the decoder produced no normalized audio output.
var ErrNormalize = errors.New("audio normalization failed")

// SampleRate is the fixed sample rate all downstream timing assumes.
const SampleRate = 16000

const normalizedFileName = "audio_16k.wav"

// Normalize decodes src into a mono 16 kHz pcm_s16le WAV inside workdir and
// returns the output path. The absence of an output file after the run is
// treated as a failed decode regardless of the tool's exit status.
func (t *Tools) Normalize(ctx context.Context, src, workdir string) (string, error) {
	out := filepath.Join(workdir, normalizedFileName)
	output, err := t.run(ctx, t.ffmpeg,
		"-y", "-hide_banner", "-loglevel", "error",
		"-i", src,
		"-vn",
		"-ac", "1",
		"-ar", fmt.Sprintf("%d", SampleRate),
		"-c:a", "pcm_s16le",
		out,
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNormalize, err)
	}
	if _, statErr := os.Stat(out); statErr != nil {
		return "", fmt.Errorf("%w: no output produced: %s", ErrNormalize, string(output))
	}
	return out, nil
}
