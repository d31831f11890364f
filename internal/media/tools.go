package media

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"scribe/internal/config"
)

// CommandRunner executes an external binary and returns its combined output.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Tools invokes the configured ffmpeg/ffprobe binaries.
type Tools struct {
	ffmpeg  string
	ffprobe string
	runner  CommandRunner
}

// NewTools creates a Tools using the configured binary paths.
func NewTools(cfg config.Tools) *Tools {
	ffmpeg := strings.TrimSpace(cfg.FFmpeg)
	if ffmpeg == "" {
		ffmpeg = "ffmpeg"
	}
	ffprobe := strings.TrimSpace(cfg.FFprobe)
	if ffprobe == "" {
		ffprobe = "ffprobe"
	}
	return &Tools{ffmpeg: ffmpeg, ffprobe: ffprobe}
}

// WithCommandRunner sets a custom command runner (for testing).
func (t *Tools) WithCommandRunner(runner CommandRunner) *Tools {
	t.runner = runner
	return t
}

func (t *Tools) run(ctx context.Context, name string, args ...string) ([]byte, error) {
	if t.runner != nil {
		return t.runner(ctx, name, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	output, err := cmd.CombinedOutput()
	if err != nil {
		return output, fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(output)))
	}
	return output, nil
}
