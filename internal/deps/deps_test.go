package deps

import (
	"strings"
	"testing"

	"scribe/internal/config"
)

func TestCheckReportsMissingBinary(t *testing.T) {
	statuses := Check([]Requirement{
		{Name: "ffmpeg", Command: "definitely-not-a-real-binary-xyz"},
		{Name: "ffprobe", Command: ""},
	})
	if len(statuses) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(statuses))
	}
	if statuses[0].Available || !strings.Contains(statuses[0].Detail, "not found") {
		t.Fatalf("unexpected status for missing binary: %+v", statuses[0])
	}
	if statuses[1].Available || statuses[1].Detail != "command not configured" {
		t.Fatalf("unexpected status for empty command: %+v", statuses[1])
	}
}

func TestCheckFindsShell(t *testing.T) {
	statuses := Check([]Requirement{{Name: "sh", Command: "sh"}})
	if !statuses[0].Available {
		t.Fatalf("sh should be on PATH: %+v", statuses[0])
	}
}

func TestVerifyNamesEveryMissingTool(t *testing.T) {
	err := Verify(config.Tools{FFmpeg: "no-such-ffmpeg", FFprobe: "no-such-ffprobe"})
	if err == nil {
		t.Fatal("expected verification failure")
	}
	if !strings.Contains(err.Error(), "ffmpeg") || !strings.Contains(err.Error(), "ffprobe") {
		t.Fatalf("error should name both tools: %v", err)
	}
}
