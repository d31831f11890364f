package main

import (
	"strings"
	"testing"
	"time"
)

func TestValueOrDash(t *testing.T) {
	if got := valueOrDash(""); got != "-" {
		t.Fatalf("valueOrDash(\"\") = %q", got)
	}
	if got := valueOrDash("media/a.srt"); got != "media/a.srt" {
		t.Fatalf("valueOrDash = %q", got)
	}
}

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(0); got != "-" {
		t.Fatalf("formatDuration(0) = %q", got)
	}
	if got := formatDuration(93.25); got != "93.2s" {
		t.Fatalf("formatDuration(93.25) = %q", got)
	}
}

func TestFormatFinished(t *testing.T) {
	if got := formatFinished(nil); got != "-" {
		t.Fatalf("formatFinished(nil) = %q", got)
	}
	now := time.Now()
	if got := formatFinished(&now); got == "-" {
		t.Fatal("formatFinished should format a set time")
	}
}

func TestRenderTableIncludesHeadersAndRows(t *testing.T) {
	out := renderTable(
		[]string{"ID", "Status"},
		[][]string{{"j-1", "done"}, {"j-2", "failed"}},
		[]columnAlignment{alignLeft, alignLeft},
	)
	for _, want := range []string{"ID", "Status", "j-1", "done", "j-2", "failed"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table output missing %q:\n%s", want, out)
		}
	}
	if renderTable(nil, nil, nil) != "" {
		t.Fatal("empty header set should render nothing")
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCommand()
	want := map[string]bool{"submit": false, "show": false, "list": false, "queue": false, "config": false}
	for _, cmd := range root.Commands() {
		name := strings.Fields(cmd.Use)[0]
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("root command missing %q subcommand", name)
		}
	}
}
