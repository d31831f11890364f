package storage

import "testing"

func TestNormalizeKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"uploads/video.mp4", "video.mp4"},
		{"uploads/uploads/video.mp4", "video.mp4"},
		{"/video.mp4", "video.mp4"},
		{"video.mp4", "video.mp4"},
		{"uploads/dir/video.mp4", "dir/video.mp4"},
	}
	for _, tc := range cases {
		if got := NormalizeKey(tc.in, "uploads"); got != tc.want {
			t.Fatalf("NormalizeKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSubtitleKey(t *testing.T) {
	if got := SubtitleKey("dir/video.mp4"); got != "dir/video.srt" {
		t.Fatalf("unexpected subtitle key %q", got)
	}
	if got := SubtitleKey("noext"); got != "noext.srt" {
		t.Fatalf("unexpected subtitle key %q", got)
	}
}

func TestSourceExt(t *testing.T) {
	if got := SourceExt("a/b.webm"); got != ".webm" {
		t.Fatalf("unexpected ext %q", got)
	}
	if got := SourceExt("a/b"); got != ".bin" {
		t.Fatalf("unexpected ext %q", got)
	}
}
