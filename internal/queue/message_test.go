package queue

import (
	"strings"
	"testing"
)

func TestMessageRoundTrip(t *testing.T) {
	msg := Message{JobID: "8e0b1c9a", FileKey: "uploads/talk.mp4", Engine: "google-stt-v2"}
	payload, err := msg.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := DecodeMessage(payload)
	if err != nil {
		t.Fatalf("DecodeMessage: %v", err)
	}
	if *got != msg {
		t.Fatalf("round trip mismatch: %+v != %+v", got, msg)
	}
}

func TestDecodeMessageTolerantOfExtraFields(t *testing.T) {
	payload := `{"job_id":"j1","file_key":"a.mp4","engine":"e","user_id":"caller-7"}`
	msg, err := DecodeMessage(payload)
	if err != nil {
		t.Fatalf("DecodeMessage: %v", err)
	}
	if msg.JobID != "j1" || msg.FileKey != "a.mp4" {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

func TestDecodeMessageRequiredFields(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		wantErr string
	}{
		{"not json", "nope", "decode queue message"},
		{"missing job id", `{"file_key":"a.mp4"}`, "job_id"},
		{"missing file key", `{"job_id":"j1"}`, "file_key"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeMessage(tc.payload); err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}
