package jobs

import (
	"strings"
	"time"
)

// Status represents the lifecycle of a transcription job.
type Status string

const (
	StatusQueued     Status = "queued"
	StatusProcessing Status = "processing"
	StatusDone       Status = "done"
	StatusFailed     Status = "failed"
)

var allStatuses = []Status{StatusQueued, StatusProcessing, StatusDone, StatusFailed}

// maxErrorLength bounds the persisted failure reason.
const maxErrorLength = 4000

// Job represents one end-to-end transcription request.
type Job struct {
	ID          string
	FileKey     string
	Status      Status
	Engine      string
	SrtKey      string
	DurationSec float64
	ErrorMsg    string
	CreatedAt   time.Time
	FinishedAt  *time.Time
}

// ParseStatus converts a string into a known Status.
func ParseStatus(value string) (Status, bool) {
	normalized := Status(strings.ToLower(strings.TrimSpace(value)))
	for _, status := range allStatuses {
		if status == normalized {
			return status, true
		}
	}
	return "", false
}

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDone || s == StatusFailed
}

// TruncateError bounds a failure reason to the persisted column budget.
func TruncateError(reason string) string {
	reason = strings.TrimSpace(reason)
	if len(reason) <= maxErrorLength {
		return reason
	}
	return reason[:maxErrorLength]
}
