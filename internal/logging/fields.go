package logging

// Standardized attribute keys shared across components.
const (
	FieldComponent = "component"
	FieldEventType = "event_type"
	FieldJobID     = "job_id"
	FieldFileKey   = "file_key"
	FieldEngine    = "engine"
	FieldChunk     = "chunk"
	FieldDuration  = "duration_sec"
)
