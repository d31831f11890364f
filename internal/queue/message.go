package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Message is the payload carried per job on the queue.
type Message struct {
	JobID   string `json:"job_id"`
	FileKey string `json:"file_key"`
	Engine  string `json:"engine,omitempty"`
}

// Encode serializes the message for transport.
func (m Message) Encode() (string, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encode queue message: %w", err)
	}
	return string(data), nil
}

// DecodeMessage parses a queue payload and checks the required fields.
func DecodeMessage(payload string) (*Message, error) {
	var msg Message
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		return nil, fmt.Errorf("decode queue message: %w", err)
	}
	if strings.TrimSpace(msg.JobID) == "" {
		return nil, errors.New("queue message missing job_id")
	}
	if strings.TrimSpace(msg.FileKey) == "" {
		return nil, errors.New("queue message missing file_key")
	}
	return &msg, nil
}
