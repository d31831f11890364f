package config

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Validate checks the configuration for values the pipeline cannot run with.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Queue.RedisURL) == "" {
		problems = append(problems, "queue.redis_url is required")
	}
	if c.Queue.Key == "" {
		problems = append(problems, "queue.key is required")
	}
	if c.Queue.PopTimeoutSeconds <= 0 {
		problems = append(problems, "queue.pop_timeout_seconds must be positive")
	}
	if strings.TrimSpace(c.Storage.Bucket) == "" {
		problems = append(problems, "storage.bucket is required")
	}
	if strings.TrimSpace(c.Database.URL) == "" {
		problems = append(problems, "database.url is required")
	}
	if c.Recognition.MaxChunkSeconds <= 0 {
		problems = append(problems, "recognition.max_chunk_seconds must be positive")
	}
	if c.Recognition.Language != "" {
		if _, err := language.Parse(c.Recognition.Language); err != nil {
			problems = append(problems, fmt.Sprintf("recognition.language %q is not a valid BCP-47 tag", c.Recognition.Language))
		}
	}
	if c.Subtitles.PauseGapSeconds <= 0 {
		problems = append(problems, "subtitles.pause_gap_seconds must be positive")
	}
	if c.Subtitles.MaxCueChars <= 0 {
		problems = append(problems, "subtitles.max_cue_chars must be positive")
	}
	if c.Subtitles.MaxCueSeconds <= 0 {
		problems = append(problems, "subtitles.max_cue_seconds must be positive")
	}
	if c.Subtitles.LineLength <= 0 {
		problems = append(problems, "subtitles.line_length must be positive")
	}
	if c.Subtitles.GibberishThreshold <= 0 || c.Subtitles.GibberishThreshold >= 1 {
		problems = append(problems, "subtitles.gibberish_threshold must be between 0 and 1")
	}

	if len(problems) > 0 {
		return errors.New("invalid config: " + strings.Join(problems, "; "))
	}
	return nil
}
