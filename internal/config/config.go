package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains local directory configuration.
type Paths struct {
	StagingDir string `toml:"staging_dir"`
	LogDir     string `toml:"log_dir"`
}

// Queue contains configuration for the Redis job queue.
type Queue struct {
	RedisURL          string `toml:"redis_url"`
	Key               string `toml:"key"`
	PopTimeoutSeconds int    `toml:"pop_timeout_seconds"`
}

// Storage contains configuration for the S3-compatible object store.
type Storage struct {
	Endpoint  string `toml:"endpoint"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	Bucket    string `toml:"bucket"`
	UseSSL    bool   `toml:"use_ssl"`
}

// Database contains configuration for the job record store.
type Database struct {
	URL string `toml:"url"`
}

// Recognition contains configuration for the speech backend.
type Recognition struct {
	ProjectID       string   `toml:"project_id"`
	Region          string   `toml:"region"`
	Language        string   `toml:"language"`
	Model           string   `toml:"model"`
	PhraseHints     []string `toml:"phrase_hints"`
	MaxChunkSeconds float64  `toml:"max_chunk_seconds"`
}

// Subtitles contains the cue segmentation and rendering tunables.
type Subtitles struct {
	PauseGapSeconds    float64 `toml:"pause_gap_seconds"`
	MaxCueChars        int     `toml:"max_cue_chars"`
	MaxCueSeconds      float64 `toml:"max_cue_seconds"`
	LineLength         int     `toml:"line_length"`
	BlockWords         int     `toml:"block_words"`
	BlockSeconds       float64 `toml:"block_seconds"`
	GibberishSample    int     `toml:"gibberish_sample"`
	GibberishThreshold float64 `toml:"gibberish_threshold"`
}

// Tools contains external binary locations.
type Tools struct {
	FFmpeg  string `toml:"ffmpeg"`
	FFprobe string `toml:"ffprobe"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config is the root configuration document.
type Config struct {
	Paths       Paths       `toml:"paths"`
	Queue       Queue       `toml:"queue"`
	Storage     Storage     `toml:"storage"`
	Database    Database    `toml:"database"`
	Recognition Recognition `toml:"recognition"`
	Subtitles   Subtitles   `toml:"subtitles"`
	Tools       Tools       `toml:"tools"`
	Logging     Logging     `toml:"logging"`
}

// DefaultConfigPath returns the conventional config file location.
func DefaultConfigPath() string {
	return filepath.Join("~", ".config", "scribe", "config.toml")
}

// Load reads the configuration from path, falling back to the default
// location when path is empty. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	resolved := strings.TrimSpace(path)
	if resolved == "" {
		resolved = DefaultConfigPath()
	}
	resolved = ExpandPath(resolved)

	cfg := Default()
	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && strings.TrimSpace(path) == "" {
			cfg.normalize()
			return &cfg, cfg.Validate()
		}
		return nil, fmt.Errorf("read config %s: %w", resolved, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", resolved, err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// WriteSample writes the embedded sample configuration to path, refusing to
// overwrite an existing file.
func WriteSample(path string) error {
	path = ExpandPath(path)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// EnsureDirectories creates the staging and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.StagingDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(ExpandPath(dir), 0o755); err != nil {
			return fmt.Errorf("ensure directory %s: %w", dir, err)
		}
	}
	return nil
}

// ExpandPath resolves a leading ~ against the current user's home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/"))
		}
	}
	return path
}

func (c *Config) normalize() {
	c.Paths.StagingDir = ExpandPath(c.Paths.StagingDir)
	c.Paths.LogDir = ExpandPath(c.Paths.LogDir)
	c.Queue.Key = strings.TrimSpace(c.Queue.Key)
	c.Recognition.Language = strings.TrimSpace(c.Recognition.Language)
	c.Recognition.Region = strings.TrimSpace(c.Recognition.Region)
	if c.Tools.FFmpeg == "" {
		c.Tools.FFmpeg = "ffmpeg"
	}
	if c.Tools.FFprobe == "" {
		c.Tools.FFprobe = "ffprobe"
	}
}
