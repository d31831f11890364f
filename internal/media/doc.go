// Package media wraps the ffprobe/ffmpeg binaries for duration probing,
// audio normalization, and chunk splitting.
//
// All downstream timing assumes the normalized form produced here: a single
// mono channel at 16 kHz linear PCM. Chunks are cut in copy mode so the cut
// points fall exactly on sample boundaries and nominal offsets match the
// actual sample content.
package media
