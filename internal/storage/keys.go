package storage

import (
	"path"
	"strings"
)

// NormalizeKey strips a leading bucket-name prefix and slashes from a
// caller-supplied object key. The submission path occasionally prefixes the
// bucket twice, so the prefix is stripped up to two times.
func NormalizeKey(key, bucket string) string {
	prefix := bucket + "/"
	for range 2 {
		key = strings.TrimPrefix(key, prefix)
	}
	return strings.TrimLeft(key, "/")
}

// SubtitleKey derives the output object key for a source media key by
// replacing its extension with .srt.
func SubtitleKey(mediaKey string) string {
	ext := path.Ext(mediaKey)
	return strings.TrimSuffix(mediaKey, ext) + ".srt"
}

// SourceExt returns the media key's extension, defaulting to .bin when the
// key has none, so the downloaded file keeps a recognizable suffix.
func SourceExt(mediaKey string) string {
	if ext := path.Ext(mediaKey); ext != "" {
		return ext
	}
	return ".bin"
}
