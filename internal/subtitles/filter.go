package subtitles

import (
	"strings"
	"unicode"

	"scribe/internal/recognition"
)

// FilterWords drops noise tokens: empty or whitespace-only text, and tokens
// consisting solely of digits. The backend emits spurious all-numeric
// tokens for silence and noise regions.
func FilterWords(words []recognition.Word) []recognition.Word {
	var out []recognition.Word
	for _, w := range words {
		text := strings.TrimSpace(w.Text)
		if text == "" || allDigits(text) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// LooksLikeGibberish samples the first sampleSize words of the unfiltered
// list and reports whether the fraction of all-digit tokens strictly
// exceeds threshold. When it does, word timestamps are considered
// unreliable as a unit and the caller should fall back to block rendering.
func LooksLikeGibberish(words []recognition.Word, sampleSize int, threshold float64) bool {
	if len(words) == 0 || sampleSize <= 0 {
		return false
	}
	sample := words
	if len(sample) > sampleSize {
		sample = sample[:sampleSize]
	}
	noisy := 0
	for _, w := range sample {
		if allDigits(strings.TrimSpace(w.Text)) {
			noisy++
		}
	}
	return float64(noisy)/float64(len(sample)) > threshold
}

func allDigits(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
