package subtitles

import (
	"strings"

	"scribe/internal/recognition"
)

// Cue is one subtitle entry: a contiguous run of words with derived start,
// end, and joined text.
type Cue struct {
	Start float64
	End   float64
	Text  string
}

// Policy holds the cue segmentation limits.
type Policy struct {
	PauseGapSeconds float64
	MaxCueChars     int
	MaxCueSeconds   float64
}

// SegmentWords partitions the filtered word timeline into cues. Every word
// lands in exactly one cue and cue order follows word order. A boundary is
// forced after the pending group when the gap to the next word reaches the
// pause threshold, the group's last word ends a sentence, or appending the
// next word would exceed the character or duration limit. Ties always
// break, never merge past a limit.
func SegmentWords(words []recognition.Word, policy Policy) []Cue {
	if len(words) == 0 {
		return nil
	}

	var cues []Cue
	pending := []recognition.Word{words[0]}
	for _, next := range words[1:] {
		if breakBefore(pending, next, policy) {
			cues = append(cues, makeCue(pending))
			pending = pending[:0]
		}
		pending = append(pending, next)
	}
	return append(cues, makeCue(pending))
}

func breakBefore(pending []recognition.Word, next recognition.Word, policy Policy) bool {
	last := pending[len(pending)-1]
	if next.Start-last.End >= policy.PauseGapSeconds {
		return true
	}
	if endsSentence(last.Text) {
		return true
	}
	if joinedLen(pending)+1+len([]rune(next.Text)) > policy.MaxCueChars {
		return true
	}
	if next.End-pending[0].Start > policy.MaxCueSeconds {
		return true
	}
	return false
}

func endsSentence(text string) bool {
	text = strings.TrimSpace(text)
	return strings.HasSuffix(text, ".") || strings.HasSuffix(text, "?") || strings.HasSuffix(text, "!")
}

func joinedLen(words []recognition.Word) int {
	n := 0
	for i, w := range words {
		if i > 0 {
			n++
		}
		n += len([]rune(w.Text))
	}
	return n
}

func makeCue(words []recognition.Word) Cue {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		parts = append(parts, w.Text)
	}
	return Cue{
		Start: words[0].Start,
		End:   words[len(words)-1].End,
		Text:  strings.Join(parts, " "),
	}
}

// SegmentBlocks slices a flat transcript into fixed-size cues of wordsPerBlock
// words, each spanning blockSeconds on a synthetic timeline. Used when word
// timestamps are unusable: gibberish-classified jobs and backends that
// returned text without per-word timing.
func SegmentBlocks(transcript string, wordsPerBlock int, blockSeconds float64) []Cue {
	tokens := strings.Fields(transcript)
	if len(tokens) == 0 {
		return nil
	}
	if wordsPerBlock <= 0 {
		wordsPerBlock = 1
	}

	var cues []Cue
	for i := 0; i < len(tokens); i += wordsPerBlock {
		end := min(i+wordsPerBlock, len(tokens))
		idx := float64(len(cues))
		cues = append(cues, Cue{
			Start: idx * blockSeconds,
			End:   (idx + 1) * blockSeconds,
			Text:  strings.Join(tokens[i:end], " "),
		})
	}
	return cues
}
