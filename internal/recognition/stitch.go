package recognition

import "sort"

// ChunkResult pairs a chunk's recognized words with its job-global start
// offset.
type ChunkResult struct {
	OffsetSec float64
	Words     []Word
}

// Stitch shifts each chunk's word timestamps by the chunk's offset and
// concatenates them in chunk order, producing one job-global word list.
// Words within a chunk are ordered by start time first, so the output is
// monotonically non-decreasing as long as the backend's per-chunk
// timestamps stay within the chunk.
func Stitch(chunks []ChunkResult) []Word {
	var out []Word
	for _, chunk := range chunks {
		words := make([]Word, len(chunk.Words))
		copy(words, chunk.Words)
		sort.SliceStable(words, func(i, j int) bool {
			return words[i].Start < words[j].Start
		})
		for _, w := range words {
			out = append(out, Word{
				Text:  w.Text,
				Start: w.Start + chunk.OffsetSec,
				End:   w.End + chunk.OffsetSec,
			})
		}
	}
	return out
}
