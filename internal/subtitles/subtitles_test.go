package subtitles

import (
	"strings"
	"testing"

	"scribe/internal/recognition"
)

var testPolicy = Policy{PauseGapSeconds: 0.75, MaxCueChars: 84, MaxCueSeconds: 6.0}

func word(text string, start, end float64) recognition.Word {
	return recognition.Word{Text: text, Start: start, End: end}
}

func TestFilterWordsDropsNumericNoise(t *testing.T) {
	got := FilterWords([]recognition.Word{
		word("0", 0, 1),
		word("5", 1, 2),
		word("хэлло", 2, 3),
	})
	if len(got) != 1 || got[0].Text != "хэлло" {
		t.Fatalf("unexpected filter result: %+v", got)
	}
	if got[0].Start != 2 || got[0].End != 3 {
		t.Fatalf("filter must not touch timestamps: %+v", got[0])
	}
}

func TestFilterWordsDropsBlanks(t *testing.T) {
	got := FilterWords([]recognition.Word{
		word("", 0, 1),
		word("   ", 1, 2),
		word("000", 2, 3),
		word("тийм", 3, 4),
	})
	if len(got) != 1 || got[0].Text != "тийм" {
		t.Fatalf("unexpected filter result: %+v", got)
	}
}

func TestLooksLikeGibberishStrictBoundary(t *testing.T) {
	build := func(digits int) []recognition.Word {
		words := make([]recognition.Word, 60)
		for i := range words {
			if i < digits {
				words[i] = word("0", float64(i), float64(i+1))
			} else {
				words[i] = word("үг", float64(i), float64(i+1))
			}
		}
		return words
	}

	if LooksLikeGibberish(build(37), 60, 0.6) != true {
		t.Fatal("37/60 digit tokens should classify as gibberish")
	}
	if LooksLikeGibberish(build(35), 60, 0.6) {
		t.Fatal("35/60 digit tokens should not classify as gibberish")
	}
	// 36/60 sits exactly on the threshold; strict comparison keeps it clean.
	if LooksLikeGibberish(build(36), 60, 0.6) {
		t.Fatal("exactly 0.6 must not exceed a strict threshold")
	}
	if LooksLikeGibberish(nil, 60, 0.6) {
		t.Fatal("empty input is never gibberish")
	}
}

func TestLooksLikeGibberishSamplesPrefixOnly(t *testing.T) {
	// All noise beyond the sample window must not affect the verdict.
	words := []recognition.Word{word("нэг", 0, 1), word("хоёр", 1, 2)}
	for i := 0; i < 100; i++ {
		words = append(words, word("0", float64(i+2), float64(i+3)))
	}
	if LooksLikeGibberish(words, 2, 0.6) {
		t.Fatal("sample window should exclude trailing noise")
	}
}

func TestSegmentWordsBreaksOnPause(t *testing.T) {
	cues := SegmentWords([]recognition.Word{
		word("нэг", 0, 0.5),
		word("хоёр", 1.3, 1.8), // 0.8s gap
		word("гурав", 1.9, 2.4),
	}, testPolicy)
	if len(cues) != 2 {
		t.Fatalf("expected 2 cues, got %d: %+v", len(cues), cues)
	}
	if cues[0].Text != "нэг" || cues[1].Text != "хоёр гурав" {
		t.Fatalf("unexpected cue texts: %+v", cues)
	}
	if cues[1].Start != 1.3 || cues[1].End != 2.4 {
		t.Fatalf("cue bounds must come from member words: %+v", cues[1])
	}
}

func TestSegmentWordsBreaksOnSentenceEnd(t *testing.T) {
	cues := SegmentWords([]recognition.Word{
		word("за.", 0, 0.5),
		word("дараа", 0.6, 1.0),
		word("нь?", 1.1, 1.5),
		word("тэгье", 1.6, 2.0),
	}, testPolicy)
	if len(cues) != 3 {
		t.Fatalf("expected 3 cues, got %d: %+v", len(cues), cues)
	}
	if cues[0].Text != "за." || cues[1].Text != "дараа нь?" || cues[2].Text != "тэгье" {
		t.Fatalf("unexpected cue texts: %+v", cues)
	}
}

func TestSegmentWordsBreaksOnCharLimit(t *testing.T) {
	long := strings.Repeat("а", 50)
	cues := SegmentWords([]recognition.Word{
		word(long, 0, 0.5),
		word(long, 0.6, 1.0), // joined length 101 > 84
	}, testPolicy)
	if len(cues) != 2 {
		t.Fatalf("expected char limit break, got %d cues", len(cues))
	}
}

func TestSegmentWordsBreaksOnDuration(t *testing.T) {
	// Closely spaced words with no punctuation, spanning past 6s.
	var words []recognition.Word
	for i := 0; i < 20; i++ {
		start := float64(i) * 0.5
		words = append(words, word("үг", start, start+0.4))
	}
	cues := SegmentWords(words, testPolicy)
	if len(cues) < 2 {
		t.Fatalf("expected duration break, got %d cues", len(cues))
	}
	for _, cue := range cues {
		if cue.End-cue.Start > testPolicy.MaxCueSeconds {
			t.Fatalf("cue exceeds duration limit: %+v", cue)
		}
	}
}

func TestSegmentWordsPartitionsInput(t *testing.T) {
	var words []recognition.Word
	texts := []string{"нэг.", "хоёр", "гурав", "дөрөв?", "тав", "зургаа", "долоо!", "найм"}
	for i, text := range texts {
		start := float64(i) * 1.2 // every gap exceeds the pause threshold
		words = append(words, word(text, start, start+0.3))
	}
	cues := SegmentWords(words, testPolicy)

	var joined []string
	for _, cue := range cues {
		joined = append(joined, strings.Fields(cue.Text)...)
	}
	if len(joined) != len(texts) {
		t.Fatalf("partition lost or duplicated words: %v", joined)
	}
	for i, text := range texts {
		if joined[i] != text {
			t.Fatalf("word %d = %q, want %q", i, joined[i], text)
		}
	}
	for i := 1; i < len(cues); i++ {
		if cues[i].Start < cues[i-1].End {
			t.Fatalf("cues overlap: %+v then %+v", cues[i-1], cues[i])
		}
	}
}

func TestSegmentWordsEmptyInput(t *testing.T) {
	if got := SegmentWords(nil, testPolicy); got != nil {
		t.Fatalf("empty input should yield zero cues, got %+v", got)
	}
}

func TestSegmentBlocks(t *testing.T) {
	transcript := strings.TrimSpace(strings.Repeat("үг ", 30))
	cues := SegmentBlocks(transcript, 12, 6.0)
	if len(cues) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(cues))
	}
	if cues[1].Start != 6.0 || cues[1].End != 12.0 {
		t.Fatalf("synthetic timeline wrong: %+v", cues[1])
	}
	if len(strings.Fields(cues[2].Text)) != 6 {
		t.Fatalf("final block should carry the remainder: %+v", cues[2])
	}
	if SegmentBlocks("   ", 12, 6.0) != nil {
		t.Fatal("blank transcript should yield no blocks")
	}
}

func TestFormatTimestamp(t *testing.T) {
	cases := []struct {
		sec  float64
		want string
	}{
		{0, "00:00:00,000"},
		{1.5, "00:00:01,500"},
		{59.9996, "00:01:00,000"},
		{3599.999, "00:59:59,999"},
		{3661.042, "01:01:01,042"},
	}
	for _, tc := range cases {
		if got := FormatTimestamp(tc.sec); got != tc.want {
			t.Errorf("FormatTimestamp(%v) = %q, want %q", tc.sec, got, tc.want)
		}
	}
}

func TestRenderAndParseRoundTrip(t *testing.T) {
	cues := []Cue{
		{Start: 0, End: 2.5, Text: "Сайн байна уу"},
		{Start: 3.1, End: 5.0, Text: "Энэ бол жишээ юм."},
	}
	rendered := Render(cues, 42)
	parsed, err := ParseCues(rendered)
	if err != nil {
		t.Fatalf("ParseCues: %v", err)
	}
	if len(parsed) != len(cues) {
		t.Fatalf("round trip count = %d, want %d", len(parsed), len(cues))
	}
	for i := range cues {
		if parsed[i].Text != cues[i].Text {
			t.Fatalf("cue %d text = %q, want %q", i, parsed[i].Text, cues[i].Text)
		}
		if parsed[i].Start != cues[i].Start || parsed[i].End != cues[i].End {
			t.Fatalf("cue %d bounds = %+v, want %+v", i, parsed[i], cues[i])
		}
	}
}

func TestRenderWrapsLongLines(t *testing.T) {
	text := "энэ бол маш урт өгүүлбэр бөгөөд хоёр мөрөнд хуваагдах ёстой"
	rendered := Render([]Cue{{Start: 0, End: 4, Text: text}}, 42)
	lines := strings.Split(strings.TrimSpace(rendered), "\n")
	if len(lines) != 4 { // index, timestamps, two text lines
		t.Fatalf("expected 2 wrapped text lines, got block:\n%s", rendered)
	}
	if n := len([]rune(lines[2])); n > 42 {
		t.Fatalf("first line too long (%d runes): %q", n, lines[2])
	}
	if joined := lines[2] + " " + lines[3]; joined != text {
		t.Fatalf("wrap changed text: %q", joined)
	}
}

func TestRenderHardBreakWithoutSpaces(t *testing.T) {
	text := strings.Repeat("а", 60)
	rendered := Render([]Cue{{Start: 0, End: 4, Text: text}}, 42)
	lines := strings.Split(strings.TrimSpace(rendered), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected hard break into 2 lines:\n%s", rendered)
	}
	if len([]rune(lines[2])) != 42 || len([]rune(lines[3])) != 18 {
		t.Fatalf("hard break positions wrong: %d/%d", len([]rune(lines[2])), len([]rune(lines[3])))
	}
}

func TestRenderEmptyCueUsesPlaceholder(t *testing.T) {
	rendered := Render([]Cue{{Start: 0, End: 3, Text: "  "}}, 42)
	if !strings.Contains(rendered, Placeholder) {
		t.Fatalf("empty cue should render the placeholder:\n%s", rendered)
	}
}

func TestRenderFallbackCollapsesNewlines(t *testing.T) {
	rendered := RenderFallback("нэг хоёр\nгурав дөрөв\nтав", 30, 42)
	lines := strings.Split(strings.TrimSpace(rendered), "\n")
	// Index, timestamps, and at most two lines of text.
	if len(lines) > 4 {
		t.Fatalf("fallback cue body exceeds two lines:\n%s", rendered)
	}
	cues, err := ParseCues(rendered)
	if err != nil {
		t.Fatalf("ParseCues: %v", err)
	}
	if len(cues) != 1 || cues[0].Text != "нэг хоёр гурав дөрөв тав" {
		t.Fatalf("transcript should collapse to space-separated text: %+v", cues)
	}
}

func TestRenderFallbackSpansWholeDuration(t *testing.T) {
	rendered := RenderFallback("", 93.5, 42)
	cues, err := ParseCues(rendered)
	if err != nil {
		t.Fatalf("ParseCues: %v", err)
	}
	if len(cues) != 1 {
		t.Fatalf("expected a single cue, got %d", len(cues))
	}
	if cues[0].Start != 0 || cues[0].End != 93.5 {
		t.Fatalf("fallback cue bounds = %+v", cues[0])
	}
	if cues[0].Text != Placeholder {
		t.Fatalf("fallback cue text = %q", cues[0].Text)
	}
}
