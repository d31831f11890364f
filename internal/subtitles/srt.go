package subtitles

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Placeholder replaces an otherwise empty cue body so players never see a
// blank entry.
const Placeholder = "(no transcript)"

// Render formats cues as SRT text: 1-based index, `start --> end` line, and
// one or two lines of text per entry, blank line between entries. Cue text
// longer than lineLength characters is wrapped onto exactly two lines at
// the last space before the limit, with a hard break when no space exists.
func Render(cues []Cue, lineLength int) string {
	var b strings.Builder
	for i, cue := range cues {
		text := strings.TrimSpace(cue.Text)
		if text == "" {
			text = Placeholder
		}
		fmt.Fprintf(&b, "%d\n", i+1)
		fmt.Fprintf(&b, "%s --> %s\n", FormatTimestamp(cue.Start), FormatTimestamp(cue.End))
		for _, line := range wrapTwoLines(text, lineLength) {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderFallback emits a single cue spanning the whole media duration,
// carrying the best-available flat transcript. Used when no usable word
// timing exists at all. The transcript is collapsed to single-space
// separation first; backend transcripts can carry newlines, and a cue body
// is limited to two lines.
func RenderFallback(transcript string, totalSec float64, lineLength int) string {
	text := strings.Join(strings.Fields(transcript), " ")
	return Render([]Cue{{Start: 0, End: totalSec, Text: text}}, lineLength)
}

// FormatTimestamp renders seconds as the zero-padded SRT form HH:MM:SS,mmm.
// The value is rounded to whole milliseconds once, before decomposition, so
// 59.9996 carries into the next second instead of printing 1000ms.
func FormatTimestamp(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	ms := int64(math.Round(sec * 1000))
	h := ms / 3_600_000
	ms -= h * 3_600_000
	m := ms / 60_000
	ms -= m * 60_000
	s := ms / 1000
	ms -= s * 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

// ParseTimestamp is the inverse of FormatTimestamp. A period is accepted in
// place of the comma.
func ParseTimestamp(value string) (float64, error) {
	value = strings.TrimSpace(value)
	value = strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000, nil
}

// ParseCues reads rendered SRT text back into cues, rejoining wrapped lines
// with a single space.
func ParseCues(text string) ([]Cue, error) {
	content := strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if content == "" {
		return nil, nil
	}
	var cues []Cue
	for _, block := range strings.Split(content, "\n\n") {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 2 {
			return nil, fmt.Errorf("malformed cue block %q", block)
		}
		parts := strings.Split(lines[1], "-->")
		if len(parts) != 2 {
			return nil, fmt.Errorf("missing timestamp line in block %q", block)
		}
		start, err := ParseTimestamp(parts[0])
		if err != nil {
			return nil, err
		}
		end, err := ParseTimestamp(parts[1])
		if err != nil {
			return nil, err
		}
		cues = append(cues, Cue{
			Start: start,
			End:   end,
			Text:  strings.Join(lines[2:], " "),
		})
	}
	return cues, nil
}

// wrapTwoLines splits text onto at most two lines. The first line breaks at
// the last space within limit characters; the second line takes whatever
// remains, however long.
func wrapTwoLines(text string, limit int) []string {
	runes := []rune(text)
	if limit <= 0 || len(runes) <= limit {
		return []string{text}
	}
	cut := limit
	for i := limit; i > 0; i-- {
		if runes[i-1] == ' ' {
			cut = i - 1
			break
		}
	}
	first := strings.TrimRight(string(runes[:cut]), " ")
	second := strings.TrimLeft(string(runes[cut:]), " ")
	if second == "" {
		return []string{first}
	}
	return []string{first, second}
}
