package subtitle

import (
	"strings"
	"time"
	"unicode/utf8"
)

// ReflowOptions controls how transcript segments are reshaped for display.
type ReflowOptions struct {
	MaxCharsPerLine int
	MaxLinesPerSub  int
	MaxDuration     time.Duration
}

func DefaultReflowOptions() ReflowOptions {
	return ReflowOptions{
		MaxCharsPerLine: 42, // standard subtitle line length
		MaxLinesPerSub:  2,  // most players support 2 lines
		MaxDuration:     7 * time.Second,
	}
}

// Reflow reshapes raw transcript segments into display-ready subtitles:
// entries that run too long or carry too much text are split on word
// boundaries with the time span distributed evenly, and each entry's text
// is wrapped near its midpoint. Empty-text segments are dropped. The
// result is renumbered 1..N.
func Reflow(segments []Segment, opts ReflowOptions) []Segment {
	var result []Segment

	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		seg.Text = text

		if needsSplit(seg, opts) {
			result = append(result, splitLong(seg, opts)...)
		} else {
			seg.Text = wrapText(text, opts)
			result = append(result, seg)
		}
	}

	return renumber(result)
}

func needsSplit(seg Segment, opts ReflowOptions) bool {
	if utf8.RuneCountInString(seg.Text) > opts.MaxCharsPerLine*opts.MaxLinesPerSub {
		return true
	}
	return seg.End-seg.Start > opts.MaxDuration
}

// splitLong distributes a long segment's words across evenly-timed pieces.
func splitLong(seg Segment, opts ReflowOptions) []Segment {
	words := strings.Fields(seg.Text)
	if len(words) == 0 {
		return nil
	}

	maxChars := opts.MaxCharsPerLine * opts.MaxLinesPerSub
	totalChars := utf8.RuneCountInString(seg.Text)
	totalDuration := seg.End - seg.Start

	numSplits := (totalChars + maxChars - 1) / maxChars
	if numSplits < 1 {
		numSplits = 1
	}
	durationSplits := int(totalDuration/opts.MaxDuration) + 1
	if durationSplits > numSplits {
		numSplits = durationSplits
	}

	wordsPerSplit := (len(words) + numSplits - 1) / numSplits
	durationPerSplit := totalDuration / time.Duration(numSplits)

	var pieces []Segment
	currentStart := seg.Start

	for i := 0; i < numSplits && len(words) > 0; i++ {
		endIdx := wordsPerSplit
		if endIdx > len(words) {
			endIdx = len(words)
		}

		pieceWords := words[:endIdx]
		words = words[endIdx:]

		currentEnd := currentStart + durationPerSplit
		if len(words) == 0 {
			// last piece ends exactly where the segment did
			currentEnd = seg.End
		}

		pieces = append(pieces, Segment{
			Start:    currentStart,
			End:      currentEnd,
			Text:     wrapText(strings.Join(pieceWords, " "), opts),
			Original: seg.Original,
		})

		currentStart = currentEnd
	}

	return pieces
}

// wrapText breaks text into two lines at the word boundary closest to the
// middle when it exceeds one line's width.
func wrapText(text string, opts ReflowOptions) string {
	runeCount := utf8.RuneCountInString(text)
	if runeCount <= opts.MaxCharsPerLine {
		return text
	}

	words := strings.Fields(text)
	if len(words) < 2 {
		return text
	}

	middle := runeCount / 2
	bestSplit := 0
	bestDiff := runeCount

	currentLen := 0
	for i, word := range words[:len(words)-1] {
		currentLen += utf8.RuneCountInString(word)
		if i > 0 {
			currentLen++ // space
		}

		diff := currentLen - middle
		if diff < 0 {
			diff = -diff
		}
		if diff < bestDiff {
			bestDiff = diff
			bestSplit = i + 1
		}
	}

	if bestSplit > 0 && bestSplit < len(words) {
		return strings.Join(words[:bestSplit], " ") + "\n" +
			strings.Join(words[bestSplit:], " ")
	}

	return text
}
