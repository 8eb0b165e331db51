package subtitle

import (
	"sort"
	"strings"
	"time"
)

// MergeSegments merges the segments at the given slice positions into a
// single segment spanning the earliest start to the latest end, with the
// texts joined by single spaces in ascending position order. The merged
// segment takes the place of the first selected position; everything else
// keeps its relative order. Fewer than two distinct positions, or any
// position out of range, leaves the input untouched.
func MergeSegments(segments []Segment, indices []int) []Segment {
	if len(indices) < 2 {
		return segments
	}

	sorted := append([]int(nil), indices...)
	sort.Ints(sorted)

	selected := make(map[int]bool, len(sorted))
	for _, i := range sorted {
		if i < 0 || i >= len(segments) {
			return segments
		}
		selected[i] = true
	}
	if len(selected) < 2 {
		return segments
	}

	first := sorted[0]
	last := sorted[len(sorted)-1]

	texts := make([]string, 0, len(selected))
	seen := make(map[int]bool, len(selected))
	for _, i := range sorted {
		if seen[i] {
			continue
		}
		seen[i] = true
		texts = append(texts, segments[i].Text)
	}

	merged := Segment{
		Start: segments[first].Start,
		End:   segments[last].End,
		Text:  strings.Join(texts, " "),
	}

	result := make([]Segment, 0, len(segments)-len(selected)+1)
	for i, seg := range segments {
		switch {
		case i == first:
			result = append(result, merged)
		case selected[i]:
			// consumed by the merge
		default:
			result = append(result, seg)
		}
	}

	return renumber(result)
}

// SplitSegment splits the segment at the given position into two at the
// split time. The text is divided at the rune offset proportional to the
// elapsed-time ratio, pulled back to the nearest space at or before that
// offset so words stay whole; both fragments are trimmed. A split time outside the open
// interval (Start, End), or a position out of range, leaves the input
// untouched. The Original text, when present, is carried onto both
// fragments.
func SplitSegment(segments []Segment, index int, at time.Duration) []Segment {
	if index < 0 || index >= len(segments) {
		return segments
	}

	seg := segments[index]
	if at <= seg.Start || at >= seg.End {
		return segments
	}

	runes := []rune(seg.Text)
	ratio := float64(at-seg.Start) / float64(seg.End-seg.Start)
	cut := int(float64(len(runes)) * ratio)

	for j := cut; j > 0; j-- {
		if runes[j] == ' ' {
			cut = j
			break
		}
	}

	head := Segment{
		Start:    seg.Start,
		End:      at,
		Text:     strings.TrimSpace(string(runes[:cut])),
		Original: seg.Original,
	}
	tail := Segment{
		Start:    at,
		End:      seg.End,
		Text:     strings.TrimSpace(string(runes[cut:])),
		Original: seg.Original,
	}

	result := make([]Segment, 0, len(segments)+1)
	result = append(result, segments[:index]...)
	result = append(result, head, tail)
	result = append(result, segments[index+1:]...)

	return renumber(result)
}

// AdjustTiming shifts one segment's start and end by the given deltas.
// The start never goes below zero and the end never comes within
// MinDuration of the start. A position out of range leaves the input
// untouched.
func AdjustTiming(segments []Segment, index int, startDelta, endDelta time.Duration) []Segment {
	if index < 0 || index >= len(segments) {
		return segments
	}

	result := append([]Segment(nil), segments...)
	result[index].Start, result[index].End = clampSpan(
		result[index].Start+startDelta,
		result[index].End+endDelta,
	)

	return renumber(result)
}

// ShiftAll offsets every segment's start and end by the same delta,
// applying the same floor-at-zero and minimum-duration clamping as
// AdjustTiming.
func ShiftAll(segments []Segment, delta time.Duration) []Segment {
	result := append([]Segment(nil), segments...)
	for i := range result {
		result[i].Start, result[i].End = clampSpan(
			result[i].Start+delta,
			result[i].End+delta,
		)
	}
	return renumber(result)
}

func clampSpan(start, end time.Duration) (time.Duration, time.Duration) {
	if start < 0 {
		start = 0
	}
	if end < start+MinDuration {
		end = start + MinDuration
	}
	return start, end
}
