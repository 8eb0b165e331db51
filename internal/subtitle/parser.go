package subtitle

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var (
	blockSplitRegex = regexp.MustCompile(`\n{2,}`)

	srtRangeRegex = regexp.MustCompile(
		`^(\d{2,}:\d{2}:\d{2}[,.]\d{3})\s*-->\s*(\d{2,}:\d{2}:\d{2}[,.]\d{3})`,
	)
	vttRangeRegex = regexp.MustCompile(
		`^(\d{2,}:\d{2}:\d{2}[.,]\d{3}|\d{2}:\d{2}[.,]\d{3})\s*-->\s*` +
			`(\d{2,}:\d{2}:\d{2}[.,]\d{3}|\d{2}:\d{2}[.,]\d{3})`,
	)
)

// ParseSRT parses SRT content into segments. Blocks that fail to parse
// (missing lines, non-numeric index, malformed time range) are skipped
// rather than failing the whole document. Never returns an error; empty
// or fully malformed input yields an empty slice.
func ParseSRT(content string) []Segment {
	var segments []Segment

	for _, block := range splitBlocks(content) {
		lines := strings.Split(block, "\n")
		if len(lines) < 3 {
			continue
		}

		index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
		if err != nil {
			continue
		}

		matches := srtRangeRegex.FindStringSubmatch(strings.TrimSpace(lines[1]))
		if matches == nil {
			continue
		}
		start, err := ParseSRTTimestamp(matches[1])
		if err != nil {
			continue
		}
		end, err := ParseSRTTimestamp(matches[2])
		if err != nil {
			continue
		}

		segments = append(segments, Segment{
			Index: index,
			Start: start,
			End:   end,
			Text:  strings.TrimSpace(strings.Join(lines[2:], "\n")),
		})
	}

	return segments
}

// ParseVTT parses WebVTT content into segments. The header line is
// skipped, and the timing line is located by searching for the range
// separator since cues may carry identifier or metadata lines first.
// Indices are assigned by output order starting at 1; cue identifiers
// in the source are not read. Malformed cues are skipped.
func ParseVTT(content string) []Segment {
	var segments []Segment

	index := 0
	for _, block := range splitBlocks(content) {
		lines := strings.Split(block, "\n")

		timeLine := -1
		for i, line := range lines {
			if strings.Contains(line, "-->") {
				timeLine = i
				break
			}
		}
		if timeLine < 0 {
			// header block, NOTE block, or stray text
			continue
		}

		matches := vttRangeRegex.FindStringSubmatch(strings.TrimSpace(lines[timeLine]))
		if matches == nil {
			continue
		}
		start, err := ParseVTTTimestamp(matches[1])
		if err != nil {
			continue
		}
		end, err := ParseVTTTimestamp(matches[2])
		if err != nil {
			continue
		}

		index++
		segments = append(segments, Segment{
			Index: index,
			Start: start,
			End:   end,
			Text:  strings.TrimSpace(strings.Join(lines[timeLine+1:], "\n")),
		})
	}

	return segments
}

// Parse dispatches on format.
func Parse(content string, format Format) []Segment {
	if format == FormatVTT {
		return ParseVTT(content)
	}
	return ParseSRT(content)
}

// ParseFile reads and parses a subtitle file, picking the format from
// the file extension (.vtt for WebVTT, SRT otherwise).
func ParseFile(path string) ([]Segment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read subtitle file: %w", err)
	}
	return Parse(string(data), FormatFromExtension(path)), nil
}

func splitBlocks(content string) []string {
	content = strings.TrimPrefix(content, "\uFEFF")
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}

	blocks := blockSplitRegex.Split(content, -1)
	for i, block := range blocks {
		blocks[i] = strings.TrimSpace(block)
	}
	return blocks
}
