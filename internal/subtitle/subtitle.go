package subtitle

import (
	"path/filepath"
	"strings"
	"time"
)

// Segment is a single timed subtitle entry.
type Segment struct {
	Index int
	Start time.Duration
	End   time.Duration
	Text  string

	// Original holds the pre-translation text for segments produced by a
	// translation pass. Empty for segments that were never translated.
	Original string
}

// Format identifies a supported subtitle format.
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
)

// MinDuration is the shortest span a segment may have after a timing edit.
// Shifts that would push End at or before Start clamp to this instead.
const MinDuration = 100 * time.Millisecond

// FormatFromExtension maps a file extension to a subtitle format.
// Unknown extensions default to SRT.
func FormatFromExtension(path string) Format {
	if strings.ToLower(filepath.Ext(path)) == ".vtt" {
		return FormatVTT
	}
	return FormatSRT
}

// ExtensionForFormat returns the file extension for a format.
func ExtensionForFormat(format Format) string {
	if format == FormatVTT {
		return ".vtt"
	}
	return ".srt"
}

// renumber assigns dense 1-based indices reflecting current positions.
func renumber(segments []Segment) []Segment {
	for i := range segments {
		segments[i].Index = i + 1
	}
	return segments
}
