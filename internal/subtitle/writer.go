package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GenerateSRT renders segments as SRT text. Indices are emitted from the
// 1-based position in the slice; any stored Index is ignored. Each block
// is followed by a blank line, including the last.
func GenerateSRT(segments []Segment) string {
	var sb strings.Builder
	for i, seg := range segments {
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			FormatSRTTimestamp(seg.Start),
			FormatSRTTimestamp(seg.End)))
		sb.WriteString(strings.TrimSpace(seg.Text))
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// GenerateVTT renders segments as WebVTT text with the standard header.
// Cue identifier lines mirror the SRT position numbering.
func GenerateVTT(segments []Segment) string {
	var sb strings.Builder
	sb.WriteString("WEBVTT\n\n")
	for i, seg := range segments {
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			FormatVTTTimestamp(seg.Start),
			FormatVTTTimestamp(seg.End)))
		sb.WriteString(strings.TrimSpace(seg.Text))
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// Generate dispatches on format.
func Generate(segments []Segment, format Format) string {
	if format == FormatVTT {
		return GenerateVTT(segments)
	}
	return GenerateSRT(segments)
}

// WriteFile serializes segments to path, picking the format from the
// file extension. Parent directories are created as needed.
func WriteFile(segments []Segment, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	content := Generate(segments, FormatFromExtension(path))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write subtitle file: %w", err)
	}
	return nil
}
