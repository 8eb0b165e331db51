package subtitle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseSRT(t *testing.T) {
	content := `1
00:00:01,000 --> 00:00:04,000
Hello, world!

2
00:00:05,500 --> 00:00:08,200
This is a test.
With multiple lines.

3
00:00:10,000 --> 00:00:12,500
Final subtitle.
`
	segments := ParseSRT(content)
	if len(segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segments))
	}

	if segments[0].Start != time.Second {
		t.Errorf("segment 0: expected start 1s, got %v", segments[0].Start)
	}
	if segments[0].End != 4*time.Second {
		t.Errorf("segment 0: expected end 4s, got %v", segments[0].End)
	}
	if segments[0].Text != "Hello, world!" {
		t.Errorf("segment 0: expected 'Hello, world!', got %q", segments[0].Text)
	}
	if segments[0].Index != 1 {
		t.Errorf("segment 0: expected index 1, got %d", segments[0].Index)
	}

	expectedText := "This is a test.\nWith multiple lines."
	if segments[1].Text != expectedText {
		t.Errorf("segment 1: expected %q, got %q", expectedText, segments[1].Text)
	}
}

func TestParseSRTSkipsMalformedBlocks(t *testing.T) {
	content := `1
00:00:01,000 --> 00:00:02,000
Good block.

not a number
00:00:03,000 --> 00:00:04,000
Bad index line.

3
this is not a time range
Bad timing line.

4
00:00:07,000 --> 00:00:08,000
Another good block.
`
	segments := ParseSRT(content)
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments after skipping malformed blocks, got %d", len(segments))
	}
	if segments[0].Text != "Good block." || segments[1].Text != "Another good block." {
		t.Errorf("wrong blocks survived: %q, %q", segments[0].Text, segments[1].Text)
	}
}

func TestParseSRTEmpty(t *testing.T) {
	if got := ParseSRT(""); len(got) != 0 {
		t.Errorf("empty input: expected no segments, got %d", len(got))
	}
	if got := ParseSRT("just some prose\nwith no structure"); len(got) != 0 {
		t.Errorf("unstructured input: expected no segments, got %d", len(got))
	}
}

func TestParseVTT(t *testing.T) {
	content := `WEBVTT

1
00:00:01.000 --> 00:00:04.000
Hello, world!

intro-cue
00:00:05.500 --> 00:00:08.200
Cue with an identifier.

00:10.000 --> 00:12.500
Short-form timestamps.
`
	segments := ParseVTT(content)
	if len(segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segments))
	}

	if segments[0].Start != time.Second {
		t.Errorf("segment 0: expected start 1s, got %v", segments[0].Start)
	}
	if segments[1].Text != "Cue with an identifier." {
		t.Errorf("segment 1: expected identifier cue text, got %q", segments[1].Text)
	}
	if segments[2].Start != 10*time.Second || segments[2].End != 12*time.Second+500*time.Millisecond {
		t.Errorf("segment 2: short form parsed as [%v, %v]", segments[2].Start, segments[2].End)
	}

	// indices are assigned by output order, not read from the source
	for i, seg := range segments {
		if seg.Index != i+1 {
			t.Errorf("segment %d: expected index %d, got %d", i, i+1, seg.Index)
		}
	}
}

func TestParseVTTEmpty(t *testing.T) {
	if got := ParseVTT("WEBVTT\n"); len(got) != 0 {
		t.Errorf("header-only input: expected no segments, got %d", len(got))
	}
}

func TestGenerateSRT(t *testing.T) {
	segments := []Segment{
		{Index: 7, Start: time.Second, End: 3500 * time.Millisecond, Text: "Hello world"},
		{Index: 9, Start: 3500 * time.Millisecond, End: 5 * time.Second, Text: "Bye"},
	}

	got := GenerateSRT(segments)
	want := "1\n00:00:01,000 --> 00:00:03,500\nHello world\n\n" +
		"2\n00:00:03,500 --> 00:00:05,000\nBye\n\n"
	if got != want {
		t.Errorf("GenerateSRT:\ngot  %q\nwant %q", got, want)
	}
}

func TestGenerateVTTHeader(t *testing.T) {
	got := GenerateVTT([]Segment{
		{Start: 0, End: time.Second, Text: "Hi"},
	})
	if !strings.HasPrefix(got, "WEBVTT\n\n") {
		t.Errorf("GenerateVTT missing header: %q", got)
	}
	if !strings.Contains(got, "00:00:00.000 --> 00:00:01.000") {
		t.Errorf("GenerateVTT missing dot-separated timestamps: %q", got)
	}
}

func TestSRTGenerateParseRoundTrip(t *testing.T) {
	original := []Segment{
		{Start: 1200 * time.Millisecond, End: 3400 * time.Millisecond, Text: "First"},
		{Start: 3400 * time.Millisecond, End: 6 * time.Second, Text: "Second\nline two"},
	}

	parsed := ParseSRT(GenerateSRT(original))
	if len(parsed) != len(original) {
		t.Fatalf("round trip changed length: %d -> %d", len(original), len(parsed))
	}
	for i := range original {
		if parsed[i].Start != original[i].Start ||
			parsed[i].End != original[i].End ||
			parsed[i].Text != original[i].Text {
			t.Errorf("segment %d changed: got %+v, want %+v", i, parsed[i], original[i])
		}
	}
}

func TestParseFileAndWriteFile(t *testing.T) {
	segments := []Segment{
		{Start: time.Second, End: 2 * time.Second, Text: "One"},
		{Start: 2 * time.Second, End: 3 * time.Second, Text: "Two"},
	}

	tmpDir := t.TempDir()

	for _, name := range []string{"out.srt", "out.vtt"} {
		path := filepath.Join(tmpDir, name)
		if err := WriteFile(segments, path); err != nil {
			t.Fatalf("WriteFile(%s) failed: %v", name, err)
		}

		parsed, err := ParseFile(path)
		if err != nil {
			t.Fatalf("ParseFile(%s) failed: %v", name, err)
		}
		if len(parsed) != 2 {
			t.Fatalf("%s: expected 2 segments, got %d", name, len(parsed))
		}
		if parsed[1].Text != "Two" {
			t.Errorf("%s: expected 'Two', got %q", name, parsed[1].Text)
		}
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := ParseFile(filepath.Join(t.TempDir(), "nope.srt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseSRTCRLFAndBOM(t *testing.T) {
	content := "\uFEFF1\r\n00:00:01,000 --> 00:00:02,000\r\nWindows line endings\r\n\r\n"
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "crlf.srt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	segments, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if len(segments) != 1 || segments[0].Text != "Windows line endings" {
		t.Errorf("CRLF parse: got %+v", segments)
	}
}
