package tts

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// EdgeSynthesizer shells out to the edge-tts command line tool, which
// talks to Microsoft's free neural TTS endpoint.
type EdgeSynthesizer struct {
	// Binary overrides the edge-tts executable path. The
	// DUBFAB_EDGE_TTS_PATH environment variable takes effect when empty.
	Binary  string
	options Options
}

func NewEdgeSynthesizer(opts Options) *EdgeSynthesizer {
	if opts.Voice == "" {
		opts.Voice = "en-US-JennyNeural"
	}
	return &EdgeSynthesizer{options: opts}
}

func (s *EdgeSynthesizer) binary() string {
	if s.Binary != "" {
		return s.Binary
	}
	if p := os.Getenv("DUBFAB_EDGE_TTS_PATH"); p != "" {
		return p
	}
	return "edge-tts"
}

// signedPercent renders a rate adjustment the way edge-tts expects:
// always signed, e.g. "+0%", "-10%".
func signedPercent(v int) string {
	return fmt.Sprintf("%+d%%", v)
}

// signedHz renders a pitch adjustment, e.g. "+0Hz", "-20Hz".
func signedHz(v int) string {
	return fmt.Sprintf("%+dHz", v)
}

func (s *EdgeSynthesizer) args(text, outputPath string) []string {
	return []string{
		"--voice", s.options.Voice,
		"--rate=" + signedPercent(s.options.Rate),
		"--pitch=" + signedHz(s.options.Pitch),
		"--text", text,
		"--write-media", outputPath,
	}
}

func (s *EdgeSynthesizer) Synthesize(ctx context.Context, text string, outputPath string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("nothing to synthesize")
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, s.binary(), s.args(text, outputPath)...)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("edge-tts failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	if info, err := os.Stat(outputPath); err != nil || info.Size() == 0 {
		return fmt.Errorf("edge-tts produced no audio at %s", outputPath)
	}
	return nil
}
