// Package download fetches remote videos through the yt-dlp command line
// tool. yt-dlp handles the extractor churn that makes native downloaders
// rot, so this package shells out rather than reimplementing site support.
package download

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Quality selects a video download format.
type Quality string

const (
	QualityBest  Quality = "best"
	Quality1080p Quality = "1080p"
	Quality720p  Quality = "720p"
	Quality480p  Quality = "480p"
)

// format strings mirror yt-dlp's mp4-preferring selectors per quality tier.
var formatMap = map[Quality]string{
	QualityBest:  "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best",
	Quality1080p: "bestvideo[height<=1080][ext=mp4]+bestaudio[ext=m4a]/best[height<=1080][ext=mp4]/best",
	Quality720p:  "bestvideo[height<=720][ext=mp4]+bestaudio[ext=m4a]/best[height<=720][ext=mp4]/best",
	Quality480p:  "bestvideo[height<=480][ext=mp4]+bestaudio[ext=m4a]/best[height<=480][ext=mp4]/best",
}

// FormatSelector returns the yt-dlp format string for a quality tier.
// Unknown tiers fall back to 720p.
func FormatSelector(q Quality) string {
	if f, ok := formatMap[q]; ok {
		return f
	}
	return formatMap[Quality720p]
}

// Info holds the subset of video metadata the pipeline cares about.
type Info struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Uploader string  `json:"uploader"`
	Duration float64 `json:"duration"`
	Thumb    string  `json:"thumbnail"`
}

// Downloader wraps yt-dlp invocations. Zero value uses the yt-dlp found
// on PATH.
type Downloader struct {
	// Binary overrides the yt-dlp executable path. The DUBFAB_YTDLP_PATH
	// environment variable takes effect when this is empty.
	Binary string
}

func (d *Downloader) binary() string {
	if d.Binary != "" {
		return d.Binary
	}
	if p := os.Getenv("DUBFAB_YTDLP_PATH"); p != "" {
		return p
	}
	return "yt-dlp"
}

// Probe fetches video metadata without downloading anything.
func (d *Downloader) Probe(ctx context.Context, url string) (*Info, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, d.binary(), "-J", "--no-warnings", url)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("yt-dlp probe failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	var info Info
	if err := json.Unmarshal(stdout.Bytes(), &info); err != nil {
		return nil, fmt.Errorf("failed to parse yt-dlp metadata: %w", err)
	}
	return &info, nil
}

// Video downloads a video as mp4 into outputDir and returns the file path.
func (d *Downloader) Video(ctx context.Context, url string, quality Quality, outputDir string) (string, error) {
	args := []string{
		"-f", FormatSelector(quality),
		"--merge-output-format", "mp4",
		"-o", filepath.Join(outputDir, "%(title).50s.%(ext)s"),
		"--restrict-filenames",
		"--no-warnings",
		"--print", "after_move:filepath",
		"--no-simulate",
		url,
	}
	return d.run(ctx, args)
}

// Audio downloads just the audio track, transcoded to mp3 at 192 kbps.
func (d *Downloader) Audio(ctx context.Context, url string, outputDir string) (string, error) {
	args := []string{
		"-f", "bestaudio/best",
		"-x", "--audio-format", "mp3",
		"--audio-quality", "192K",
		"-o", filepath.Join(outputDir, "%(title).50s.%(ext)s"),
		"--restrict-filenames",
		"--no-warnings",
		"--print", "after_move:filepath",
		"--no-simulate",
		url,
	}
	return d.run(ctx, args)
}

// run executes yt-dlp and returns the final output path it printed.
func (d *Downloader) run(ctx context.Context, args []string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, d.binary(), args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("yt-dlp failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	path := lastLine(stdout.String())
	if path == "" {
		return "", fmt.Errorf("yt-dlp produced no output path")
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("yt-dlp reported %s but the file is missing: %w", path, err)
	}
	return path, nil
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[len(lines)-1])
}
