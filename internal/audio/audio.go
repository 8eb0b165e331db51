package audio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	ffmpegbin "github.com/mpranav/dubfab/internal/ffmpeg"
)

// ChunkInfo describes one piece of a chunked audio file and where it sits
// on the source timeline.
type ChunkInfo struct {
	Path      string
	Index     int
	StartTime time.Duration
	EndTime   time.Duration
}

// CompressionOptions controls the transcription-friendly re-encode.
type CompressionOptions struct {
	Format     string // mp3, aac
	SampleRate int    // Hz
	Channels   int    // 1=mono, 2=stereo
	Bitrate    string // e.g. "64k", "128k"
}

// DefaultCompressionOptions keeps uploads small: speech APIs neither need
// nor reward more than 16 kHz mono.
func DefaultCompressionOptions() CompressionOptions {
	return CompressionOptions{
		Format:     "mp3",
		SampleRate: 16000,
		Channels:   1,
		Bitrate:    "64k",
	}
}

type durationProbe struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// GetDuration reads a media file's duration through ffprobe.
func GetDuration(filePath string) (time.Duration, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return 0, fmt.Errorf("file not found: %s", filePath)
	}

	ffprobePath, err := ffmpegbin.FFprobePath()
	if err != nil {
		return 0, err
	}

	var out bytes.Buffer
	cmd := exec.Command(ffprobePath,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		filePath,
	)
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return 0, fmt.Errorf("ffprobe failed: %w", err)
	}

	var probe durationProbe
	if err := json.Unmarshal(out.Bytes(), &probe); err != nil {
		return 0, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	seconds, err := strconv.ParseFloat(probe.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration %q: %w", probe.Format.Duration, err)
	}

	return time.Duration(seconds * float64(time.Second)), nil
}

var audioCodecs = map[string]string{
	"mp3": "libmp3lame",
	"aac": "aac",
}

// CompressAudio re-encodes inputPath with the given options, dropping any
// video stream.
func CompressAudio(
	ctx context.Context,
	inputPath, outputPath string,
	opts CompressionOptions,
) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	codec, ok := audioCodecs[opts.Format]
	if !ok {
		codec = audioCodecs["mp3"]
	}

	kwargs := ffmpeg.KwArgs{
		"vn":     "",
		"ar":     opts.SampleRate,
		"ac":     opts.Channels,
		"acodec": codec,
		"y":      "",
	}
	if opts.Bitrate != "" {
		kwargs["b:a"] = opts.Bitrate
	}

	ffmpegPath, err := ffmpegbin.FFmpegPath()
	if err != nil {
		return err
	}

	err = ffmpeg.Input(inputPath).
		Output(outputPath, kwargs).
		OverWriteOutput().
		SetFfmpegPath(ffmpegPath).
		Run()
	if err != nil {
		return fmt.Errorf("compression failed: %w", err)
	}

	return nil
}

// ChunkAudio splits an audio file into fixed-duration chunks.
func ChunkAudio(
	ctx context.Context,
	audioPath string,
	chunkDuration time.Duration,
	outputDir string,
) ([]ChunkInfo, error) {
	return ChunkAudioConcurrent(ctx, audioPath, chunkDuration, outputDir, 0)
}

// ChunkAudioConcurrent splits an audio file into chunks, cutting several in
// parallel. Concurrency of 0 or less defaults to 10 workers. Cuts use
// stream copy, so chunk boundaries land on the nearest preceding keyframe
// rather than the exact requested time.
func ChunkAudioConcurrent(
	ctx context.Context,
	audioPath string,
	chunkDuration time.Duration,
	outputDir string,
	concurrency int,
) ([]ChunkInfo, error) {
	if chunkDuration <= 0 {
		return nil, fmt.Errorf(
			"chunk duration must be positive, got %v",
			chunkDuration,
		)
	}
	if concurrency <= 0 {
		concurrency = 10
	}

	if _, err := os.Stat(audioPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("audio file not found: %s", audioPath)
	}

	totalDuration, err := GetDuration(audioPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get audio duration: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	ffmpegPath, err := ffmpegbin.FFmpegPath()
	if err != nil {
		return nil, err
	}

	ext := filepath.Ext(audioPath)
	baseName := strings.TrimSuffix(filepath.Base(audioPath), ext)

	var jobs []ChunkInfo
	for i := 0; time.Duration(i)*chunkDuration < totalDuration; i++ {
		start := time.Duration(i) * chunkDuration
		end := start + chunkDuration
		if end > totalDuration {
			end = totalDuration
		}
		jobs = append(jobs, ChunkInfo{
			Path:      filepath.Join(outputDir, fmt.Sprintf("%s_chunk_%03d%s", baseName, i, ext)),
			Index:     i,
			StartTime: start,
			EndTime:   end,
		})
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workChan := make(chan ChunkInfo)
	errChan := make(chan error, len(jobs))

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range workChan {
				select {
				case <-ctx.Done():
					return
				default:
				}

				err := ffmpeg.Input(audioPath).
					Output(job.Path, ffmpeg.KwArgs{
						"ss": job.StartTime.Seconds(),
						"t":  (job.EndTime - job.StartTime).Seconds(),
						"c":  "copy",
						"y":  "",
					}).
					OverWriteOutput().
					SetFfmpegPath(ffmpegPath).
					Run()
				if err != nil {
					errChan <- fmt.Errorf("failed to create chunk %d: %w", job.Index, err)
					cancel()
					return
				}
			}
		}()
	}

	for _, job := range jobs {
		select {
		case workChan <- job:
		case <-ctx.Done():
		}
	}
	close(workChan)

	wg.Wait()
	close(errChan)

	if err := <-errChan; err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].Index < jobs[j].Index
	})

	return jobs, nil
}

var videoExts = map[string]bool{
	".mp4":  true,
	".mkv":  true,
	".avi":  true,
	".mov":  true,
	".wmv":  true,
	".flv":  true,
	".webm": true,
	".m4v":  true,
	".mpeg": true,
	".mpg":  true,
	".3gp":  true,
}

var audioExts = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".aac":  true,
	".flac": true,
	".ogg":  true,
	".m4a":  true,
	".wma":  true,
	".aiff": true,
}

// IsVideoFile reports whether the path looks like a video by extension.
func IsVideoFile(path string) bool {
	return videoExts[strings.ToLower(filepath.Ext(path))]
}

// IsAudioFile reports whether the path looks like audio by extension.
func IsAudioFile(path string) bool {
	return audioExts[strings.ToLower(filepath.Ext(path))]
}

// IsMediaFile reports whether the path is audio or video.
func IsMediaFile(path string) bool {
	return IsAudioFile(path) || IsVideoFile(path)
}

// CleanupChunks removes chunk files, keeping going past individual
// failures and returning the last error seen.
func CleanupChunks(chunks []ChunkInfo) error {
	var lastErr error
	for _, chunk := range chunks {
		if err := os.Remove(chunk.Path); err != nil && !os.IsNotExist(err) {
			lastErr = err
		}
	}
	return lastErr
}
