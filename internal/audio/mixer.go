package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	ffmpegbin "github.com/mpranav/dubfab/internal/ffmpeg"
)

// Clip is a rendered voice clip positioned on the output timeline.
type Clip struct {
	Path  string
	Start time.Duration
}

// MixMode controls what happens to the original audio under the dub.
type MixMode string

const (
	// MixReplace drops the original track entirely.
	MixReplace MixMode = "replace"
	// MixDuck lowers the original under the dub.
	MixDuck MixMode = "duck"
	// MixOverlay plays the dub on top of the untouched original.
	MixOverlay MixMode = "overlay"
)

// settings for mixing dubbed speech over an original track
type MixOptions struct {
	Mode           MixMode
	OriginalVolume float64 // fraction of original loudness kept in duck mode
	Bitrate        string
	TotalDuration  time.Duration // pad the result out to this length when set
}

func DefaultMixOptions() MixOptions {
	return MixOptions{
		Mode:           MixReplace,
		OriginalVolume: 0.3,
		Bitrate:        "192k",
	}
}

// originalGain converts the mix mode into a volume filter argument for
// the original track.
func originalGain(opts MixOptions) string {
	switch opts.Mode {
	case MixReplace:
		return "0"
	case MixDuck:
		vol := opts.OriginalVolume
		if vol <= 0 || vol >= 1 {
			vol = 0.3
		}
		// same curve pydub users reach for: 20 dB swing scaled by the kept fraction
		return fmt.Sprintf("-%.1fdB", 20*(1-vol))
	default:
		return "1"
	}
}

// Mix lays the clips onto the timeline at their start offsets and blends
// them with the original track according to the mode. originalPath may be
// empty to build a dub-only track.
func Mix(ctx context.Context, originalPath string, clips []Clip, outputPath string, opts MixOptions) error {
	if len(clips) == 0 && originalPath == "" {
		return fmt.Errorf("nothing to mix")
	}

	if opts.Bitrate == "" {
		opts.Bitrate = "192k"
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var streams []*ffmpeg.Stream

	if originalPath != "" {
		if _, err := os.Stat(originalPath); os.IsNotExist(err) {
			return fmt.Errorf("original audio not found: %s", originalPath)
		}
		streams = append(streams,
			ffmpeg.Input(originalPath).Audio().
				Filter("volume", ffmpeg.Args{originalGain(opts)}))
	}

	for _, clip := range clips {
		if _, err := os.Stat(clip.Path); os.IsNotExist(err) {
			return fmt.Errorf("clip not found: %s", clip.Path)
		}
		ms := clip.Start.Milliseconds()
		streams = append(streams,
			ffmpeg.Input(clip.Path).Audio().
				Filter("adelay", ffmpeg.Args{fmt.Sprintf("%d|%d", ms, ms)}))
	}

	mixed := streams[0]
	if len(streams) > 1 {
		mixed = ffmpeg.Filter(streams, "amix", ffmpeg.Args{}, ffmpeg.KwArgs{
			"inputs":    len(streams),
			"duration":  "longest",
			"normalize": 0,
		})
	}

	if opts.TotalDuration > 0 {
		mixed = mixed.Filter("apad", ffmpeg.Args{}, ffmpeg.KwArgs{
			"whole_dur": opts.TotalDuration.Seconds(),
		})
	}

	ffmpegPath, err := ffmpegbin.FFmpegPath()
	if err != nil {
		return err
	}

	err = mixed.
		Output(outputPath, ffmpeg.KwArgs{
			"acodec": "libmp3lame",
			"b:a":    opts.Bitrate,
			"y":      "",
		}).
		OverWriteOutput().
		SetFfmpegPath(ffmpegPath).
		Run()
	if err != nil {
		return fmt.Errorf("mixing failed: %w", err)
	}

	return nil
}

// Concatenate joins clips back to back with a fixed silent gap between
// them, ignoring their timeline offsets.
func Concatenate(ctx context.Context, clips []Clip, gap time.Duration, outputPath string, bitrate string) error {
	if len(clips) == 0 {
		return fmt.Errorf("nothing to concatenate")
	}

	if bitrate == "" {
		bitrate = "192k"
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var streams []*ffmpeg.Stream
	for i, clip := range clips {
		if _, err := os.Stat(clip.Path); os.IsNotExist(err) {
			return fmt.Errorf("clip not found: %s", clip.Path)
		}
		if i > 0 && gap > 0 {
			streams = append(streams, ffmpeg.Input(
				"anullsrc=channel_layout=stereo:sample_rate=44100",
				ffmpeg.KwArgs{"f": "lavfi", "t": gap.Seconds()},
			))
		}
		streams = append(streams, ffmpeg.Input(clip.Path).Audio())
	}

	joined := ffmpeg.Filter(streams, "concat", ffmpeg.Args{}, ffmpeg.KwArgs{
		"n": len(streams),
		"v": 0,
		"a": 1,
	})

	ffmpegPath, err := ffmpegbin.FFmpegPath()
	if err != nil {
		return err
	}

	err = joined.
		Output(outputPath, ffmpeg.KwArgs{
			"acodec": "libmp3lame",
			"b:a":    bitrate,
			"y":      "",
		}).
		OverWriteOutput().
		SetFfmpegPath(ffmpegPath).
		Run()
	if err != nil {
		return fmt.Errorf("concatenation failed: %w", err)
	}

	return nil
}
