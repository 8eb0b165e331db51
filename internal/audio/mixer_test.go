package audio

import (
	"context"
	"testing"
	"time"
)

func TestOriginalGain(t *testing.T) {
	tests := []struct {
		name string
		opts MixOptions
		want string
	}{
		{"replace silences original", MixOptions{Mode: MixReplace}, "0"},
		{"overlay keeps original", MixOptions{Mode: MixOverlay}, "1"},
		{"duck default volume", MixOptions{Mode: MixDuck}, "-14.0dB"},
		{"duck custom volume", MixOptions{Mode: MixDuck, OriginalVolume: 0.5}, "-10.0dB"},
		{"duck out-of-range volume falls back", MixOptions{Mode: MixDuck, OriginalVolume: 1.5}, "-14.0dB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := originalGain(tt.opts); got != tt.want {
				t.Errorf("originalGain() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDefaultMixOptions(t *testing.T) {
	opts := DefaultMixOptions()
	if opts.Mode != MixReplace {
		t.Errorf("default mode = %q", opts.Mode)
	}
	if opts.OriginalVolume != 0.3 {
		t.Errorf("default original volume = %v", opts.OriginalVolume)
	}
	if opts.Bitrate != "192k" {
		t.Errorf("default bitrate = %q", opts.Bitrate)
	}
}

func TestMixRejectsEmptyInput(t *testing.T) {
	err := Mix(context.Background(), "", nil, "/tmp/out.mp3", DefaultMixOptions())
	if err == nil {
		t.Error("expected error with no original and no clips")
	}
}

func TestMixMissingClip(t *testing.T) {
	clips := []Clip{{Path: "/does/not/exist.mp3", Start: time.Second}}
	err := Mix(context.Background(), "", clips, "/tmp/out.mp3", DefaultMixOptions())
	if err == nil {
		t.Error("expected error for missing clip file")
	}
}

func TestConcatenateRejectsEmptyInput(t *testing.T) {
	if err := Concatenate(context.Background(), nil, 0, "/tmp/out.mp3", ""); err == nil {
		t.Error("expected error with no clips")
	}
}
