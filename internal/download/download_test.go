package download

import (
	"strings"
	"testing"
)

func TestFormatSelector(t *testing.T) {
	tests := []struct {
		quality Quality
		want    string
	}{
		{QualityBest, "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best"},
		{Quality1080p, "bestvideo[height<=1080][ext=mp4]+bestaudio[ext=m4a]/best[height<=1080][ext=mp4]/best"},
		{Quality720p, "bestvideo[height<=720][ext=mp4]+bestaudio[ext=m4a]/best[height<=720][ext=mp4]/best"},
		{Quality480p, "bestvideo[height<=480][ext=mp4]+bestaudio[ext=m4a]/best[height<=480][ext=mp4]/best"},
	}

	for _, tt := range tests {
		if got := FormatSelector(tt.quality); got != tt.want {
			t.Errorf("FormatSelector(%q) = %q, want %q", tt.quality, got, tt.want)
		}
	}
}

func TestFormatSelectorFallback(t *testing.T) {
	got := FormatSelector(Quality("4k"))
	if !strings.Contains(got, "height<=720") {
		t.Errorf("unknown quality should fall back to 720p, got %q", got)
	}
}

func TestBinaryOverride(t *testing.T) {
	d := &Downloader{}
	if got := d.binary(); got != "yt-dlp" {
		t.Errorf("default binary = %q, want yt-dlp", got)
	}

	t.Setenv("DUBFAB_YTDLP_PATH", "/opt/tools/yt-dlp")
	if got := d.binary(); got != "/opt/tools/yt-dlp" {
		t.Errorf("env binary = %q", got)
	}

	d.Binary = "/custom/yt-dlp"
	if got := d.binary(); got != "/custom/yt-dlp" {
		t.Errorf("explicit binary = %q", got)
	}
}

func TestLastLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/path/out.mp4\n", "/path/out.mp4"},
		{"progress line\n/path/out.mp3\n", "/path/out.mp3"},
		{"  /spaced/out.mp4  \n\n", "/spaced/out.mp4"},
	}

	for _, tt := range tests {
		if got := lastLine(tt.in); got != tt.want {
			t.Errorf("lastLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
