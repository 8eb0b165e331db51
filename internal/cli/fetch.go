package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/mpranav/dubfab/internal/download"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [url]",
	Short: "Download a video or its audio track from a URL",
	Long: `Download a video from a supported site using yt-dlp.

Videos are saved as mp4 at the requested quality. With --audio-only the
audio track is extracted and saved as mp3 instead. With --info only the
video metadata is printed and nothing is downloaded.

Examples:
  dubfab fetch https://youtube.com/watch?v=...
  dubfab fetch https://youtube.com/watch?v=... --quality 1080p --dir downloads
  dubfab fetch https://youtube.com/watch?v=... --audio-only
  dubfab fetch https://youtube.com/watch?v=... --info`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().
		StringP("quality", "q", "720p", "Video quality (best, 1080p, 720p, 480p)")
	fetchCmd.Flags().
		Bool("audio-only", false, "Download only the audio track as mp3")
	fetchCmd.Flags().
		Bool("info", false, "Print video metadata without downloading")
	fetchCmd.Flags().
		String("dir", ".", "Directory to save the download into")
}

func runFetch(cmd *cobra.Command, args []string) error {
	url := args[0]
	ctx := context.Background()

	quality, _ := cmd.Flags().GetString("quality")
	audioOnly, _ := cmd.Flags().GetBool("audio-only")
	infoOnly, _ := cmd.Flags().GetBool("info")
	dir, _ := cmd.Flags().GetString("dir")

	d := &download.Downloader{}

	if infoOnly {
		info, err := d.Probe(ctx, url)
		if err != nil {
			return fmt.Errorf("failed to fetch video info: %w", err)
		}
		fmt.Printf("Title:    %s\n", info.Title)
		fmt.Printf("Uploader: %s\n", info.Uploader)
		fmt.Printf("Duration: %s\n", time.Duration(info.Duration*float64(time.Second)).Round(time.Second))
		fmt.Printf("ID:       %s\n", info.ID)
		return nil
	}

	logger.Infow("Starting download",
		"url", url,
		"quality", quality,
		"audio_only", audioOnly,
		"dir", dir,
	)

	var path string
	var err error
	if audioOnly {
		path, err = d.Audio(ctx, url, dir)
	} else {
		path, err = d.Video(ctx, url, download.Quality(quality), dir)
	}
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}

	absPath, _ := filepath.Abs(path)
	fmt.Printf("Downloaded successfully: %s\n", absPath)

	return nil
}
