package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mpranav/dubfab/internal/audio"
	"github.com/mpranav/dubfab/internal/subtitle"
	"github.com/mpranav/dubfab/internal/transcribe"
	"github.com/mpranav/dubfab/internal/video"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe [media_file]",
	Short: "Transcribe an audio or video file into subtitles",
	Long: `Transcribe the specified audio or video file into a subtitle file.

The command accepts both audio files (mp3, wav, aac, etc.) and video files
(mp4, mkv, etc.). For video files, audio is automatically extracted before
transcription.

The audio is split into chunks (default 1 minute) and transcribed in
parallel. Long segments are reflowed into readable subtitle lines before
writing. Output can be SRT or VTT.

Examples:
  dubfab transcribe video.mp4
  dubfab transcribe audio.mp3 --format vtt
  dubfab transcribe video.mp4 --provider openai --chunk-duration 2
  dubfab transcribe podcast.mp3 -f srt -d 1 --concurrency 5`,
	Args: cobra.ExactArgs(1),
	RunE: runTranscribe,
}

func init() {
	rootCmd.AddCommand(transcribeCmd)

	transcribeCmd.Flags().
		String("provider", "gemini", "Transcription provider (gemini, openai, whisper)")
	transcribeCmd.Flags().
		StringP("api-key", "k", "", "API key (or set GEMINI_API_KEY/OPENAI_API_KEY env var)")
	transcribeCmd.Flags().
		IntP("chunk-duration", "d", 1, "Chunk duration in minutes for splitting audio")
	transcribeCmd.Flags().
		StringP("format", "f", "srt", "Output subtitle format (srt, vtt)")
	transcribeCmd.Flags().
		Int("concurrency", 3, "Number of parallel transcription workers")
	transcribeCmd.Flags().
		String("model", "", "Model to use for transcription (provider-specific default)")
	transcribeCmd.Flags().
		String("transcript-language", "native", "Output language for transcript ('native' keeps the original; OpenAI/Whisper additionally support 'english')")
	transcribeCmd.Flags().
		Bool("no-reflow", false, "Keep raw transcription segments instead of reflowing them into subtitle-length lines")
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	mediaPath := args[0]
	ctx := context.Background()

	if _, err := os.Stat(mediaPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", mediaPath)
	}
	if !audio.IsMediaFile(mediaPath) {
		return fmt.Errorf("unsupported file type: %s (expected audio or video file)", filepath.Ext(mediaPath))
	}

	providerStr, _ := cmd.Flags().GetString("provider")
	apiKey, _ := cmd.Flags().GetString("api-key")
	chunkDuration, _ := cmd.Flags().GetInt("chunk-duration")
	formatStr, _ := cmd.Flags().GetString("format")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	model, _ := cmd.Flags().GetString("model")
	outputPath, _ := cmd.Flags().GetString("output")
	language, _ := cmd.Flags().GetString("language")
	transcriptLang, _ := cmd.Flags().GetString("transcript-language")
	noReflow, _ := cmd.Flags().GetBool("no-reflow")

	provider := transcribe.Provider(providerStr)

	if apiKey == "" {
		apiKey = os.Getenv(transcribeKeyEnv(provider))
	}
	if apiKey == "" {
		return fmt.Errorf(
			"API key is required: use --api-key flag or set %s environment variable",
			transcribeKeyEnv(provider),
		)
	}

	if provider != transcribe.ProviderGemini &&
		!isValidOpenAITranscriptLanguage(transcriptLang) {
		return fmt.Errorf(
			"transcript language %q is not supported by the %s provider: use 'native' or 'english'",
			transcriptLang,
			provider,
		)
	}

	var format subtitle.Format
	switch strings.ToLower(formatStr) {
	case "srt":
		format = subtitle.FormatSRT
	case "vtt":
		format = subtitle.FormatVTT
	default:
		return fmt.Errorf("unsupported format %q: use srt or vtt", formatStr)
	}

	if outputPath == "" {
		baseName := strings.TrimSuffix(mediaPath, filepath.Ext(mediaPath))
		outputPath = baseName + subtitle.ExtensionForFormat(format)
	}

	logger.Infow("Starting transcription",
		"input", mediaPath,
		"output", outputPath,
		"provider", providerStr,
		"format", formatStr,
		"chunk_duration", chunkDuration,
		"concurrency", concurrency,
	)

	tempDir, err := os.MkdirTemp("", "dubfab-*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	var audioPath string
	compressionOpts := audio.DefaultCompressionOptions()

	if audio.IsVideoFile(mediaPath) {
		logger.Infow("Extracting audio from video")
		audioPath = filepath.Join(tempDir, "audio.mp3")

		processor := video.NewProcessor(tempDir)
		extractOpts := video.ExtractAudioOptions{
			Format:     compressionOpts.Format,
			SampleRate: compressionOpts.SampleRate,
			Channels:   compressionOpts.Channels,
			Bitrate:    compressionOpts.Bitrate,
		}

		if err := processor.ExtractAudio(ctx, mediaPath, audioPath, extractOpts); err != nil {
			return fmt.Errorf("failed to extract audio: %w", err)
		}
	} else {
		logger.Infow("Compressing audio for transcription")
		audioPath = filepath.Join(tempDir, "audio.mp3")

		if err := audio.CompressAudio(ctx, mediaPath, audioPath, compressionOpts); err != nil {
			return fmt.Errorf("failed to compress audio: %w", err)
		}
	}

	duration, err := audio.GetDuration(audioPath)
	if err != nil {
		return fmt.Errorf("failed to get audio duration: %w", err)
	}

	logger.Infow("Audio prepared",
		"duration", duration.String(),
	)

	chunkDir := filepath.Join(tempDir, "chunks")
	chunkDur := time.Duration(chunkDuration) * time.Minute

	logger.Infow("Splitting audio into chunks",
		"chunk_duration", chunkDur.String(),
	)

	chunks, err := audio.ChunkAudio(ctx, audioPath, chunkDur, chunkDir)
	if err != nil {
		return fmt.Errorf("failed to split audio: %w", err)
	}

	logger.Infow("Created audio chunks",
		"count", len(chunks),
	)

	transcribeOpts := transcribe.Options{
		Language:           language,
		TranscriptLanguage: transcriptLang,
		Model:              model,
	}

	transcriber, err := transcribe.Factory(ctx, provider, apiKey, transcribeOpts)
	if err != nil {
		return fmt.Errorf("failed to create transcriber: %w", err)
	}

	logger.Infow("Transcribing audio",
		"concurrency", concurrency,
	)

	var result *transcribe.Result
	if ct, ok := transcriber.(transcribe.ConcurrentTranscriber); ok {
		result, err = ct.TranscribeWithChunks(ctx, chunks, concurrency)
	} else {
		result, err = transcriber.Transcribe(ctx, audioPath)
	}
	if err != nil {
		return fmt.Errorf("transcription failed: %w", err)
	}

	logger.Infow("Transcription complete",
		"segments", len(result.Segments),
	)

	segments := result.Segments
	if !noReflow {
		segments = subtitle.Reflow(segments, subtitle.DefaultReflowOptions())
	}

	if err := subtitle.WriteFile(segments, outputPath); err != nil {
		return fmt.Errorf("failed to write subtitles: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitles generated successfully: %s\n", absOutput)
	fmt.Printf("  Entries: %d\n", len(segments))
	fmt.Printf("  Duration: %s\n", duration.String())

	return nil
}

func transcribeKeyEnv(provider transcribe.Provider) string {
	switch provider {
	case transcribe.ProviderOpenAI, transcribe.ProviderWhisper:
		return "OPENAI_API_KEY"
	case transcribe.ProviderGemini:
		return "GEMINI_API_KEY"
	default:
		return "API_KEY"
	}
}
