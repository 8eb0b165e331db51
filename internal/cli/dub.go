package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mpranav/dubfab/internal/audio"
	"github.com/mpranav/dubfab/internal/lang"
	"github.com/mpranav/dubfab/internal/subtitle"
	"github.com/mpranav/dubfab/internal/tts"
	"github.com/mpranav/dubfab/internal/video"
)

var dubCmd = &cobra.Command{
	Use:   "dub [subtitle_file]",
	Short: "Synthesize speech for subtitles and mix a dubbed track",
	Long: `Render a dubbed audio track from a subtitle file.

Each subtitle cue is synthesized to speech and placed on the timeline at
its start time. The clips are then mixed with the original soundtrack
according to --mode: replace drops the original, duck lowers it under
the speech, overlay leaves it untouched.

With --video the dubbed track is muxed back into the video (video stream
copied, audio re-encoded). With --audio the given file serves as the
original soundtrack. With neither, a speech-only track is produced.

Examples:
  dubfab dub subs.ja.srt --video talk.mp4 -l ja
  dubfab dub subs.es.srt --audio talk.mp3 --mode duck --original-volume 0.2
  dubfab dub subs.srt --voice en-GB-SoniaNeural --rate 10
  dubfab dub subs.srt --tts-provider openai --tts-model tts-1-hd`,
	Args: cobra.ExactArgs(1),
	RunE: runDub,
}

func init() {
	rootCmd.AddCommand(dubCmd)

	dubCmd.Flags().
		String("video", "", "Video file to mux the dubbed track into")
	dubCmd.Flags().
		String("audio", "", "Original audio track to mix under the dub")
	dubCmd.Flags().
		String("tts-provider", "edge", "Speech synthesis provider (edge, openai)")
	dubCmd.Flags().
		String("voice", "", "Voice name (default picked from --language)")
	dubCmd.Flags().
		Int("rate", 0, "Speaking rate adjustment in percent, -50 to 100")
	dubCmd.Flags().
		Int("pitch", 0, "Pitch adjustment in Hz, -50 to 50")
	dubCmd.Flags().
		String("tts-model", "", "Model for API-based synthesis (e.g. tts-1, tts-1-hd)")
	dubCmd.Flags().
		StringP("api-key", "k", "", "API key for API-based synthesis (or set OPENAI_API_KEY env var)")
	dubCmd.Flags().
		String("mode", "replace", "Mix mode (replace, duck, overlay)")
	dubCmd.Flags().
		Float64("original-volume", 0.3, "Fraction of original loudness kept in duck mode")
	dubCmd.Flags().
		Int("concurrency", 3, "Number of parallel synthesis workers")
}

func runDub(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]
	ctx := context.Background()

	videoPath, _ := cmd.Flags().GetString("video")
	audioPath, _ := cmd.Flags().GetString("audio")
	providerStr, _ := cmd.Flags().GetString("tts-provider")
	voice, _ := cmd.Flags().GetString("voice")
	rate, _ := cmd.Flags().GetInt("rate")
	pitch, _ := cmd.Flags().GetInt("pitch")
	ttsModel, _ := cmd.Flags().GetString("tts-model")
	apiKey, _ := cmd.Flags().GetString("api-key")
	modeStr, _ := cmd.Flags().GetString("mode")
	originalVolume, _ := cmd.Flags().GetFloat64("original-volume")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	outputPath, _ := cmd.Flags().GetString("output")
	langCode, _ := cmd.Flags().GetString("language")

	if _, err := os.Stat(subtitlePath); os.IsNotExist(err) {
		return fmt.Errorf("subtitle file not found: %s", subtitlePath)
	}
	if videoPath != "" && audioPath != "" {
		return fmt.Errorf("--video and --audio are mutually exclusive")
	}

	var mode audio.MixMode
	switch strings.ToLower(modeStr) {
	case "replace":
		mode = audio.MixReplace
	case "duck":
		mode = audio.MixDuck
	case "overlay":
		mode = audio.MixOverlay
	default:
		return fmt.Errorf("unsupported mix mode %q: use replace, duck, or overlay", modeStr)
	}

	if voice == "" && langCode != "" {
		l, err := lang.Lookup(langCode)
		if err != nil {
			return err
		}
		voice = lang.DefaultVoice(l.TTS)
	}

	provider := tts.Provider(providerStr)
	if provider == tts.ProviderOpenAI && apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return fmt.Errorf("API key is required: use --api-key flag or set OPENAI_API_KEY environment variable")
		}
	}

	segments, err := subtitle.ParseFile(subtitlePath)
	if err != nil {
		return fmt.Errorf("failed to parse subtitle file: %w", err)
	}
	if len(segments) == 0 {
		return fmt.Errorf("subtitle file contains no entries")
	}

	if outputPath == "" {
		baseName := strings.TrimSuffix(subtitlePath, filepath.Ext(subtitlePath))
		if videoPath != "" {
			outputPath = baseName + ".dub.mp4"
		} else {
			outputPath = baseName + ".dub.mp3"
		}
	}

	logger.Infow("Starting dub",
		"subtitles", subtitlePath,
		"output", outputPath,
		"tts_provider", providerStr,
		"voice", voice,
		"mode", modeStr,
		"entries", len(segments),
	)

	tempDir, err := os.MkdirTemp("", "dubfab-*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	originalPath := audioPath
	if videoPath != "" {
		logger.Infow("Extracting original audio from video")
		originalPath = filepath.Join(tempDir, "original.mp3")

		processor := video.NewProcessor(tempDir)
		if err := processor.ExtractAudio(ctx, videoPath, originalPath, video.DefaultExtractAudioOptions()); err != nil {
			return fmt.Errorf("failed to extract audio: %w", err)
		}
	}

	synth, err := tts.Factory(provider, apiKey, tts.Options{
		Voice: voice,
		Rate:  rate,
		Pitch: pitch,
		Model: ttsModel,
	})
	if err != nil {
		return fmt.Errorf("failed to create synthesizer: %w", err)
	}

	logger.Infow("Synthesizing speech",
		"concurrency", concurrency,
	)

	clipDir := filepath.Join(tempDir, "clips")
	clips, err := tts.SynthesizeSegments(ctx, synth, segments, clipDir, concurrency)
	if err != nil {
		return fmt.Errorf("speech synthesis failed: %w", err)
	}
	if len(clips) == 0 {
		return fmt.Errorf("no speech was synthesized: all cues are empty")
	}

	logger.Infow("Synthesized speech clips",
		"count", len(clips),
	)

	mixOpts := audio.DefaultMixOptions()
	mixOpts.Mode = mode
	mixOpts.OriginalVolume = originalVolume
	if originalPath != "" {
		if d, err := audio.GetDuration(originalPath); err == nil {
			mixOpts.TotalDuration = d
		}
	} else {
		mixOpts.TotalDuration = segments[len(segments)-1].End
	}

	mixClips := make([]audio.Clip, len(clips))
	for i, c := range clips {
		mixClips[i] = audio.Clip{Path: c.Path, Start: c.Start}
	}

	mixedPath := outputPath
	if videoPath != "" {
		mixedPath = filepath.Join(tempDir, "dubbed.mp3")
	}

	logger.Infow("Mixing dubbed track",
		"mode", modeStr,
		"clips", len(mixClips),
	)

	if err := audio.Mix(ctx, originalPath, mixClips, mixedPath, mixOpts); err != nil {
		return fmt.Errorf("mixing failed: %w", err)
	}

	if videoPath != "" {
		logger.Infow("Muxing dubbed track into video")
		processor := video.NewProcessor(tempDir)
		if err := processor.MuxAudio(ctx, videoPath, mixedPath, outputPath); err != nil {
			return fmt.Errorf("muxing failed: %w", err)
		}
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Dubbed track created successfully: %s\n", absOutput)
	fmt.Printf("  Cues voiced: %d\n", len(clips))
	fmt.Printf("  Mix mode: %s\n", modeStr)

	return nil
}
