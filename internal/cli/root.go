package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mpranav/dubfab/internal/logging"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "dubfab",
	Short: "AI-powered video dubbing pipeline",
	Long: `Dubfab turns a video in one language into a dubbed video in another.

It chains the individual steps: fetch a video, transcribe its audio into
subtitles, translate the subtitles, synthesize speech for each line, and
mix the speech back over (or instead of) the original soundtrack. Every
step is also exposed as its own command so you can run or rerun any part
of the pipeline on its own.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// missing .env is fine, API keys may come from the environment
		_ = godotenv.Load()
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		StringP("language", "l", "", "Language code (e.g., en, es, fr)")
}
