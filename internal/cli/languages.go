package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mpranav/dubfab/internal/lang"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages and their default voices",
	Args:  cobra.NoArgs,
	RunE:  runLanguages,
}

func init() {
	rootCmd.AddCommand(languagesCmd)

	languagesCmd.Flags().
		Bool("voices", false, "Also list every available voice per language")
}

func runLanguages(cmd *cobra.Command, args []string) error {
	showVoices, _ := cmd.Flags().GetBool("voices")

	for _, l := range lang.All() {
		fmt.Printf("%-4s %-12s %s\n", l.Code, l.Name, lang.DefaultVoice(l.TTS))
		if showVoices {
			for _, v := range lang.VoicesFor(l.TTS) {
				fmt.Printf("       %-32s %s\n", v.Name, v.Description)
			}
		}
	}

	return nil
}
