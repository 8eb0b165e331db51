package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/mpranav/dubfab/internal/subtitle"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit subtitle files (merge, split, shift, retime)",
	Long: `Edit an existing subtitle file without re-running transcription.

Cues are addressed by the numbers shown in the file (1-based). Edits are
written back to the input file unless -o names another path.

Examples:
  dubfab edit merge subs.srt 3 4
  dubfab edit split subs.srt 3 --at 1m2.5s
  dubfab edit shift subs.srt --by -2s
  dubfab edit retime subs.srt 3 --start -200ms --end 300ms`,
}

var editMergeCmd = &cobra.Command{
	Use:   "merge [subtitle_file] [cue...]",
	Short: "Merge two or more cues into one",
	Args:  cobra.MinimumNArgs(3),
	RunE:  runEditMerge,
}

var editSplitCmd = &cobra.Command{
	Use:   "split [subtitle_file] [cue]",
	Short: "Split a cue into two at a point in time",
	Args:  cobra.ExactArgs(2),
	RunE:  runEditSplit,
}

var editShiftCmd = &cobra.Command{
	Use:   "shift [subtitle_file]",
	Short: "Shift every cue by the same offset",
	Args:  cobra.ExactArgs(1),
	RunE:  runEditShift,
}

var editRetimeCmd = &cobra.Command{
	Use:   "retime [subtitle_file] [cue]",
	Short: "Adjust one cue's start and end times",
	Args:  cobra.ExactArgs(2),
	RunE:  runEditRetime,
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.AddCommand(editMergeCmd, editSplitCmd, editShiftCmd, editRetimeCmd)

	editSplitCmd.Flags().
		String("at", "", "Split point as a timestamp (00:01:02,500) or duration (1m2.5s)")
	_ = editSplitCmd.MarkFlagRequired("at")

	editShiftCmd.Flags().
		String("by", "", "Offset to apply, e.g. 2s or -500ms")
	_ = editShiftCmd.MarkFlagRequired("by")

	editRetimeCmd.Flags().
		String("start", "0s", "Delta applied to the cue start, e.g. -200ms")
	editRetimeCmd.Flags().
		String("end", "0s", "Delta applied to the cue end, e.g. 300ms")
}

// parsePoint accepts either a subtitle timestamp or a Go duration string.
func parsePoint(s string) (time.Duration, error) {
	if d, err := subtitle.ParseSRTTimestamp(s); err == nil {
		return d, nil
	}
	if d, err := subtitle.ParseVTTTimestamp(s); err == nil {
		return d, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: use a timestamp like 00:01:02,500 or a duration like 1m2.5s", s)
	}
	return d, nil
}

func parseCue(arg string, count int) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > count {
		return 0, fmt.Errorf("invalid cue number %q: file has cues 1-%d", arg, count)
	}
	return n - 1, nil
}

func editOutputPath(cmd *cobra.Command, inputPath string) string {
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		return out
	}
	return inputPath
}

func runEditMerge(cmd *cobra.Command, args []string) error {
	segments, err := subtitle.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse subtitle file: %w", err)
	}

	indices := make([]int, 0, len(args)-1)
	for _, arg := range args[1:] {
		idx, err := parseCue(arg, len(segments))
		if err != nil {
			return err
		}
		indices = append(indices, idx)
	}

	merged := subtitle.MergeSegments(segments, indices)
	if len(merged) == len(segments) {
		return fmt.Errorf("nothing to merge: give at least two distinct cues")
	}

	outputPath := editOutputPath(cmd, args[0])
	if err := subtitle.WriteFile(merged, outputPath); err != nil {
		return fmt.Errorf("failed to write subtitle file: %w", err)
	}

	fmt.Printf("Merged %d cues: %s (%d cues remain)\n", len(indices), outputPath, len(merged))
	return nil
}

func runEditSplit(cmd *cobra.Command, args []string) error {
	segments, err := subtitle.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse subtitle file: %w", err)
	}

	idx, err := parseCue(args[1], len(segments))
	if err != nil {
		return err
	}

	atStr, _ := cmd.Flags().GetString("at")
	at, err := parsePoint(atStr)
	if err != nil {
		return err
	}

	seg := segments[idx]
	if at <= seg.Start || at >= seg.End {
		return fmt.Errorf(
			"split point %s is outside cue %s: it runs %s to %s",
			at, args[1],
			subtitle.FormatSRTTimestamp(seg.Start),
			subtitle.FormatSRTTimestamp(seg.End),
		)
	}

	split := subtitle.SplitSegment(segments, idx, at)

	outputPath := editOutputPath(cmd, args[0])
	if err := subtitle.WriteFile(split, outputPath); err != nil {
		return fmt.Errorf("failed to write subtitle file: %w", err)
	}

	fmt.Printf("Split cue %s at %s: %s (%d cues)\n",
		args[1], subtitle.FormatSRTTimestamp(at), outputPath, len(split))
	return nil
}

func runEditShift(cmd *cobra.Command, args []string) error {
	segments, err := subtitle.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse subtitle file: %w", err)
	}

	byStr, _ := cmd.Flags().GetString("by")
	delta, err := time.ParseDuration(byStr)
	if err != nil {
		return fmt.Errorf("invalid offset %q: use a duration like 2s or -500ms", byStr)
	}

	shifted := subtitle.ShiftAll(segments, delta)

	outputPath := editOutputPath(cmd, args[0])
	if err := subtitle.WriteFile(shifted, outputPath); err != nil {
		return fmt.Errorf("failed to write subtitle file: %w", err)
	}

	fmt.Printf("Shifted %d cues by %s: %s\n", len(shifted), delta, outputPath)
	return nil
}

func runEditRetime(cmd *cobra.Command, args []string) error {
	segments, err := subtitle.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse subtitle file: %w", err)
	}

	idx, err := parseCue(args[1], len(segments))
	if err != nil {
		return err
	}

	startStr, _ := cmd.Flags().GetString("start")
	endStr, _ := cmd.Flags().GetString("end")

	startDelta, err := time.ParseDuration(startStr)
	if err != nil {
		return fmt.Errorf("invalid start delta %q: use a duration like -200ms", startStr)
	}
	endDelta, err := time.ParseDuration(endStr)
	if err != nil {
		return fmt.Errorf("invalid end delta %q: use a duration like 300ms", endStr)
	}

	adjusted := subtitle.AdjustTiming(segments, idx, startDelta, endDelta)

	outputPath := editOutputPath(cmd, args[0])
	if err := subtitle.WriteFile(adjusted, outputPath); err != nil {
		return fmt.Errorf("failed to write subtitle file: %w", err)
	}

	seg := adjusted[idx]
	fmt.Printf("Retimed cue %s: now %s --> %s (%s)\n",
		args[1],
		subtitle.FormatSRTTimestamp(seg.Start),
		subtitle.FormatSRTTimestamp(seg.End),
		outputPath)
	return nil
}
