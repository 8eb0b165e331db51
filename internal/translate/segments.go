package translate

import (
	"context"
	"fmt"

	"github.com/mpranav/dubfab/internal/subtitle"
)

// Segments translates subtitle segments in place of their text, keeping
// timestamps untouched and recording each segment's source text in
// Original. Segments with empty text pass through unchanged. Uses the
// translator's concurrent path when it offers one.
func Segments(
	ctx context.Context,
	translator Translator,
	segments []subtitle.Segment,
	concurrency int,
) ([]subtitle.Segment, error) {
	items := make([]TranslationItem, 0, len(segments))
	for i, seg := range segments {
		if seg.Text == "" {
			continue
		}
		items = append(items, TranslationItem{Index: i, Text: seg.Text})
	}

	var results []TranslationResult
	var err error
	if ct, ok := translator.(ConcurrentTranslator); ok {
		results, err = ct.TranslateWithConcurrency(ctx, items, concurrency)
	} else {
		results, err = translator.Translate(ctx, items)
	}
	if err != nil {
		return nil, err
	}

	translated := make([]subtitle.Segment, len(segments))
	copy(translated, segments)

	for _, r := range results {
		if r.Index < 0 || r.Index >= len(translated) {
			return nil, fmt.Errorf("translation result index %d out of range", r.Index)
		}
		translated[r.Index].Original = translated[r.Index].Text
		translated[r.Index].Text = r.Text
	}

	return translated, nil
}
