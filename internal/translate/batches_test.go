package translate

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/mpranav/dubfab/internal/subtitle"
)

// echoes each item back with a prefix, failing when asked to
func echoBatch(failText string) batchFunc {
	return func(ctx context.Context, items []TranslationItem) ([]TranslationResult, error) {
		results := make([]TranslationResult, len(items))
		for i, item := range items {
			if item.Text == failText {
				return nil, fmt.Errorf("refused %q", failText)
			}
			results[i] = TranslationResult{Index: item.Index, Text: "x-" + item.Text}
		}
		return results, nil
	}
}

func makeItems(n int) []TranslationItem {
	items := make([]TranslationItem, n)
	for i := range items {
		items[i] = TranslationItem{Index: i, Text: fmt.Sprintf("line %d", i)}
	}
	return items
}

func TestSplitBatches(t *testing.T) {
	tests := []struct {
		items     int
		batchSize int
		want      int
	}{
		{0, 10, 0},
		{5, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{7, 0, 1}, // zero falls back to the default size
	}

	for _, tt := range tests {
		got := splitBatches(makeItems(tt.items), tt.batchSize)
		if len(got) != tt.want {
			t.Errorf("splitBatches(%d items, size %d) = %d batches, want %d",
				tt.items, tt.batchSize, len(got), tt.want)
		}
	}
}

func TestRunBatchesOrdered(t *testing.T) {
	items := makeItems(12)

	results, err := runBatches(context.Background(), echoBatch(""), items, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 12 {
		t.Fatalf("got %d results, want 12", len(results))
	}
	for i, r := range results {
		if r.Index != i {
			t.Errorf("result %d has index %d", i, r.Index)
		}
		if !strings.HasPrefix(r.Text, "x-") {
			t.Errorf("result %d not translated: %q", i, r.Text)
		}
	}
}

func TestRunBatchesConcurrentOrdered(t *testing.T) {
	items := makeItems(23)

	results, err := runBatchesConcurrent(context.Background(), echoBatch(""), items, 5, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 23 {
		t.Fatalf("got %d results, want 23", len(results))
	}
	for i, r := range results {
		if r.Index != i {
			t.Errorf("result %d has index %d", i, r.Index)
		}
	}
}

func TestRunBatchesConcurrentError(t *testing.T) {
	items := makeItems(23)

	_, err := runBatchesConcurrent(context.Background(), echoBatch("line 17"), items, 5, 3)
	if err == nil {
		t.Fatal("expected error from failing batch")
	}
}

func TestRunBatchesEmpty(t *testing.T) {
	results, err := runBatches(context.Background(), echoBatch(""), nil, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

// minimal Translator backed by a batchFunc
type funcTranslator struct {
	fn batchFunc
}

func (f *funcTranslator) Translate(ctx context.Context, items []TranslationItem) ([]TranslationResult, error) {
	return f.fn(ctx, items)
}

func TestSegmentsKeepsTimingAndOriginal(t *testing.T) {
	segments := []subtitle.Segment{
		{Index: 1, Start: 0, End: 2 * time.Second, Text: "hello"},
		{Index: 2, Start: 2 * time.Second, End: 4 * time.Second, Text: ""},
		{Index: 3, Start: 4 * time.Second, End: 6 * time.Second, Text: "goodbye"},
	}

	translated, err := Segments(context.Background(), &funcTranslator{echoBatch("")}, segments, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if translated[0].Text != "x-hello" || translated[0].Original != "hello" {
		t.Errorf("segment 0: text %q, original %q", translated[0].Text, translated[0].Original)
	}
	if translated[2].Text != "x-goodbye" || translated[2].Original != "goodbye" {
		t.Errorf("segment 2: text %q, original %q", translated[2].Text, translated[2].Original)
	}

	// empty segment passes through untranslated
	if translated[1].Text != "" || translated[1].Original != "" {
		t.Errorf("empty segment changed: %+v", translated[1])
	}

	for i := range segments {
		if translated[i].Start != segments[i].Start || translated[i].End != segments[i].End {
			t.Errorf("segment %d timing changed", i)
		}
	}

	// input untouched
	if segments[0].Text != "hello" {
		t.Error("Segments mutated its input")
	}
}

func TestSegmentsRejectsBadIndex(t *testing.T) {
	bad := func(ctx context.Context, items []TranslationItem) ([]TranslationResult, error) {
		return []TranslationResult{{Index: 99, Text: "stray"}}, nil
	}

	segments := []subtitle.Segment{
		{Index: 1, Start: 0, End: time.Second, Text: "hello"},
	}

	if _, err := Segments(context.Background(), &funcTranslator{bad}, segments, 1); err == nil {
		t.Fatal("expected error for out-of-range result index")
	}
}
