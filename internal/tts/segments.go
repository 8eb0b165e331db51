package tts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/mpranav/dubfab/internal/subtitle"
)

// Clip is one synthesized audio file positioned on the subtitle timeline.
type Clip struct {
	Index int
	Path  string
	Start time.Duration
	End   time.Duration
}

// SynthesizeSegments renders each segment's text to its own audio file in
// outputDir using a worker pool. Segments with empty text are skipped.
// Clips come back in segment order.
func SynthesizeSegments(
	ctx context.Context,
	s Synthesizer,
	segments []subtitle.Segment,
	outputDir string,
	concurrency int,
) ([]Clip, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	if concurrency <= 0 {
		concurrency = 3
	}

	type job struct {
		index   int
		segment subtitle.Segment
	}
	type result struct {
		clip Clip
		err  error
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workChan := make(chan job)
	resultChan := make(chan result, len(segments))

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-workChan:
					if !ok {
						return
					}
					if ctx.Err() != nil {
						return
					}

					path := filepath.Join(outputDir, fmt.Sprintf("segment_%04d.mp3", j.index))
					err := s.Synthesize(ctx, j.segment.Text, path)
					if err != nil {
						cancel()
					}
					resultChan <- result{
						clip: Clip{
							Index: j.index,
							Path:  path,
							Start: j.segment.Start,
							End:   j.segment.End,
						},
						err: err,
					}
				}
			}
		}()
	}

	go func() {
		defer close(workChan)
		for i, seg := range segments {
			if seg.Text == "" {
				continue
			}
			select {
			case <-ctx.Done():
				return
			case workChan <- job{index: i, segment: seg}:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	var clips []Clip
	var firstErr error
	for r := range resultChan {
		if r.err != nil && firstErr == nil {
			firstErr = fmt.Errorf("segment %d failed: %w", r.clip.Index, r.err)
			cancel()
		}
		if r.err == nil {
			clips = append(clips, r.clip)
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}

	sort.Slice(clips, func(i, j int) bool {
		return clips[i].Index < clips[j].Index
	})

	return clips, nil
}
