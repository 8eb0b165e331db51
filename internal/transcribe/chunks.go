package transcribe

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/mpranav/dubfab/internal/audio"
	"github.com/mpranav/dubfab/internal/subtitle"
)

// holds the result of transcribing a chunk
type chunkResult struct {
	Index    int
	Segments []subtitle.Segment
	Error    error
}

// offsetSegments shifts chunk-local timestamps to absolute positions.
func offsetSegments(segments []subtitle.Segment, offset time.Duration) []subtitle.Segment {
	adjusted := make([]subtitle.Segment, len(segments))
	for i, seg := range segments {
		seg.Start += offset
		seg.End += offset
		adjusted[i] = seg
	}
	return adjusted
}

// transcribeChunks runs the per-chunk transcriber across a worker pool,
// cancelling remaining work on the first failure, and reassembles the
// segments in chunk order.
func transcribeChunks(
	ctx context.Context,
	t Transcriber,
	chunks []audio.ChunkInfo,
	concurrency int,
	language string,
) (*Result, error) {
	if len(chunks) == 0 {
		return &Result{}, nil
	}

	if concurrency <= 0 {
		concurrency = 3
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workChan := make(chan audio.ChunkInfo)
	resultChan := make(chan chunkResult, len(chunks))

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case chunk, ok := <-workChan:
					if !ok {
						return
					}
					if ctx.Err() != nil {
						return
					}

					result, err := t.Transcribe(ctx, chunk.Path)
					var segments []subtitle.Segment
					if err == nil {
						segments = offsetSegments(result.Segments, chunk.StartTime)
					} else {
						cancel()
					}
					resultChan <- chunkResult{
						Index:    chunk.Index,
						Segments: segments,
						Error:    err,
					}
				}
			}
		}()
	}

	go func() {
		defer close(workChan)
		for _, chunk := range chunks {
			select {
			case <-ctx.Done():
				return
			case workChan <- chunk:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	results := make([]chunkResult, 0, len(chunks))
	var firstErr error
	for result := range resultChan {
		if result.Error != nil && firstErr == nil {
			firstErr = fmt.Errorf("chunk %d failed: %w", result.Index, result.Error)
			cancel()
		}
		if result.Error == nil {
			results = append(results, result)
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}

	// sort by index to maintain order
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})

	var allSegments []subtitle.Segment
	for _, r := range results {
		allSegments = append(allSegments, r.Segments...)
	}

	return &Result{
		Segments: allSegments,
		Language: language,
		Duration: chunks[len(chunks)-1].EndTime,
	}, nil
}
