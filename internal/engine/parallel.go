package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/parafovea/fovea-sub006/internal/track"
)

// MaterializeAll interpolates several sequences concurrently, one goroutine
// per sequence. Sequences share no mutable state, so no locking is needed
// beyond the result slots. The context is checked before each sequence
// starts; cancellation abandons the remaining work.
func MaterializeAll(ctx context.Context, seqs []track.Sequence) ([][]track.BoundingBox, error) {
	results := make([][]track.BoundingBox, len(seqs))
	errs := make([]error, len(seqs))

	var wg sync.WaitGroup
	for i := range seqs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			select {
			case <-ctx.Done():
				errs[idx] = fmt.Errorf("%w: %v", track.ErrCanceled, ctx.Err())
				return
			default:
			}
			results[idx] = Interpolate(seqs[idx].Keyframes, seqs[idx].Segments, seqs[idx].Visibility)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
