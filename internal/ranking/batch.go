package ranking

import (
	"cmp"
	"context"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
)

// RankBatch ranks every resume against the same requirements and returns the
// results ordered by final score, highest first. Equal scores keep input order.
func (e *Engine) RankBatch(resumes []Resume, req Requirements) []RankedResult {
	results := make([]RankedResult, len(resumes))
	for i, r := range resumes {
		results[i] = RankedResult{ID: r.ID, Result: e.Rank(r.Text, req)}
	}

	sortRanked(results)
	return results
}

// RankBatchParallel is RankBatch spread over at most workers goroutines.
// A non-positive workers value uses one goroutine per CPU.
func (e *Engine) RankBatchParallel(ctx context.Context, resumes []Resume, req Requirements, workers int) ([]RankedResult, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]RankedResult, len(resumes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, r := range resumes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = RankedResult{ID: r.ID, Result: e.Rank(r.Text, req)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortRanked(results)
	return results, nil
}

func sortRanked(results []RankedResult) {
	slices.SortStableFunc(results, func(a, b RankedResult) int {
		return cmp.Compare(b.FinalScore, a.FinalScore)
	})
}
