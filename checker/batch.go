package checker

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// BatchResult holds the outcome of one comparison in a batch.
type BatchResult struct {
	CandidatePath string
	OutputPath    string
	Score         float64
	Err           error
}

// CheckMany compares one original against many candidates concurrently
// on a bounded worker pool, writing one result file per candidate into
// outDir. Each comparison builds its own vocabulary, so they share no
// mutable state. Per-candidate failures are isolated in their
// BatchResult (with the 0.00 fallback written as usual) and do not
// abort the batch; the returned error covers batch setup only.
func (c *Checker) CheckMany(ctx context.Context, origPath string, candidatePaths []string, outDir string) ([]BatchResult, error) {
	if len(candidatePaths) == 0 {
		return nil, nil
	}

	pool, err := ants.NewPool(c.poolSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	results := make([]BatchResult, len(candidatePaths))
	var wg sync.WaitGroup

	for i, candidatePath := range candidatePaths {
		outPath := filepath.Join(outDir, resultFileName(candidatePath))
		results[i] = BatchResult{CandidatePath: candidatePath, OutputPath: outPath}

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			score, err := c.Check(ctx, origPath, candidatePath, outPath)
			results[i].Score = score
			results[i].Err = err
		})
		if submitErr != nil {
			wg.Done()
			results[i].Err = submitErr
		}
	}

	wg.Wait()
	return results, nil
}

// resultFileName derives the per-candidate output name: the candidate
// base name with its extension replaced by ".ans.txt".
func resultFileName(candidatePath string) string {
	base := filepath.Base(candidatePath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".ans.txt"
}
