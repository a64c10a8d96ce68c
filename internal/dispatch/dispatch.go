// Package dispatch fans a list of files out across a bounded worker pool,
// one engine.Analyze call per file, matching spec.md §5 ("Independent
// files may be analyzed in parallel by the surrounding driver"). Grounded
// on MH_Style's work_package abstraction (one Result per file, dispatched
// by a backend) and realized with golang.org/x/sync/errgroup rather than
// a hand-rolled sync.WaitGroup/channel pool.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/btouchard/mlint/internal/config"
	"github.com/btouchard/mlint/internal/diag"
	"github.com/btouchard/mlint/internal/engine"
	"github.com/btouchard/mlint/internal/token"
)

// Run analyzes files concurrently, bounded by workers, and returns one
// Result per file in the same order files were given (not completion
// order). A read failure for one file is recorded as an engine.Result
// carrying a single error diagnostic rather than aborting the whole run;
// the returned error is reserved for a worker's internal-consistency
// failure (propagated from engine.AnalyzeFile) or ctx cancellation.
func Run(ctx context.Context, files []string, cfg *config.Config, workers int) ([]engine.Result, error) {
	if workers <= 0 {
		workers = 1
	}

	results := make([]engine.Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var mu sync.Mutex
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			data, err := os.ReadFile(file)
			if err != nil {
				slog.Warn("dispatch: could not read file", "file", file, "error", err)
				mu.Lock()
				results[i] = readFailureResult(file, err)
				mu.Unlock()
				return nil
			}

			res, err := engine.AnalyzeFile(file, string(data), cfg, false)
			if err != nil {
				return fmt.Errorf("dispatch: %s: %w", file, err)
			}

			mu.Lock()
			results[i] = res
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func readFailureResult(file string, err error) engine.Result {
	return engine.Result{
		Filename: file,
		Diagnostics: []diag.Diagnostic{{
			Severity: diag.Error,
			Pos:      token.Position{File: file},
			Message:  fmt.Sprintf("could not read file: %v", err),
			Fatal:    false,
		}},
		HasErrors: true,
	}
}

// SortByFilename orders results deterministically for report rendering,
// independent of whatever order Run's goroutines happened to finish in.
func SortByFilename(results []engine.Result) {
	sort.Slice(results, func(i, j int) bool { return results[i].Filename < results[j].Filename })
}
