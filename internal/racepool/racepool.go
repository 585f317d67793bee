// Package racepool runs many independent races concurrently. Each race is
// an isolated in-process arena (its own Engine, its own dice source) with
// no shared mutable state between workers, so the only coordination needed
// is handing spec indices out over one channel, each worker writing its
// result into that index's slot — the same shape as the teacher's parallel
// Monte Carlo equity estimator.
package racepool

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/magsim/internal/engine"
)

// RaceSpec is everything one worker needs to build and run an isolated
// Engine. Factory is called on the worker's own goroutine so RNG/dice
// construction never crosses goroutine boundaries.
type RaceSpec struct {
	Seed    int64
	Factory func(seed int64) (*engine.Engine, error)
}

// Run executes specs with bounded concurrency (capped at runtime.NumCPU)
// and returns results in the same order as specs, regardless of
// completion order. The first
// worker error stops further specs from being handed out and is returned;
// races already in flight run to completion, and results are populated for
// the indices that completed.
func Run(ctx context.Context, specs []RaceSpec) ([]engine.RaceResult, error) {
	results := make([]engine.RaceResult, len(specs))
	if len(specs) == 0 {
		return results, nil
	}

	workers := runtime.NumCPU()
	if workers > len(specs) {
		workers = len(specs)
	}
	if workers < 1 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan int)

	g.Go(func() error {
		defer close(jobs)
		for i := range specs {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range jobs {
				spec := specs[i]
				e, err := spec.Factory(spec.Seed)
				if err != nil {
					return err
				}
				results[i] = e.RunRace()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
