// Package batch runs many independent automata against one shared table.
package batch

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/celaut/internal/celaut"
	"github.com/san-kum/celaut/internal/metrics"
)

// Ensemble describes a batch of runs. Member i starts from a random universe
// seeded with SeedStart+i; the table is shared read-only by every member.
type Ensemble struct {
	Table       *celaut.Table
	Width       int
	Generations int
	Runs        int
	SeedStart   int64
	// Workers bounds concurrency; 0 means GOMAXPROCS.
	Workers int
}

// Result summarises one member of the ensemble.
type Result struct {
	Run   int
	Seed  int64
	Means map[string]float64
	Final celaut.Universe
}

func (e *Ensemble) validate() error {
	if e.Table == nil {
		return fmt.Errorf("batch: no table")
	}
	if e.Width <= 0 {
		return fmt.Errorf("batch: width must be positive, got %d", e.Width)
	}
	if e.Generations <= 0 {
		return fmt.Errorf("batch: generations must be positive, got %d", e.Generations)
	}
	if e.Runs <= 0 {
		return fmt.Errorf("batch: runs must be positive, got %d", e.Runs)
	}
	return nil
}

// Run executes every member and returns results ordered by run index.
func (e *Ensemble) Run(ctx context.Context) ([]Result, error) {
	if err := e.validate(); err != nil {
		return nil, err
	}

	workers := e.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, e.Runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < e.Runs; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := e.runOne(i)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (e *Ensemble) runOne(idx int) (Result, error) {
	seed := e.SeedStart + int64(idx)
	states := e.Table.States()
	rng := celaut.NewRand(seed)

	a, err := celaut.NewAutomaton(states, celaut.RandomUniverse(rng, states, e.Width))
	if err != nil {
		return Result{}, err
	}
	d, err := celaut.NewDriver(a, e.Table, e.Generations)
	if err != nil {
		return Result{}, err
	}

	series := metrics.Default(states)
	for _, s := range series {
		d.AddObserver(s)
	}
	if err := d.Run(celaut.Discard); err != nil {
		return Result{}, err
	}

	means := make(map[string]float64, len(series))
	for _, s := range series {
		means[s.Name()] = s.Mean()
	}
	return Result{Run: idx, Seed: seed, Means: means, Final: a.Universe()}, nil
}
