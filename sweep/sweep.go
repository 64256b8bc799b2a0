package sweep

import (
	"context"
	"math"
	"runtime"
	"sort"
	"sync"

	"github.com/katalvlaran/bfield/core"
	"golang.org/x/sync/errgroup"
)

// Evaluator computes the field at one sweep sample. p is the observation
// point for the sample and value the swept parameter (redundant for
// coordinate axes, essential for AxisTranslation). Implementations must be
// pure functions safe for concurrent use.
type Evaluator func(p core.CylPoint, value float64) (core.FieldVector, error)

// Option configures Run.
type Option func(*config)

type config struct {
	workers int
}

// WithWorkers bounds the evaluation pool to n concurrent workers.
// n < 1 is a programmer error and panics. Default: runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	if n < 1 {
		panic("sweep: WithWorkers requires n ≥ 1")
	}

	return func(c *config) { c.workers = n }
}

// Run evaluates eval at every sample of spec, data-parallel across a
// bounded worker pool.
//
// Contract:
//   - an evaluation error marks its sample skipped (NaN field, entry in
//     Result.Skipped) and the sweep continues — one invalid point never
//     aborts the sweep;
//   - context cancellation aborts the whole run and returns ctx's error;
//   - Result.Fields[i] always aligns with Result.Values[i].
//
// Errors: ErrNilEvaluator, spec validation sentinels, or a context error.
//
// Complexity: O(Samples) evaluator calls across min(workers, Samples)
// goroutines.
func Run(ctx context.Context, spec Spec, eval Evaluator, opts ...Option) (Result, error) {
	if eval == nil {
		return Result{}, ErrNilEvaluator
	}

	values, err := spec.Values()
	if err != nil {
		return Result{}, err
	}
	points, err := spec.Points()
	if err != nil {
		return Result{}, err
	}

	cfg := config{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}

	res := Result{
		Values: values,
		Fields: make([]core.FieldVector, len(values)),
	}

	var (
		mu      sync.Mutex // guards res.Skipped
		nan     = core.FieldVector{math.NaN(), math.NaN(), math.NaN()}
		g, gctx = errgroup.WithContext(ctx)
	)
	g.SetLimit(cfg.workers)

	for i := range points {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			field, evalErr := eval(points[i], values[i])
			if evalErr != nil {
				res.Fields[i] = nan
				mu.Lock()
				res.Skipped = append(res.Skipped, PointError{Index: i, Err: evalErr})
				mu.Unlock()

				return nil // skip-and-continue policy
			}
			res.Fields[i] = field

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return Result{}, err
	}

	// Workers finish in arbitrary order; report skips deterministically.
	sort.Slice(res.Skipped, func(a, b int) bool { return res.Skipped[a].Index < res.Skipped[b].Index })

	return res, nil
}
