// Package tsp - unified dispatcher for the tour solvers.
//
// Solve is the canonical entry point: it routes to NearestNeighbor or Genetic
// according to Options.Algo, seeds the GA from Options.Seed, and re-checks
// the closed-tour invariant on the way out.
package tsp

import (
	"context"
	"fmt"

	"github.com/katalvlaran/tourlab/citygraph"
)

// Solve runs the solver selected by opts.Algo from start.
//
// Contracts:
//   - g must be non-nil with at least two cities; start must be a member.
//   - For GeneticAlgo, opts.GA must pass GAConfig.Validate.
//
// Errors: sentinels from types.go (ErrInvalidInput, ErrConfig,
// ErrDegenerateInput, ErrUnsupportedAlgorithm) or the context error.
//
// Complexity: per algorithm; see NearestNeighbor and Genetic.
func Solve(ctx context.Context, g *citygraph.Graph, start string, opts Options) (TourResult, error) {
	var (
		res TourResult
		err error
	)
	switch opts.Algo {
	case NearestNeighborAlgo:
		res, err = NearestNeighbor(g, start)
	case GeneticAlgo:
		res, err = Genetic(ctx, g, start, opts.GA, rngFromSeed(opts.Seed))
	default:
		return TourResult{}, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, opts.Algo)
	}
	if err != nil {
		return TourResult{}, err
	}

	if err = ValidateTour(g, res.Path, start); err != nil {
		return TourResult{}, err
	}

	return res, nil
}
