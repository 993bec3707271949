// Package tsp - genetic-algorithm tour optimizer.
//
// Genetic evolves a population of closed tours for a fixed number of
// generations:
//
//  1. Initialize PopulationSize random tours anchored at start.
//  2. Each generation builds a new population of the same size. Every slot
//     gets two roulette-selected parents, one splice crossover child, and one
//     swap-mutation pass. The new population is sorted by descending fitness.
//  3. After the last generation the fittest chromosome is the result.
//
// Fitness is 1/total weight and is cached per chromosome, so each generation
// evaluates every tour exactly once.
//
// Determinism: all randomness comes from the caller's *rand.Rand; the same
// seed, graph, start and config reproduce the same TourResult.
//
// Cancellation: ctx is checked once per generation. A cancelled run returns
// ctx.Err() (wrapped) and no partial result.
package tsp

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tourlab/citygraph"
)

// Genetic runs the genetic algorithm from start.
//
// rng may be nil, in which case the default deterministic stream is used
// (see rngFromSeed). rng must not be shared with concurrent callers.
//
// Errors: ErrInvalidInput, ErrConfig, ErrDegenerateInput, or the context error.
func Genetic(ctx context.Context, g *citygraph.Graph, start string, cfg GAConfig, rng *rand.Rand) (TourResult, error) {
	s, err := validateGraphStart(g, start)
	if err != nil {
		return TourResult{}, err
	}
	if err = cfg.Validate(); err != nil {
		return TourResult{}, err
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	pop, err := newPopulation(g, s, cfg.PopulationSize, rng)
	if err != nil {
		return TourResult{}, err
	}

	var gen int
	for gen = 1; gen <= cfg.Generations; gen++ {
		if err = ctx.Err(); err != nil {
			return TourResult{}, fmt.Errorf("tsp: genetic stopped before generation %d: %w", gen, err)
		}

		pop, err = pop.next(g, s, cfg.MutationRate, rng)
		if err != nil {
			return TourResult{}, err
		}

		if cfg.OnGeneration != nil {
			cfg.OnGeneration(pop.stats(gen))
		}
	}

	best := pop[0]
	if err = validateIndexTour(best.genes, g.Len(), s); err != nil {
		return TourResult{}, err
	}

	return TourResult{Path: labels(g, best.genes), Weight: best.weight}, nil
}
