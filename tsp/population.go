package tsp

import (
	"cmp"
	"math/rand"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/tourlab/citygraph"
)

// population is a fixed-size generation of chromosomes. After sortByFitness
// it is ordered by descending fitness; a new population is built each round.
type population []chromosome

// newPopulation builds size random chromosomes anchored at start.
func newPopulation(g *citygraph.Graph, start, size int, rng *rand.Rand) (population, error) {
	var n = g.Len()
	pop := make(population, 0, size)

	var (
		c   chromosome
		err error
		i   int
	)
	for i = 0; i < size; i++ {
		c, err = evaluate(g, newRandomChromosome(n, start, rng))
		if err != nil {
			return nil, err
		}
		pop = append(pop, c)
	}

	return pop, nil
}

// totalFitness sums the cached fitness of every chromosome.
func (p population) totalFitness() float64 {
	var sum float64
	for i := range p {
		sum += p[i].fitness
	}

	return sum
}

// selectParent performs one roulette-wheel draw: a uniform value in
// [0, total) is taken, and the first chromosome whose running fitness sum
// exceeds it is returned. Selection probability is fitness/total.
//
// Complexity: O(len(p)).
func (p population) selectParent(total float64, rng *rand.Rand) chromosome {
	var (
		r   = rng.Float64() * total
		acc float64
		i   int
	)
	for i = range p {
		acc += p[i].fitness
		if acc > r {
			return p[i]
		}
	}

	// Floating-point rounding can leave acc a hair below r.
	return p[len(p)-1]
}

// next builds the following generation: for every slot, two independent
// roulette draws, one splice crossover, one mutation pass, one evaluation.
// The result is sorted by descending fitness.
//
// Complexity: O(P·(P + n)) for P = len(p).
func (p population) next(g *citygraph.Graph, start int, rate float64, rng *rand.Rand) (population, error) {
	var total = p.totalFitness()
	out := make(population, 0, len(p))

	var (
		p1, p2 chromosome
		child  chromosome
		genes  []int
		err    error
		i      int
	)
	for i = 0; i < len(p); i++ {
		p1 = p.selectParent(total, rng)
		p2 = p.selectParent(total, rng)

		genes = crossover(p1.genes, p2.genes, start)
		mutate(genes, rate, rng)

		child, err = evaluate(g, genes)
		if err != nil {
			return nil, err
		}
		out = append(out, child)
	}
	out.sortByFitness()

	return out, nil
}

// sortByFitness orders chromosomes by descending fitness; equal fitness keeps
// construction order so the outcome depends only on the rng stream.
func (p population) sortByFitness() {
	slices.SortStableFunc(p, func(a, b chromosome) int {
		return cmp.Compare(b.fitness, a.fitness)
	})
}

// stats summarizes a sorted population.
func (p population) stats(generation int) GenerationStats {
	fitness := make([]float64, len(p))
	for i := range p {
		fitness[i] = p[i].fitness
	}

	return GenerationStats{
		Generation:    generation,
		BestWeight:    p[0].weight,
		BestFitness:   p[0].fitness,
		MeanFitness:   stat.Mean(fitness, nil),
		StdDevFitness: stat.StdDev(fitness, nil),
	}
}
