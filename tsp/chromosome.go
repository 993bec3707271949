// Package tsp - chromosome operators of the genetic solver.
//
// A chromosome is a closed index tour [start, c1, …, c(n-1), start]. Positions
// 0 and n are anchors and never move; only the interior is permuted.
// Every operator here preserves that shape.
package tsp

import (
	"math/rand"

	"github.com/katalvlaran/tourlab/citygraph"
)

// chromosome is a candidate tour plus its cached evaluation.
// weight and fitness are valid for the generation in which the chromosome was built.
type chromosome struct {
	genes   []int
	weight  int64
	fitness float64
}

// newRandomChromosome returns [start, shuffled others…, start] using a
// Fisher–Yates shuffle driven by rng.
//
// Complexity: O(n).
func newRandomChromosome(n, start int, rng *rand.Rand) []int {
	genes := make([]int, n+1)
	genes[0] = start
	genes[n] = start

	var (
		v   int
		pos = 1
	)
	for v = 0; v < n; v++ {
		if v == start {
			continue
		}
		genes[pos] = v
		pos++
	}
	shuffleIntsInPlace(genes[1:n], rng)

	return genes
}

// evaluate computes total weight and fitness = 1/weight.
// A zero total weight has no finite fitness and yields ErrDegenerateInput.
//
// Complexity: O(n).
func evaluate(g *citygraph.Graph, genes []int) (chromosome, error) {
	w := tourWeight(g, genes)
	if w <= 0 {
		return chromosome{}, ErrDegenerateInput
	}

	return chromosome{genes: genes, weight: w, fitness: 1 / float64(w)}, nil
}

// crossover splices parents into one child:
//
//  1. copy the first len/2 genes of p1 (this includes the leading start);
//  2. append the genes of p2 in order, skipping start and any gene already taken;
//  3. append start to close the loop.
//
// Both parents must be closed tours over the same city set, so the child is
// one as well.
//
// Complexity: O(n).
func crossover(p1, p2 []int, start int) []int {
	var (
		size = len(p1)
		half = size / 2
	)
	child := make([]int, 0, size)
	taken := make([]bool, size) // indices are < n == size-1

	var (
		i int
		v int
	)
	for i = 0; i < half; i++ {
		v = p1[i]
		child = append(child, v)
		taken[v] = true
	}
	for i = 0; i < len(p2); i++ {
		v = p2[i]
		if v == start || taken[v] {
			continue
		}
		child = append(child, v)
		taken[v] = true
	}

	return append(child, start)
}

// mutate visits interior positions i = 1..len-2 and, with probability rate,
// swaps gene i with a gene at a uniform position in [i, len-2]. Choosing i
// itself is a no-op swap. The anchors at 0 and len-1 are never touched.
//
// Complexity: O(n).
func mutate(genes []int, rate float64, rng *rand.Rand) {
	var (
		last = len(genes) - 2 // last interior position
		i, j int
	)
	for i = 1; i <= last; i++ {
		if rng.Float64() < rate {
			j = i + rng.Intn(last-i+1)
			genes[i], genes[j] = genes[j], genes[i]
		}
	}
}
