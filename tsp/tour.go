// Package tsp: tour utilities shared by both solvers.
//
// Solvers work on canonical city indices (see citygraph.Graph.Index) and
// convert to labels only when building the TourResult.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/tourlab/citygraph"
)

// ValidateTour enforces the closed-tour invariant on a label path:
//
//	len(path) == n+1, path[0] == path[n] == start,
//	every city of g appears exactly once in path[0..n-1].
//
// Returns ErrInvalidInput (wrapped with the reason) if any condition fails.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(g *citygraph.Graph, path []string, start string) error {
	s, err := validateGraphStart(g, start)
	if err != nil {
		return err
	}

	genes := make([]int, len(path))

	var (
		i  int
		id string
		ok bool
	)
	for i, id = range path {
		if genes[i], ok = g.Index(id); !ok {
			return fmt.Errorf("%w: tour position %d holds unknown city %q", ErrInvalidInput, i, id)
		}
	}

	return validateIndexTour(genes, g.Len(), s)
}

// validateIndexTour is ValidateTour on canonical indices.
func validateIndexTour(tour []int, n int, start int) error {
	if len(tour) != n+1 {
		return fmt.Errorf("%w: tour length %d, want %d", ErrInvalidInput, len(tour), n+1)
	}
	if tour[0] != start || tour[n] != start {
		return fmt.Errorf("%w: tour must start and end at the start city", ErrInvalidInput)
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return fmt.Errorf("%w: tour index %d out of range", ErrInvalidInput, v)
		}
		if seen[v] {
			return fmt.Errorf("%w: city visited twice at position %d", ErrInvalidInput, i)
		}
		seen[v] = true
	}

	return nil
}

// labels converts an index tour into the label path of a TourResult.
func labels(g *citygraph.Graph, tour []int) []string {
	out := make([]string, len(tour))

	var i int
	for i = range tour {
		out[i] = g.ID(tour[i])
	}

	return out
}
