// Package tsp - input validation shared by both solvers.
//
// Deterministic, side-effect free; only sentinel errors from types.go,
// wrapped with the offending value for context.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/tourlab/citygraph"
)

// validateGraphStart checks that g is usable and start is one of its cities.
// It returns the canonical index of start.
//
// Complexity: O(1).
func validateGraphStart(g *citygraph.Graph, start string) (int, error) {
	if g == nil {
		return 0, fmt.Errorf("%w: graph is nil", ErrInvalidInput)
	}
	if g.Len() < citygraph.MinCities {
		return 0, fmt.Errorf("%w: graph has %d cities, need at least %d", ErrInvalidInput, g.Len(), citygraph.MinCities)
	}
	s, ok := g.Index(start)
	if !ok {
		return 0, fmt.Errorf("%w: start city %q is not in the graph", ErrInvalidInput, start)
	}

	return s, nil
}
