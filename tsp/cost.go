package tsp

import (
	"fmt"

	"github.com/katalvlaran/tourlab/citygraph"
)

// TourWeight sums Distance(path[i], path[i+1]) over the whole path.
// The path is taken literally: no closing edge is added.
//
// Errors: ErrInvalidInput for a nil graph or a path shorter than 2;
// citygraph.ErrUnknownCity for a label outside the graph.
//
// Complexity: O(len(path)).
func TourWeight(g *citygraph.Graph, path []string) (int64, error) {
	if g == nil || len(path) < 2 {
		return 0, fmt.Errorf("%w: need a graph and a path of at least 2 cities", ErrInvalidInput)
	}

	var (
		sum int64
		w   int64
		err error
		i   int
	)
	for i = 0; i+1 < len(path); i++ {
		w, err = g.Distance(path[i], path[i+1])
		if err != nil {
			return 0, err
		}
		sum += w
	}

	return sum, nil
}

// tourWeight is TourWeight on canonical indices without checks; callers
// hold a validated tour.
func tourWeight(g *citygraph.Graph, tour []int) int64 {
	var (
		sum int64
		i   int
	)
	for i = 0; i+1 < len(tour); i++ {
		sum += g.At(tour[i], tour[i+1])
	}

	return sum
}
