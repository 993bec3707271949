// Package tsp - greedy nearest-neighbour tour construction.
//
// Starting at the chosen city, repeatedly hop to the closest unvisited city,
// then close the loop back to the start.
//
// Tie-breaking: candidates are scanned in the graph's canonical order and a
// candidate replaces the current best only when strictly closer, so the first
// of several equally near cities wins.
//
// Complexity: O(n²) time, O(n) space.
package tsp

import (
	"math"

	"github.com/katalvlaran/tourlab/citygraph"
)

// NearestNeighbor builds a closed tour from start by greedy nearest-neighbour hops.
//
// Errors: ErrInvalidInput if g is nil, has fewer than 2 cities, or does not contain start.
func NearestNeighbor(g *citygraph.Graph, start string) (TourResult, error) {
	s, err := validateGraphStart(g, start)
	if err != nil {
		return TourResult{}, err
	}

	var n = g.Len()
	visited := make([]bool, n)
	tour := make([]int, 0, n+1)

	tour = append(tour, s)
	visited[s] = true

	var (
		cur   = s
		total int64
		next  int
		best  int64
		w     int64
		v     int
	)
	for len(tour) < n {
		next = -1
		best = math.MaxInt64
		for v = 0; v < n; v++ {
			if visited[v] {
				continue
			}
			w = g.At(cur, v)
			if w < best {
				best = w
				next = v
			}
		}

		visited[next] = true
		tour = append(tour, next)
		total += best
		cur = next
	}

	// Return to the start city.
	total += g.At(cur, s)
	tour = append(tour, s)

	return TourResult{Path: labels(g, tour), Weight: total}, nil
}
