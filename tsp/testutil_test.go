// Package tsp_test provides lightweight helpers shared across *_test.go files.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/tourlab/citygraph"
	"github.com/katalvlaran/tourlab/tsp"
	"github.com/stretchr/testify/require"
)

const (
	// seedDet is the fixed seed for RNG-driven tests.
	seedDet = int64(42)

	// letters supplies up to 26 city labels.
	letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// squareGraph is A(0,0) B(10,0) C(10,10) D(0,10): sides 10, diagonals 14.
func squareGraph(t testing.TB) *citygraph.Graph {
	t.Helper()
	g, err := citygraph.Build(map[string]citygraph.Point{
		"A": {X: 0, Y: 0},
		"B": {X: 10, Y: 0},
		"C": {X: 10, Y: 10},
		"D": {X: 0, Y: 10},
	})
	require.NoError(t, err)

	return g
}

// circleGraph places n labelled points on a gently rippled circle of radius 300.
func circleGraph(t testing.TB, n int) *citygraph.Graph {
	t.Helper()
	pts := make(map[string]citygraph.Point, n)

	var (
		i     int
		th, r float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		r = 300 + 7*float64(i%3) // ripple avoids exact ties
		pts[letters[i:i+1]] = citygraph.Point{X: 400 + r*math.Cos(th), Y: 400 + r*math.Sin(th)}
	}
	g, err := citygraph.Build(pts)
	require.NoError(t, err)

	return g
}

// randomGraph scatters n labelled points over an 800×800 canvas with 50px padding.
func randomGraph(t testing.TB, n int, seed int64) *citygraph.Graph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	pts := make(map[string]citygraph.Point, n)

	var i int
	for i = 0; i < n; i++ {
		pts[letters[i:i+1]] = citygraph.Point{X: 50 + rng.Float64()*700, Y: 50 + rng.Float64()*700}
	}
	g, err := citygraph.Build(pts)
	require.NoError(t, err)

	return g
}

// requireClosedTour asserts the n+1 shape invariant and that Weight equals the
// literal sum of consecutive edges.
func requireClosedTour(t *testing.T, g *citygraph.Graph, res tsp.TourResult, start string) {
	t.Helper()
	require.Len(t, res.Path, g.Len()+1)
	require.Equal(t, start, res.Path[0])
	require.Equal(t, start, res.Path[len(res.Path)-1])
	require.NoError(t, tsp.ValidateTour(g, res.Path, start))

	w, err := tsp.TourWeight(g, res.Path)
	require.NoError(t, err)
	require.Equal(t, w, res.Weight, "weight must equal the sum of path edges")
}
