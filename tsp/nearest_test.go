package tsp_test

import (
	"testing"

	"github.com/katalvlaran/tourlab/citygraph"
	"github.com/katalvlaran/tourlab/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNearestNeighbor_Square checks the tie at 10 between B and D is resolved
// by canonical order and the 14-weight diagonals are never taken.
func TestNearestNeighbor_Square(t *testing.T) {
	g := squareGraph(t)

	res, err := tsp.NearestNeighbor(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "A"}, res.Path)
	assert.Equal(t, int64(40), res.Weight)
	requireClosedTour(t, g, res, "A")
}

func TestNearestNeighbor_SquareFromC(t *testing.T) {
	g := squareGraph(t)

	// From C, B and D tie at 10; B comes first. From B, A (10) beats D (14).
	res, err := tsp.NearestNeighbor(g, "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A", "D", "C"}, res.Path)
	assert.Equal(t, int64(40), res.Weight)
}

func TestNearestNeighbor_Collinear(t *testing.T) {
	g, err := citygraph.Build(map[string]citygraph.Point{
		"A": {X: 0, Y: 0},
		"B": {X: 5, Y: 0},
		"C": {X: 15, Y: 0},
		"D": {X: 30, Y: 0},
	})
	require.NoError(t, err)

	res, err := tsp.NearestNeighbor(g, "A")
	require.NoError(t, err)
	assert.Equal(t, "A-B-C-D-A", res.PathString())
	assert.Equal(t, int64(60), res.Weight) // 5 + 10 + 15 + 30
}

func TestNearestNeighbor_TwoCities(t *testing.T) {
	g, err := citygraph.Build(map[string]citygraph.Point{
		"A": {X: 0, Y: 0},
		"B": {X: 3, Y: 4},
	})
	require.NoError(t, err)

	res, err := tsp.NearestNeighbor(g, "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "B"}, res.Path)
	assert.Equal(t, int64(10), res.Weight)
}

// TestNearestNeighbor_ShapeProperty runs every start on several random graphs.
func TestNearestNeighbor_ShapeProperty(t *testing.T) {
	for _, n := range []int{2, 3, 5, 10, 26} {
		g := randomGraph(t, n, seedDet+int64(n))
		for _, start := range g.Cities() {
			res, err := tsp.NearestNeighbor(g, start)
			require.NoError(t, err)
			requireClosedTour(t, g, res, start)
		}
	}
}

func TestNearestNeighbor_Deterministic(t *testing.T) {
	g := randomGraph(t, 12, seedDet)

	first, err := tsp.NearestNeighbor(g, "E")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := tsp.NearestNeighbor(g, "E")
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

// TestNearestNeighbor_CoincidentPoints allows zero-weight tours; only the GA
// rejects them because its fitness would be undefined.
func TestNearestNeighbor_CoincidentPoints(t *testing.T) {
	g, err := citygraph.Build(map[string]citygraph.Point{
		"A": {X: 7, Y: 7},
		"B": {X: 7, Y: 7},
	})
	require.NoError(t, err)

	res, err := tsp.NearestNeighbor(g, "A")
	require.NoError(t, err)
	assert.Zero(t, res.Weight)
}

func TestNearestNeighbor_InvalidInput(t *testing.T) {
	g := squareGraph(t)

	_, err := tsp.NearestNeighbor(g, "Z")
	assert.ErrorIs(t, err, tsp.ErrInvalidInput)

	_, err = tsp.NearestNeighbor(nil, "A")
	assert.ErrorIs(t, err, tsp.ErrInvalidInput)
}
