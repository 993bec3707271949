package citygraph

import "errors"

// Sentinel errors returned by citygraph.
var (
	// ErrInvalidInput indicates that the points cannot form a graph: fewer than
	// two cities, an empty or duplicate label, or a NaN/Inf coordinate.
	ErrInvalidInput = errors.New("citygraph: invalid input")

	// ErrUnknownCity indicates a lookup of a label that is not in the graph.
	ErrUnknownCity = errors.New("citygraph: unknown city")
)

// MinCities is the smallest graph that admits a closed tour.
const MinCities = 2

// Point is a 2D coordinate on the canvas.
type Point struct {
	X, Y float64
}

// City is a labelled point. It is the slice form of Build's input and, unlike
// the map form, can express duplicate labels (which BuildCities rejects).
type City struct {
	ID string
	Point
}

// Edge is one undirected edge of the complete graph.
// A precedes B in canonical order.
type Edge struct {
	A, B   string
	Weight int64
}
