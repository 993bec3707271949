package citygraph

import (
	"fmt"
	"math"
	"sort"
)

// Graph is an immutable complete graph over labelled points.
//
// ids holds the labels in canonical (ascending) order, index inverts it,
// and dist is a flat row-major n×n matrix: dist[i*n+j] == weight(ids[i], ids[j]).
type Graph struct {
	ids    []string
	index  map[string]int
	points []Point
	dist   []int64
}

// Build creates a Graph from a mapping of label → coordinate.
//
// Stage 1 (Validate): at least MinCities entries, non-empty labels, finite coordinates.
// Stage 2 (Prepare): sort labels into canonical order.
// Stage 3 (Execute): fill the upper triangle with truncated Euclidean distances
// and mirror it, so symmetry and the zero diagonal hold by construction.
//
// Complexity: O(n²) time and memory.
func Build(points map[string]Point) (*Graph, error) {
	cities := make([]City, 0, len(points))

	var (
		id string
		p  Point
	)
	for id, p = range points {
		cities = append(cities, City{ID: id, Point: p})
	}

	return BuildCities(cities)
}

// BuildCities creates a Graph from a slice of labelled points.
// Duplicate labels are rejected with ErrInvalidInput.
//
// Complexity: O(n log n + n²).
func BuildCities(cities []City) (*Graph, error) {
	var n = len(cities)
	if n < MinCities {
		return nil, fmt.Errorf("%w: need at least %d cities, got %d", ErrInvalidInput, MinCities, n)
	}

	sorted := make([]City, n)
	copy(sorted, cities)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	g := &Graph{
		ids:    make([]string, n),
		index:  make(map[string]int, n),
		points: make([]Point, n),
		dist:   make([]int64, n*n),
	}

	var (
		i, j int
		c    City
	)
	for i, c = range sorted {
		if c.ID == "" {
			return nil, fmt.Errorf("%w: empty city label", ErrInvalidInput)
		}
		if !finite(c.X) || !finite(c.Y) {
			return nil, fmt.Errorf("%w: city %q has non-finite coordinate (%v, %v)", ErrInvalidInput, c.ID, c.X, c.Y)
		}
		// Sorted input puts duplicates next to each other.
		if i > 0 && sorted[i-1].ID == c.ID {
			return nil, fmt.Errorf("%w: duplicate city label %q", ErrInvalidInput, c.ID)
		}
		g.ids[i] = c.ID
		g.index[c.ID] = i
		g.points[i] = c.Point
	}

	var w int64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w = weight(g.points[i], g.points[j])
			g.dist[i*n+j] = w
			g.dist[j*n+i] = w
		}
	}

	return g, nil
}

// weight is the Euclidean distance between a and b truncated toward zero.
func weight(a, b Point) int64 {
	return int64(math.Hypot(a.X-b.X, a.Y-b.Y))
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Len returns the number of cities.
func (g *Graph) Len() int {
	return len(g.ids)
}

// Cities returns all labels in canonical order. The slice is a fresh copy.
func (g *Graph) Cities() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)

	return out
}

// Has reports whether id is a member of the graph.
func (g *Graph) Has(id string) bool {
	_, ok := g.index[id]

	return ok
}

// Index returns the canonical position of id.
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]

	return i, ok
}

// ID returns the label at canonical position i. It panics if i is out of range.
func (g *Graph) ID(i int) string {
	return g.ids[i]
}

// At returns the weight between the cities at canonical positions i and j
// without bounds or membership checks. Solvers use it in their inner loops
// after resolving labels once.
func (g *Graph) At(i, j int) int64 {
	return g.dist[i*len(g.ids)+j]
}

// Distance returns the edge weight between a and b.
// Distance(a, a) is 0 for every member a.
//
// Errors: ErrUnknownCity if either label is not a member.
func (g *Graph) Distance(a, b string) (int64, error) {
	i, ok := g.index[a]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCity, a)
	}
	j, ok := g.index[b]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCity, b)
	}

	return g.At(i, j), nil
}

// Point returns the coordinate the city was built from.
func (g *Graph) Point(id string) (Point, error) {
	i, ok := g.index[id]
	if !ok {
		return Point{}, fmt.Errorf("%w: %q", ErrUnknownCity, id)
	}

	return g.points[i], nil
}

// Edges lists every unordered pair once, in canonical order of (A, B).
// A front-end draws these lines and prints Weight at their midpoints.
//
// Complexity: O(n²).
func (g *Graph) Edges() []Edge {
	var n = len(g.ids)
	out := make([]Edge, 0, n*(n-1)/2)

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			out = append(out, Edge{A: g.ids[i], B: g.ids[j], Weight: g.dist[i*n+j]})
		}
	}

	return out
}
