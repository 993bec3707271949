// Package citygraph provides the immutable complete weighted graph that the
// tour solvers in package tsp operate on.
//
// A Graph is built once from labelled 2D points. Every unordered pair of
// distinct cities is joined by an edge whose weight is the Euclidean distance
// between the two points truncated to an integer, which is the value a canvas
// front-end prints at the midpoint of the drawn edge.
//
// Invariants (enforced by Build/BuildCities):
//
//   - complete:  Distance(a, b) is defined for every pair of member labels;
//   - symmetric: Distance(a, b) == Distance(b, a);
//   - zero self-distance: Distance(a, a) == 0.
//
// Canonical order:
//
//	Cities() returns labels in ascending order. Solvers enumerate neighbours
//	in this order, so ties are resolved identically on every run.
//
// Errors (sentinel):
//
//   - ErrInvalidInput: fewer than 2 cities, empty/duplicate label, non-finite coordinate.
//   - ErrUnknownCity : a queried label is not a member of the graph.
//
// Thread safety:
//
//	A Graph is never mutated after construction and may be read by any number
//	of goroutines without synchronization.
//
// Complexity:
//
//   - Build:    O(n²) time and memory for the distance matrix.
//   - Distance: O(1) (two map lookups + one slice read).
package citygraph
