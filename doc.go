// Package tourlab approximates Travelling Salesman tours over small complete
// graphs of labelled points, such as the letters a user drags around a canvas.
//
// Layout:
//
//	citygraph/   : immutable complete graph: labels, coordinates, integer distances
//	tsp/         : TourResult, NearestNeighbor, Genetic, and the Solve dispatcher
//	session/     : explicit session owning the current graph and the last tour
//	cmd/tourdemo/: random canvas placement + both solvers, printed as text
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    D───C
//
// Sides weigh 10 and diagonals 14; from A the nearest-neighbour tour is
// A-B-C-D-A with total weight 40.
//
// Rendering, hit-testing and persistence are left to the caller.
package tourlab
