// Package tsp_test provides runnable, deterministic examples.
package tsp_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/tourlab/citygraph"
	"github.com/katalvlaran/tourlab/tsp"
)

// exampleSquare is the square A(0,0) B(10,0) C(10,10) D(0,10).
func exampleSquare() *citygraph.Graph {
	g, _ := citygraph.Build(map[string]citygraph.Point{
		"A": {X: 0, Y: 0},
		"B": {X: 10, Y: 0},
		"C": {X: 10, Y: 10},
		"D": {X: 0, Y: 10},
	})

	return g
}

// ExampleNearestNeighbor prints the greedy tour from A. B and D tie at 10;
// B is first in canonical order.
func ExampleNearestNeighbor() {
	res, err := tsp.NearestNeighbor(exampleSquare(), "A")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("The shortest path is", res.PathString(), "with total weight", res.Weight)
	// Output:
	// The shortest path is A-B-C-D-A with total weight 40
}

// ExampleGenetic runs the GA with a fixed seed. Either orientation of the
// perimeter may win, so only the weight is printed.
func ExampleGenetic() {
	res, err := tsp.Genetic(context.Background(), exampleSquare(), "A", tsp.DefaultGAConfig(), tsp.NewRand(7))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("cities:", len(res.Path)-1, "weight:", res.Weight)
	// Output:
	// cities: 4 weight: 40
}
