// Package tsp provides approximate Travelling Salesman tour constructors over
// a citygraph.Graph.
//
// Two interchangeable strategies are available:
//
//   - NearestNeighbor: deterministic greedy construction.
//
//   - Complexity: O(n²) time, O(n) space.
//
//   - Ties are broken by the graph's canonical city order.
//
//   - Genetic: population-based metaheuristic (roulette selection,
//     order-preserving splice crossover, swap mutation).
//
//   - Complexity: O(G·P·(n + P)) time for G generations of P chromosomes,
//     O(P·n) space.
//
//   - Deterministic for a fixed *rand.Rand seed.
//
// Both return a TourResult: a closed path of n+1 labels that starts and ends
// at the chosen start city, plus its total integer weight. Solve dispatches
// between the two according to Options.Algo.
//
// Errors (sentinel):
//
//   - ErrInvalidInput        : nil graph, fewer than 2 cities, unknown start label.
//   - ErrConfig              : GA parameters out of range.
//   - ErrDegenerateInput     : a tour of total weight 0 makes fitness undefined
//     (matches ErrConfig under errors.Is).
//   - ErrUnsupportedAlgorithm: Options.Algo is not a known strategy.
//
// The package performs no logging and never panics on user input.
// Solvers are pure functions of their arguments: the graph is only read, and
// the only state carried between calls is whatever the caller's *rand.Rand holds.
package tsp
