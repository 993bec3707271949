package tsp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors returned by the tsp solvers.
var (
	// ErrInvalidInput is returned for a nil graph, a graph with fewer than two
	// cities, or a start label that is not a member of the graph.
	ErrInvalidInput = errors.New("tsp: invalid input")

	// ErrConfig is returned when GAConfig fails validation.
	ErrConfig = errors.New("tsp: invalid configuration")

	// ErrDegenerateInput is returned when a chromosome's total weight is 0
	// (all cities on the tour coincide), which leaves fitness undefined.
	// It wraps ErrConfig.
	ErrDegenerateInput = fmt.Errorf("tsp: degenerate zero-weight tour: %w", ErrConfig)

	// ErrUnsupportedAlgorithm is returned by Solve for an unknown Algorithm.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")
)

// TourResult is the outcome of a solver call.
type TourResult struct {
	// Path is the closed city sequence. For n cities len(Path) == n+1 and
	// Path[0] == Path[n] == start; every other city appears exactly once.
	Path []string

	// Weight is the sum of the edge weights between consecutive Path entries.
	Weight int64
}

// PathString joins the path with dashes, e.g. "A-C-B-D-A".
func (r TourResult) PathString() string {
	return strings.Join(r.Path, "-")
}

// String renders the textual summary shown next to a drawn tour.
func (r TourResult) String() string {
	return "path " + r.PathString() + ", total weight " + strconv.FormatInt(r.Weight, 10)
}

// Algorithm selects the solver used by Solve.
type Algorithm int

const (
	// NearestNeighborAlgo is the greedy nearest-neighbour construction.
	NearestNeighborAlgo Algorithm = iota

	// GeneticAlgo is the genetic-algorithm optimizer.
	GeneticAlgo
)

// String returns the short name accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	switch a {
	case NearestNeighborAlgo:
		return "nn"
	case GeneticAlgo:
		return "ga"
	default:
		return "Algorithm(" + strconv.Itoa(int(a)) + ")"
	}
}

// ParseAlgorithm maps "nn"/"nearest" and "ga"/"genetic" (case-insensitive)
// to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nn", "nearest", "nearest-neighbor":
		return NearestNeighborAlgo, nil
	case "ga", "genetic":
		return GeneticAlgo, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
}

// GA defaults.
const (
	DefaultPopulationSize = 50
	DefaultMutationRate   = 0.01
	DefaultGenerations    = 100
)

// GAConfig configures Genetic.
//
//   - PopulationSize: chromosomes per generation; must be ≥ 2.
//   - MutationRate  : probability that each interior gene is swapped, per
//     generation; must lie in [0, 1].
//   - Generations   : fixed number of evolution rounds; must be ≥ 1.
//     There is no early stopping.
//   - OnGeneration  : optional observer called after each generation's sort.
type GAConfig struct {
	PopulationSize int
	MutationRate   float64
	Generations    int
	OnGeneration   func(GenerationStats)
}

// DefaultGAConfig returns 50 chromosomes, mutation rate 0.01, 100 generations.
func DefaultGAConfig() GAConfig {
	return GAConfig{
		PopulationSize: DefaultPopulationSize,
		MutationRate:   DefaultMutationRate,
		Generations:    DefaultGenerations,
	}
}

// Validate reports ErrConfig for out-of-range parameters.
func (c GAConfig) Validate() error {
	if c.PopulationSize < 2 {
		return fmt.Errorf("%w: population size must be >= 2 (got %d)", ErrConfig, c.PopulationSize)
	}
	if c.Generations < 1 {
		return fmt.Errorf("%w: generations must be >= 1 (got %d)", ErrConfig, c.Generations)
	}
	// Written as a negated range test so NaN is rejected too.
	if !(c.MutationRate >= 0 && c.MutationRate <= 1) {
		return fmt.Errorf("%w: mutation rate must be in [0,1] (got %v)", ErrConfig, c.MutationRate)
	}

	return nil
}

// GenerationStats summarizes one GA generation after it has been sorted.
type GenerationStats struct {
	Generation    int     // 1-based generation number
	BestWeight    int64   // total weight of the fittest chromosome
	BestFitness   float64 // 1 / BestWeight
	MeanFitness   float64 // population mean fitness
	StdDevFitness float64 // population fitness standard deviation
}

// Options configures the Solve dispatcher.
type Options struct {
	// Algo selects the solver.
	Algo Algorithm

	// GA configures the genetic solver; ignored for NearestNeighborAlgo.
	GA GAConfig

	// Seed feeds the GA random source. Seed==0 selects a fixed default seed,
	// so Solve is reproducible unless the caller supplies varying seeds.
	Seed int64
}

// DefaultOptions returns nearest-neighbour with a default GA configuration.
func DefaultOptions() Options {
	return Options{
		Algo: NearestNeighborAlgo,
		GA:   DefaultGAConfig(),
		Seed: 0,
	}
}
