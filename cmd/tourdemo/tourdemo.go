package main

// Places labelled points at random on a virtual canvas, solves a tour from
// the chosen start city and prints the summary line a canvas front-end shows
// under the drawing.

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/katalvlaran/tourlab/citygraph"
	"github.com/katalvlaran/tourlab/session"
	"github.com/katalvlaran/tourlab/tsp"
)

const (
	defaultLetters = "ABCDEFGHIJ"
	defaultCanvas  = 800
	defaultPadding = 50
)

func main() {
	var logger log.Logger
	logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = level.NewFilter(logger, levelOption(envString("LOG_LEVEL", "info")))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	if err := run(logger); err != nil {
		level.Error(logger).Log("err", err)
		os.Exit(1)
	}
}

func run(logger log.Logger) error {
	letters := envString("LETTERS", defaultLetters)
	if letters == "" {
		return fmt.Errorf("LETTERS must name at least %d cities", citygraph.MinCities)
	}
	var (
		start   = envString("START", string([]rune(letters)[:1]))
		canvas  = envFloat("CANVAS", defaultCanvas)
		padding = envFloat("PADDING", defaultPadding)
		seed    = envInt("SEED", time.Now().UnixNano())
		algo    = envString("ALGO", "both")
	)

	opts := tsp.DefaultOptions()
	opts.Seed = seed
	if algo != "both" {
		a, err := tsp.ParseAlgorithm(algo)
		if err != nil {
			return err
		}
		opts.Algo = a
	}
	opts.GA.PopulationSize = int(envInt("GA_POPULATION", tsp.DefaultPopulationSize))
	opts.GA.Generations = int(envInt("GA_GENERATIONS", tsp.DefaultGenerations))
	opts.GA.MutationRate = envFloat("GA_MUTATION", tsp.DefaultMutationRate)
	if err := opts.GA.Validate(); err != nil {
		return err
	}
	opts.GA.OnGeneration = func(s tsp.GenerationStats) {
		level.Debug(logger).Log(
			"generation", s.Generation,
			"best_weight", s.BestWeight,
			"mean_fitness", s.MeanFitness,
			"stddev_fitness", s.StdDevFitness,
		)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sess := session.New(session.WithLogger(logger), session.WithOptions(opts))
	points := randomPoints(letters, canvas, padding, rand.New(rand.NewSource(seed)))
	if err := sess.SetPoints(points); err != nil {
		return err
	}
	level.Info(logger).Log("cities", len(points), "seed", seed, "start", start, "algo", algo)

	if algo == "both" {
		cmp, err := sess.Compare(ctx, start)
		if err != nil {
			return err
		}
		printResult("nearest neighbour", cmp.NearestNeighbor)
		printResult("genetic", cmp.Genetic)

		return nil
	}

	res, err := sess.Solve(ctx, start)
	if err != nil {
		return err
	}
	printResult(opts.Algo.String(), res)

	return nil
}

// randomPoints places one point per letter uniformly inside the padded canvas.
func randomPoints(letters string, canvas, padding float64, rng *rand.Rand) map[string]citygraph.Point {
	pts := make(map[string]citygraph.Point, len(letters))
	span := canvas - 2*padding
	for _, r := range letters {
		pts[string(r)] = citygraph.Point{
			X: padding + rng.Float64()*span,
			Y: padding + rng.Float64()*span,
		}
	}

	return pts
}

func printResult(name string, res tsp.TourResult) {
	fmt.Printf("%s: The shortest path is %s with total weight %d\n", name, res.PathString(), res.Weight)
}

func levelOption(s string) level.Option {
	switch s {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}

func envString(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func envInt(key string, defaultValue int64) int64 {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}

func envFloat(key string, defaultValue float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
