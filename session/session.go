// Package session holds the state a pointer-driven front-end needs between
// events: the graph built from the current point positions, the solver
// options, and the most recent tour to render.
//
// A Session replaces ambient globals; the caller owns it and passes it to
// whatever component needs it. A Session is not safe for concurrent use, but
// the *citygraph.Graph it hands out is immutable and may be shared freely.
package session

import (
	"context"
	"errors"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tourlab/citygraph"
	"github.com/katalvlaran/tourlab/tsp"
)

// ErrNoGraph is returned when a solve is requested before any points were set.
var ErrNoGraph = errors.New("session: no graph, set points first")

// Session owns a CityGraph and the last TourResult.
type Session struct {
	logger log.Logger
	opts   tsp.Options
	graph  *citygraph.Graph
	last   *tsp.TourResult
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithOptions sets the solver options used by Solve.
func WithOptions(opts tsp.Options) Option {
	return func(s *Session) {
		s.opts = opts
	}
}

// New returns an empty Session using tsp.DefaultOptions unless overridden.
func New(opts ...Option) *Session {
	s := &Session{
		logger: log.NewNopLogger(),
		opts:   tsp.DefaultOptions(),
	}
	for _, o := range opts {
		o(s)
	}
	s.logger = log.With(s.logger, "component", "session")

	return s
}

// Options returns the solver options in effect.
func (s *Session) Options() tsp.Options {
	return s.opts
}

// Graph returns the current graph, or nil before the first SetPoints.
func (s *Session) Graph() *citygraph.Graph {
	return s.graph
}

// SetPoints rebuilds the graph from the current point positions and drops the
// last result, which no longer matches the drawing. On error the previous
// graph and result are kept.
func (s *Session) SetPoints(points map[string]citygraph.Point) error {
	g, err := citygraph.Build(points)
	if err != nil {
		level.Error(s.logger).Log("during", "SetPoints", "cities", len(points), "err", err)

		return err
	}
	s.graph = g
	s.last = nil
	level.Debug(s.logger).Log("msg", "graph rebuilt", "cities", g.Len())

	return nil
}

// Solve runs the configured solver from start and records the result.
func (s *Session) Solve(ctx context.Context, start string) (tsp.TourResult, error) {
	if s.graph == nil {
		return tsp.TourResult{}, ErrNoGraph
	}

	res, err := tsp.Solve(ctx, s.graph, start, s.opts)
	if err != nil {
		level.Error(s.logger).Log("during", "Solve", "algo", s.opts.Algo, "start", start, "err", err)

		return tsp.TourResult{}, err
	}
	s.last = &res
	level.Info(s.logger).Log("algo", s.opts.Algo, "start", start, "path", res.PathString(), "weight", res.Weight)

	return res, nil
}

// Comparison holds one result per solver for the same graph and start.
type Comparison struct {
	NearestNeighbor tsp.TourResult
	Genetic         tsp.TourResult
}

// Best returns the lighter tour; nearest-neighbour wins ties.
func (c Comparison) Best() tsp.TourResult {
	if c.Genetic.Weight < c.NearestNeighbor.Weight {
		return c.Genetic
	}

	return c.NearestNeighbor
}

// Compare runs both solvers concurrently on the current graph. The GA uses
// the session's GA configuration and seed. The better tour becomes the last
// result.
func (s *Session) Compare(ctx context.Context, start string) (Comparison, error) {
	if s.graph == nil {
		return Comparison{}, ErrNoGraph
	}

	var (
		g   = s.graph
		cmp Comparison
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		nnOpts := s.opts
		nnOpts.Algo = tsp.NearestNeighborAlgo
		res, err := tsp.Solve(egCtx, g, start, nnOpts)
		cmp.NearestNeighbor = res

		return err
	})
	eg.Go(func() error {
		gaOpts := s.opts
		gaOpts.Algo = tsp.GeneticAlgo
		res, err := tsp.Solve(egCtx, g, start, gaOpts)
		cmp.Genetic = res

		return err
	})
	if err := eg.Wait(); err != nil {
		level.Error(s.logger).Log("during", "Compare", "start", start, "err", err)

		return Comparison{}, err
	}

	best := cmp.Best()
	s.last = &best
	level.Info(s.logger).Log(
		"start", start,
		"nn_weight", cmp.NearestNeighbor.Weight,
		"ga_weight", cmp.Genetic.Weight,
		"best", best.PathString(),
	)

	return cmp, nil
}

// Last returns the most recent result, if any.
func (s *Session) Last() (tsp.TourResult, bool) {
	if s.last == nil {
		return tsp.TourResult{}, false
	}

	return *s.last, true
}

// Clear forgets the last result.
func (s *Session) Clear() {
	s.last = nil
}
