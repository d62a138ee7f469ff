package ranker

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/Ahmed-Sermani/go-pagerank/graph"
	pagerank "github.com/Ahmed-Sermani/go-pagerank/ranker"
	"github.com/Ahmed-Sermani/go-pagerank/service"
	"github.com/hashicorp/go-multierror"
	"github.com/juju/clock"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

//go:generate mockgen -package mocks -destination mocks/mocks.go github.com/Ahmed-Sermani/go-pagerank/service/ranker ResultSink

// Names of the estimators, used as service names and result keys.
const (
	SamplingEstimator  = "sampling"
	IterativeEstimator = "iteration"
)

var _ service.Service = (*Service)(nil)

// Result is the outcome of a single estimator run.
type Result struct {
	Estimator string
	Ranks     pagerank.RankMap

	// Samples is the length of the random walk. It is zero for the
	// iterative estimator.
	Samples int

	Took time.Duration
}

// ResultSink is implemented by objects that receive estimator results.
type ResultSink interface {
	Publish(Result) error
}

// Config encapsulates the settings for configuring an estimator service.
type Config struct {
	// The link graph to rank.
	Graph graph.LinkGraph

	// The ranker providing the estimation parameters.
	Ranker *pagerank.Ranker

	// Sink receives the computed ranks.
	Sink ResultSink

	// A clock instance for measuring run times. If not specified, the
	// wall clock is used.
	Clock clock.Clock

	// The logger to use. If not specified, log output is discarded.
	Logger *logrus.Entry
}

func (cfg *Config) validate() error {
	var err error
	if len(cfg.Graph) == 0 {
		err = multierror.Append(err, xerrors.Errorf("link graph has not been provided or is empty"))
	}
	if cfg.Ranker == nil {
		err = multierror.Append(err, xerrors.Errorf("ranker has not been provided"))
	}
	if cfg.Sink == nil {
		err = multierror.Append(err, xerrors.Errorf("result sink has not been provided"))
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.WallClock
	}
	if cfg.Logger == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		cfg.Logger = logrus.NewEntry(logger)
	}
	return err
}

type estimateFunc func(context.Context, graph.LinkGraph) (pagerank.RankMap, error)

// Service runs one PageRank estimator over a link graph and publishes the
// result.
type Service struct {
	name     string
	cfg      Config
	samples  int
	estimate estimateFunc
}

// NewSamplingService returns a service that estimates ranks with a random
// walk.
func NewSamplingService(cfg Config) (*Service, error) {
	if err := cfg.validate(); err != nil {
		return nil, xerrors.Errorf("sampling service: config validation failed: %w", err)
	}
	return &Service{
		name:     SamplingEstimator,
		cfg:      cfg,
		samples:  cfg.Ranker.Config().Samples,
		estimate: cfg.Ranker.Sample,
	}, nil
}

// NewIterativeService returns a service that computes ranks by iterating
// the PageRank recurrence until convergence.
func NewIterativeService(cfg Config) (*Service, error) {
	if err := cfg.validate(); err != nil {
		return nil, xerrors.Errorf("iterative service: config validation failed: %w", err)
	}
	return &Service{
		name:     IterativeEstimator,
		cfg:      cfg,
		estimate: cfg.Ranker.Iterate,
	}, nil
}

// Name implements service.Service.
func (s *Service) Name() string { return s.name }

// Run implements service.Service.
func (s *Service) Run(ctx context.Context) error {
	logger := s.cfg.Logger.WithField("estimator", s.name)
	logger.WithField("pages", len(s.cfg.Graph)).Debug("starting estimation")

	start := s.cfg.Clock.Now()
	ranks, err := s.estimate(ctx, s.cfg.Graph)
	if err != nil {
		logger.WithError(err).Error("estimation failed")
		return err
	}
	took := s.cfg.Clock.Now().Sub(start)

	logger.WithField("took", took).Info("estimation completed")
	return s.cfg.Sink.Publish(Result{
		Estimator: s.name,
		Ranks:     ranks,
		Samples:   s.samples,
		Took:      took,
	})
}

// Collector is a ResultSink that keeps the latest result of each estimator.
// It is safe for concurrent use.
type Collector struct {
	mu      sync.Mutex
	results map[string]Result
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{results: make(map[string]Result)}
}

// Publish implements ResultSink.
func (c *Collector) Publish(r Result) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results[r.Estimator] = r
	return nil
}

// Result returns the result published by the named estimator.
func (c *Collector) Result(estimator string) (Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.results[estimator]
	return r, ok
}
