/*
   Implements Google's famous PageRank algorithm
   https://en.wikipedia.org/wiki/PageRank over a closed link graph.
*/
package ranker

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/Ahmed-Sermani/go-pagerank/graph"
	"golang.org/x/xerrors"
)

/*
   PageRank works by counting the number and quality of links to
   a page to determine a rough estimate of how important the page is.

   To calculate the score for each page, PageRank uses the model of the
   random surfer. The surfer lands on a random page of the corpus and from
   then on repeatedly either:

       follows one of the outgoing links of the current page, with a
       probability equal to the damping factor, or

       teleports to a page picked uniformly at random from the corpus.

   A page without outgoing links leaves the surfer nowhere to go but to
   teleport, so it behaves as if it linked to every page of the corpus.

   The score of a page is the probability that the surfer is found on it
   after an endless walk. Two estimators are provided:

       Sample walks the graph and counts visits.
       Iterate solves the PageRank recurrence until the ranks settle.

   Both produce scores in the [0, 1] range that sum up to 1.
*/

// Ranker estimates PageRank scores for link graphs using the parameters
// of a validated Config. A Ranker owns the random source used for sampling
// and can be shared between goroutines.
type Ranker struct {
	cfg     Config
	damping float64

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRanker returns a new Ranker instance using the provided config options.
func NewRanker(cfg Config) (*Ranker, error) {
	if err := cfg.validate(); err != nil {
		return nil, xerrors.Errorf("PageRank ranker config validation failed: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Ranker{
		cfg:     cfg,
		damping: *cfg.DampingFactor,
		rnd:     rand.New(rand.NewSource(seed)),
	}, nil
}

// Config returns the configuration of the ranker with defaults applied.
func (r *Ranker) Config() Config {
	cfg := r.cfg
	cfg.DampingFactor = Damping(r.damping)
	return cfg
}

// Sample estimates the ranks of g with a random walk of cfg.Samples steps.
func (r *Ranker) Sample(ctx context.Context, g graph.LinkGraph) (RankMap, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return SampleRank(ctx, g, r.damping, r.cfg.Samples, r.rnd)
}

// Iterate computes the ranks of g by repeatedly applying the PageRank
// recurrence until convergence.
func (r *Ranker) Iterate(ctx context.Context, g graph.LinkGraph) (RankMap, error) {
	if err := checkDamping(r.damping); err != nil {
		return nil, err
	}
	if err := checkGraph(g); err != nil {
		return nil, err
	}
	return iterate(ctx, g, r.damping, r.cfg.MinDeltaForConvergence, r.cfg.MaxIterations)
}
