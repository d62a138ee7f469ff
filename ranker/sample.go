package ranker

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"github.com/Ahmed-Sermani/go-pagerank/graph"
	"golang.org/x/xerrors"
)

// ctxCheckInterval is the number of samples between two context checks.
const ctxCheckInterval = 256

// SampleRank estimates the ranks of g by performing a random walk of n
// steps, starting from a page picked uniformly at random, and counting how
// often each page is visited. Each step picks the next page according to
// the Transition distribution of the current page.
//
// rnd drives every random choice; passing a seeded source makes the result
// reproducible. If rnd is nil a time-seeded source is used.
func SampleRank(ctx context.Context, g graph.LinkGraph, damping float64, n int, rnd *rand.Rand) (RankMap, error) {
	if err := checkDamping(damping); err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, xerrors.Errorf("sample count %d must be positive: %w", n, ErrInvalidParameter)
	}
	if err := checkGraph(g); err != nil {
		return nil, err
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	var (
		pages = g.Pages()
		tally = make([]int, len(pages))
		// cumulative transition weights of each visited page, aligned
		// with pages.
		cumWeights = make([][]float64, len(pages))
		cur        = rnd.Intn(len(pages))
	)

	for i := 0; i < n; i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, xerrors.Errorf("sampling interrupted after %d samples: %w", i, err)
			}
		}

		tally[cur]++

		if cumWeights[cur] == nil {
			cumWeights[cur] = cumulative(pages, transition(g, pages[cur], damping))
		}
		cur = pick(cumWeights[cur], rnd.Float64())
	}

	ranks := make(RankMap, len(pages))
	for i, p := range pages {
		ranks[p] = float64(tally[i]) / float64(n)
	}
	return ranks, nil
}

func cumulative(pages []string, dist Distribution) []float64 {
	var (
		sum float64
		cum = make([]float64, len(pages))
	)
	for i, p := range pages {
		sum += dist[p]
		cum[i] = sum
	}
	return cum
}

// pick maps u in [0, 1) to the index whose weight interval contains
// u * total weight. Pages with zero weight are never picked.
func pick(cum []float64, u float64) int {
	x := u * cum[len(cum)-1]
	idx := sort.Search(len(cum), func(i int) bool { return cum[i] > x })
	if idx < len(cum) {
		return idx
	}

	// x rounded up to the total; fall back to the last page that carries
	// any weight.
	idx = len(cum) - 1
	for idx > 0 && cum[idx] == cum[idx-1] {
		idx--
	}
	return idx
}
