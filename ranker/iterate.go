package ranker

import (
	"context"

	"github.com/Ahmed-Sermani/go-pagerank/graph"
	"golang.org/x/xerrors"
)

// IterateRank computes the ranks of g by iterating the PageRank recurrence
// until no rank changes by more than DefaultMinDeltaForConvergence between
// two iterations.
func IterateRank(ctx context.Context, g graph.LinkGraph, damping float64) (RankMap, error) {
	if err := checkDamping(damping); err != nil {
		return nil, err
	}
	if err := checkGraph(g); err != nil {
		return nil, err
	}
	return iterate(ctx, g, damping, DefaultMinDeltaForConvergence, DefaultMaxIterations)
}

func iterate(ctx context.Context, g graph.LinkGraph, damping, minDelta float64, maxIterations int) (RankMap, error) {
	var (
		pages    = g.Pages()
		n        = float64(len(pages))
		inlinks  = make(map[string][]string, len(pages))
		dangling []string
		ranks    = make(RankMap, len(pages))
	)

	// Reverse the graph once. Pages are visited in sorted order so every
	// sum below is evaluated in the same order on every run.
	for _, src := range pages {
		if len(g[src]) == 0 {
			dangling = append(dangling, src)
			continue
		}
		for _, dst := range g.Outlinks(src) {
			inlinks[dst] = append(inlinks[dst], src)
		}
	}

	for _, p := range pages {
		ranks[p] = 1.0 / n
	}

	for iter := 1; iter <= maxIterations; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, xerrors.Errorf("iteration %d interrupted: %w", iter, err)
		}

		// A dead-end is treated as linking to every page of the graph;
		// its rank is spread evenly as a residual shared by all pages.
		var residual float64
		for _, q := range dangling {
			residual += ranks[q] / n
		}

		// next is computed exclusively from the previous snapshot.
		next := make(RankMap, len(pages))
		for _, p := range pages {
			var sum float64
			for _, q := range inlinks[p] {
				sum += ranks[q] / float64(len(g[q]))
			}
			next[p] = (1.0-damping)/n + damping*(sum+residual)
		}
		normalize(pages, next)

		delta := maxAbsDelta(pages, ranks, next)
		ranks = next
		if delta < minDelta {
			return ranks, nil
		}
	}

	return nil, xerrors.Errorf("gave up after %d iterations: %w", maxIterations, ErrNonConvergence)
}
