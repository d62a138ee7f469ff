package ranker

import (
	"github.com/Ahmed-Sermani/go-pagerank/graph"
	"golang.org/x/xerrors"
)

// Transition returns the probability distribution over which page a random
// surfer visits next when currently on page.
//
// With probability damping the surfer follows one of the outlinks of page
// picked uniformly at random; otherwise it jumps to any page of the graph.
// A page without outlinks is treated as linking to every page, so the jump
// is uniform regardless of damping.
func Transition(g graph.LinkGraph, page string, damping float64) (Distribution, error) {
	if err := checkDamping(damping); err != nil {
		return nil, err
	}
	if len(g) == 0 {
		return nil, xerrors.Errorf("empty link graph: %w", ErrInvalidParameter)
	}
	if _, ok := g[page]; !ok {
		return nil, xerrors.Errorf("transition from %q: %w", page, ErrUnknownPage)
	}
	return transition(g, page, damping), nil
}

func transition(g graph.LinkGraph, page string, damping float64) Distribution {
	var (
		n        = float64(len(g))
		outlinks = g[page]
		dist     = make(Distribution, len(g))
	)

	if len(outlinks) == 0 {
		for p := range g {
			dist[p] = 1.0 / n
		}
		return dist
	}

	for p := range g {
		dist[p] = (1.0 - damping) / n
	}
	share := damping / float64(len(outlinks))
	for p := range outlinks {
		dist[p] += share
	}
	return dist
}
