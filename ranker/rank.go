package ranker

import (
	"math"
	"sort"

	"github.com/Ahmed-Sermani/go-pagerank/graph"
	"golang.org/x/xerrors"
)

// Distribution is a probability distribution over the pages of a corpus.
type Distribution map[string]float64

// RankMap holds the estimated PageRank of every page of a corpus.
type RankMap = Distribution

// Sum returns the sum of all probabilities, adding pages in ascending order.
func (d Distribution) Sum() float64 {
	var sum float64
	for _, p := range d.pages() {
		sum += d[p]
	}
	return sum
}

// Visit invokes visitFn for each page in ascending page order.
func (d Distribution) Visit(visitFn func(page string, p float64) error) error {
	for _, page := range d.pages() {
		if err := visitFn(page, d[page]); err != nil {
			return err
		}
	}
	return nil
}

func (d Distribution) pages() []string {
	list := make([]string, 0, len(d))
	for p := range d {
		list = append(list, p)
	}
	sort.Strings(list)
	return list
}

// normalize scales ranks in place so that they sum up to 1.
func normalize(pages []string, ranks Distribution) {
	var sum float64
	for _, p := range pages {
		sum += ranks[p]
	}
	if sum == 0 {
		return
	}
	for _, p := range pages {
		ranks[p] /= sum
	}
}

// maxAbsDelta returns the largest absolute difference between two rank
// vectors over the given pages.
func maxAbsDelta(pages []string, prev, next Distribution) float64 {
	var delta float64
	for _, p := range pages {
		delta = math.Max(delta, math.Abs(next[p]-prev[p]))
	}
	return delta
}

func checkDamping(damping float64) error {
	if damping < 0 || damping > 1 || math.IsNaN(damping) {
		return xerrors.Errorf("damping factor %v outside [0, 1]: %w", damping, ErrInvalidParameter)
	}
	return nil
}

// checkGraph rejects empty graphs and graphs violating the link graph
// invariants before any ranking work starts.
func checkGraph(g graph.LinkGraph) error {
	if len(g) == 0 {
		return xerrors.Errorf("empty link graph: %w", ErrInvalidParameter)
	}
	return g.Validate()
}
