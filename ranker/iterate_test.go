package ranker_test

import (
	"context"

	"github.com/Ahmed-Sermani/go-pagerank/graph"
	"github.com/Ahmed-Sermani/go-pagerank/ranker"
	"golang.org/x/xerrors"
	gc "gopkg.in/check.v1"
)

var _ = gc.Suite(new(IterateTestSuite))

type IterateTestSuite struct{}

func (s *IterateTestSuite) TestTwoPages(c *gc.C) {
	ranks, err := ranker.IterateRank(context.TODO(), twoPages, 0.85)
	c.Assert(err, gc.IsNil)
	assertRanks(c, ranks, ranker.RankMap{"A": 0.5, "B": 0.5}, 1e-9)
}

func (s *IterateTestSuite) TestCycle(c *gc.C) {
	ranks, err := ranker.IterateRank(context.TODO(), cycle, 0.85)
	c.Assert(err, gc.IsNil)
	assertRanks(c, ranks, ranker.RankMap{"A": 1.0 / 3, "B": 1.0 / 3, "C": 1.0 / 3}, 1e-9)
}

func (s *IterateTestSuite) TestSinglePage(c *gc.C) {
	ranks, err := ranker.IterateRank(context.TODO(), graph.LinkGraph{"only": graph.NewPageSet()}, 0.85)
	c.Assert(err, gc.IsNil)
	c.Assert(ranks, gc.DeepEquals, ranker.RankMap{"only": 1.0})
}

func (s *IterateTestSuite) TestDanglingPageSpreadsItsRank(c *gc.C) {
	ranks, err := ranker.IterateRank(context.TODO(), star, 0.85)
	c.Assert(err, gc.IsNil)
	assertSumsToOne(c, ranks, 1e-9)

	// Solving a = 0.15/4 + 0.85*d/4 and a*3 + d = 1 by hand. Dropping the
	// dead-end contribution would yield a ~= 0.095 instead.
	assertRanks(c, ranks, ranker.RankMap{
		"A": 0.152672,
		"B": 0.152672,
		"C": 0.152672,
		"D": 0.541985,
	}, 0.002)
}

func (s *IterateTestSuite) TestFixedPointMatchesTransitionModel(c *gc.C) {
	r, err := ranker.NewRanker(ranker.Config{MinDeltaForConvergence: 1e-12, Seed: 1})
	c.Assert(err, gc.IsNil)

	for _, g := range []graph.LinkGraph{withDeadEnd, star, corpus0} {
		ranks, err := r.Iterate(context.TODO(), g)
		c.Assert(err, gc.IsNil)
		assertSumsToOne(c, ranks, 1e-9)

		// One step of the random surfer must leave the ranks unchanged.
		stepped := make(ranker.RankMap, len(g))
		for _, q := range g.Pages() {
			dist, err := ranker.Transition(g, q, 0.85)
			c.Assert(err, gc.IsNil)
			for p, prob := range dist {
				stepped[p] += ranks[q] * prob
			}
		}
		assertRanks(c, ranks, stepped, 1e-9)
	}
}

func (s *IterateTestSuite) TestIdempotent(c *gc.C) {
	first, err := ranker.IterateRank(context.TODO(), withDeadEnd, 0.85)
	c.Assert(err, gc.IsNil)
	second, err := ranker.IterateRank(context.TODO(), withDeadEnd, 0.85)
	c.Assert(err, gc.IsNil)
	c.Assert(first, gc.DeepEquals, second)
}

func (s *IterateTestSuite) TestDoesNotMutateGraph(c *gc.C) {
	g := graph.LinkGraph{
		"A": graph.NewPageSet("B"),
		"B": graph.NewPageSet(),
	}
	_, err := ranker.IterateRank(context.TODO(), g, 0.85)
	c.Assert(err, gc.IsNil)
	c.Assert(g, gc.DeepEquals, graph.LinkGraph{
		"A": graph.NewPageSet("B"),
		"B": graph.NewPageSet(),
	})
}

func (s *IterateTestSuite) TestInvalidInput(c *gc.C) {
	_, err := ranker.IterateRank(context.TODO(), cycle, 1.5)
	c.Assert(xerrors.Is(err, ranker.ErrInvalidParameter), gc.Equals, true)

	_, err = ranker.IterateRank(context.TODO(), graph.LinkGraph{}, 0.85)
	c.Assert(xerrors.Is(err, ranker.ErrInvalidParameter), gc.Equals, true)

	_, err = ranker.IterateRank(context.TODO(), graph.LinkGraph{
		"A": graph.NewPageSet("A", "B"),
		"B": graph.NewPageSet(),
	}, 0.85)
	c.Assert(xerrors.Is(err, graph.ErrInvalidGraph), gc.Equals, true)

	_, err = ranker.IterateRank(context.TODO(), graph.LinkGraph{"A": graph.NewPageSet("X")}, 0.85)
	c.Assert(xerrors.Is(err, graph.ErrInvalidGraph), gc.Equals, true)
}

func (s *IterateTestSuite) TestNonConvergence(c *gc.C) {
	r, err := ranker.NewRanker(ranker.Config{
		MinDeltaForConvergence: 1e-12,
		MaxIterations:          2,
		Seed:                   1,
	})
	c.Assert(err, gc.IsNil)

	ranks, err := r.Iterate(context.TODO(), withDeadEnd)
	c.Assert(xerrors.Is(err, ranker.ErrNonConvergence), gc.Equals, true)
	c.Assert(ranks, gc.IsNil)
}

func (s *IterateTestSuite) TestCancelledContext(c *gc.C) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ranker.IterateRank(ctx, corpus0, 0.85)
	c.Assert(xerrors.Is(err, context.Canceled), gc.Equals, true)
}
