package ranker_test

import (
	"context"

	"github.com/Ahmed-Sermani/go-pagerank/graph"
	"github.com/Ahmed-Sermani/go-pagerank/ranker"
	"golang.org/x/xerrors"
	gc "gopkg.in/check.v1"
)

var _ = gc.Suite(new(SampleTestSuite))

type SampleTestSuite struct{}

func (s *SampleTestSuite) TestAgreesWithIteration(c *gc.C) {
	for _, g := range []graph.LinkGraph{cycle, withDeadEnd} {
		iterated, err := ranker.IterateRank(context.TODO(), g, 0.85)
		c.Assert(err, gc.IsNil)

		sampled, err := ranker.SampleRank(context.TODO(), g, 0.85, 50000, seeded(1234))
		c.Assert(err, gc.IsNil)
		assertSumsToOne(c, sampled, 1e-9)
		assertRanks(c, sampled, iterated, 0.02)
	}
}

func (s *SampleTestSuite) TestSinglePage(c *gc.C) {
	ranks, err := ranker.SampleRank(context.TODO(), graph.LinkGraph{"only": graph.NewPageSet()}, 0.85, 100, seeded(1))
	c.Assert(err, gc.IsNil)
	c.Assert(ranks, gc.DeepEquals, ranker.RankMap{"only": 1.0})
}

func (s *SampleTestSuite) TestSeededRunsAreReproducible(c *gc.C) {
	first, err := ranker.SampleRank(context.TODO(), corpus0, 0.85, 1000, seeded(99))
	c.Assert(err, gc.IsNil)
	second, err := ranker.SampleRank(context.TODO(), corpus0, 0.85, 1000, seeded(99))
	c.Assert(err, gc.IsNil)
	c.Assert(first, gc.DeepEquals, second)
}

func (s *SampleTestSuite) TestEveryPageIsReported(c *gc.C) {
	// With full damping the walk can never reach an unlinked page.
	g := graph.LinkGraph{
		"A": graph.NewPageSet("B"),
		"B": graph.NewPageSet("A"),
		"C": graph.NewPageSet("A"),
	}

	ranks, err := ranker.SampleRank(context.TODO(), g, 1, 1001, seeded(3))
	c.Assert(err, gc.IsNil)
	c.Assert(ranks, gc.HasLen, 3)
	c.Assert(ranks["C"] <= 1.0/1001, gc.Equals, true, gc.Commentf("rank of C: %v", ranks["C"]))
	assertSumsToOne(c, ranks, 1e-9)
}

func (s *SampleTestSuite) TestNilRandomSource(c *gc.C) {
	ranks, err := ranker.SampleRank(context.TODO(), twoPages, 0.85, 10, nil)
	c.Assert(err, gc.IsNil)
	assertSumsToOne(c, ranks, 1e-9)
}

func (s *SampleTestSuite) TestInvalidInput(c *gc.C) {
	_, err := ranker.SampleRank(context.TODO(), cycle, 1.5, 100, seeded(1))
	c.Assert(xerrors.Is(err, ranker.ErrInvalidParameter), gc.Equals, true)

	_, err = ranker.SampleRank(context.TODO(), cycle, 0.85, 0, seeded(1))
	c.Assert(xerrors.Is(err, ranker.ErrInvalidParameter), gc.Equals, true)
	c.Assert(err, gc.ErrorMatches, "sample count 0 must be positive: invalid parameter")

	_, err = ranker.SampleRank(context.TODO(), graph.LinkGraph{}, 0.85, 100, seeded(1))
	c.Assert(xerrors.Is(err, ranker.ErrInvalidParameter), gc.Equals, true)

	_, err = ranker.SampleRank(context.TODO(), graph.LinkGraph{"A": graph.NewPageSet("A")}, 0.85, 100, seeded(1))
	c.Assert(xerrors.Is(err, graph.ErrInvalidGraph), gc.Equals, true)
}

func (s *SampleTestSuite) TestCancelledContext(c *gc.C) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ranks, err := ranker.SampleRank(ctx, corpus0, 0.85, 10000, seeded(1))
	c.Assert(xerrors.Is(err, context.Canceled), gc.Equals, true)
	c.Assert(ranks, gc.IsNil)
}
