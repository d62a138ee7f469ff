package ranker_test

import (
	"github.com/Ahmed-Sermani/go-pagerank/graph"
	"github.com/Ahmed-Sermani/go-pagerank/ranker"
	"golang.org/x/xerrors"
	gc "gopkg.in/check.v1"
)

var _ = gc.Suite(new(TransitionTestSuite))

type TransitionTestSuite struct{}

func (s *TransitionTestSuite) TestDistribution(c *gc.C) {
	g := graph.LinkGraph{
		"1.html": graph.NewPageSet("2.html", "3.html"),
		"2.html": graph.NewPageSet("3.html"),
		"3.html": graph.NewPageSet("2.html"),
	}

	dist, err := ranker.Transition(g, "1.html", 0.85)
	c.Assert(err, gc.IsNil)
	assertRanks(c, dist, ranker.Distribution{
		"1.html": 0.05,
		"2.html": 0.475,
		"3.html": 0.475,
	}, 1e-9)
}

func (s *TransitionTestSuite) TestSumsToOne(c *gc.C) {
	for _, g := range []graph.LinkGraph{twoPages, cycle, star, withDeadEnd, corpus0} {
		for _, page := range g.Pages() {
			for _, damping := range []float64{0, 0.15, 0.5, 0.85, 1} {
				dist, err := ranker.Transition(g, page, damping)
				c.Assert(err, gc.IsNil)
				c.Assert(dist, gc.HasLen, len(g))
				assertSumsToOne(c, dist, 1e-9)
			}
		}
	}
}

func (s *TransitionTestSuite) TestDanglingPageIsUniform(c *gc.C) {
	for _, damping := range []float64{0, 0.85, 1} {
		dist, err := ranker.Transition(star, "D", damping)
		c.Assert(err, gc.IsNil)
		for page, p := range dist {
			c.Assert(p, gc.Equals, 0.25, gc.Commentf("page %q, damping %v", page, damping))
		}
	}
}

func (s *TransitionTestSuite) TestFullDampingOnlyFollowsLinks(c *gc.C) {
	dist, err := ranker.Transition(withDeadEnd, "A", 1)
	c.Assert(err, gc.IsNil)
	c.Assert(dist, gc.DeepEquals, ranker.Distribution{"A": 0, "B": 0.5, "C": 0, "D": 0.5})
}

func (s *TransitionTestSuite) TestInvalidInput(c *gc.C) {
	_, err := ranker.Transition(cycle, "A", 1.5)
	c.Assert(xerrors.Is(err, ranker.ErrInvalidParameter), gc.Equals, true)

	_, err = ranker.Transition(cycle, "A", -0.1)
	c.Assert(xerrors.Is(err, ranker.ErrInvalidParameter), gc.Equals, true)

	_, err = ranker.Transition(cycle, "Z", 0.85)
	c.Assert(xerrors.Is(err, ranker.ErrUnknownPage), gc.Equals, true)
	c.Assert(xerrors.Is(err, ranker.ErrInvalidParameter), gc.Equals, true)
	c.Assert(err, gc.ErrorMatches, `transition from "Z": unknown page: invalid parameter`)

	_, err = ranker.Transition(graph.LinkGraph{}, "A", 0.85)
	c.Assert(xerrors.Is(err, ranker.ErrInvalidParameter), gc.Equals, true)
}
