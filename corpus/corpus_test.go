package corpus_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/Ahmed-Sermani/go-pagerank/corpus"
	"github.com/Ahmed-Sermani/go-pagerank/graph"
	"golang.org/x/xerrors"
	gc "gopkg.in/check.v1"
)

var _ = gc.Suite(new(CorpusTestSuite))

func Test(t *testing.T) {
	gc.TestingT(t)
}

type CorpusTestSuite struct{}

func (s *CorpusTestSuite) TestLoadFromFS(c *gc.C) {
	fsys := fstest.MapFS{
		"1.html": {Data: []byte(`<html><body>
			<a href="2.html">two</a>
			<a class="x" href="3.html">three</a>
			<a href="1.html">me</a>
			<a href="https://example.com/">elsewhere</a>
			<a href="2.html">two again</a>
		</body></html>`)},
		"2.html":     {Data: []byte(`<html><body><p>no links here</p></body></html>`)},
		"3.html":     {Data: []byte(`<HTML><BODY><A HREF="1.html">one</A><a name="anchor">x</a><link href="2.html"></BODY></HTML>`)},
		"notes.txt":  {Data: []byte(`<a href="1.html">ignored</a>`)},
		"sub/4.html": {Data: []byte(`<a href="1.html">nested</a>`)},
	}

	g, err := corpus.Load(context.TODO(), corpus.Config{FS: fsys, Workers: 2})
	c.Assert(err, gc.IsNil)
	c.Assert(g, gc.DeepEquals, graph.LinkGraph{
		"1.html": graph.NewPageSet("2.html", "3.html"),
		"2.html": graph.NewPageSet(),
		"3.html": graph.NewPageSet("1.html"),
	})
	c.Assert(g.Validate(), gc.IsNil)
}

func (s *CorpusTestSuite) TestLoadFromDir(c *gc.C) {
	dir := c.MkDir()
	files := map[string]string{
		"1.html": `<a href="2.html">2</a>`,
		"2.html": `<a href="1.html">1</a><a href="3.html">3</a>`,
		"3.html": `<a href="2.html">2</a><a href="4.html">4</a>`,
		"4.html": `<a href="2.html">2</a>`,
	}
	for name, contents := range files {
		c.Assert(os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644), gc.IsNil)
	}

	g, err := corpus.Load(context.TODO(), corpus.Config{Dir: dir})
	c.Assert(err, gc.IsNil)
	c.Assert(g, gc.DeepEquals, graph.LinkGraph{
		"1.html": graph.NewPageSet("2.html"),
		"2.html": graph.NewPageSet("1.html", "3.html"),
		"3.html": graph.NewPageSet("2.html", "4.html"),
		"4.html": graph.NewPageSet("2.html"),
	})
}

func (s *CorpusTestSuite) TestEmptyCorpus(c *gc.C) {
	fsys := fstest.MapFS{"readme.md": {Data: []byte("# nothing")}}

	_, err := corpus.Load(context.TODO(), corpus.Config{FS: fsys})
	c.Assert(xerrors.Is(err, corpus.ErrEmptyCorpus), gc.Equals, true)
}

func (s *CorpusTestSuite) TestMissingDirectory(c *gc.C) {
	_, err := corpus.Load(context.TODO(), corpus.Config{Dir: filepath.Join(c.MkDir(), "missing")})
	c.Assert(xerrors.Is(err, os.ErrNotExist), gc.Equals, true)

	_, err = corpus.Load(context.TODO(), corpus.Config{})
	c.Assert(err, gc.ErrorMatches, "corpus config validation failed: corpus directory not specified")
}

func (s *CorpusTestSuite) TestNotADirectory(c *gc.C) {
	file := filepath.Join(c.MkDir(), "page.html")
	c.Assert(os.WriteFile(file, nil, 0o644), gc.IsNil)

	_, err := corpus.Load(context.TODO(), corpus.Config{Dir: file})
	c.Assert(err, gc.ErrorMatches, `corpus config validation failed: corpus path ".*page.html" is not a directory`)
}
