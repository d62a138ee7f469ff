/*
   Loads a corpus of HTML documents into a link graph.
*/
package corpus

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path"
	"runtime"
	"strings"

	"github.com/Ahmed-Sermani/go-pagerank/graph"
	"github.com/Ahmed-Sermani/go-pagerank/graph/store/memory"
	"github.com/Ahmed-Sermani/go-pagerank/pipeline"
	"github.com/Ahmed-Sermani/go-pagerank/pipeline/runners"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

// ErrEmptyCorpus is returned when the corpus contains no HTML documents.
var ErrEmptyCorpus = xerrors.New("corpus contains no .html documents")

// Graph is implemented by objects that can store the pages and links of a
// corpus while it is being loaded.
type Graph interface {
	UpsertLink(link *graph.Link) error
	UpsertEdge(edge *graph.Edge) error
	FindLinkByName(name string) (*graph.Link, error)
	Links() (graph.LinkIterator, error)
	Snapshot() graph.LinkGraph
}

// Config encapsulates the settings for loading a corpus.
type Config struct {
	// Dir is the directory holding the corpus documents. Only files with
	// the .html extension directly inside Dir are loaded.
	Dir string

	// FS overrides the file system documents are read from. If not
	// specified, os.DirFS(Dir) is used.
	FS fs.FS

	// Graph receives pages and links. If not specified, an in-memory
	// store is used.
	Graph Graph

	// The number of workers reading documents. If not specified, the
	// number of CPUs is used.
	Workers int

	Logger *logrus.Entry
}

func (cfg *Config) validate() error {
	if cfg.FS == nil {
		if cfg.Dir == "" {
			return xerrors.New("corpus directory not specified")
		}
		info, err := os.Stat(cfg.Dir)
		if err != nil {
			return xerrors.Errorf("corpus directory: %w", err)
		}
		if !info.IsDir() {
			return xerrors.Errorf("corpus path %q is not a directory", cfg.Dir)
		}
		cfg.FS = os.DirFS(cfg.Dir)
	}
	if cfg.Graph == nil {
		cfg.Graph = memory.NewInMemoryGraph()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Logger == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		cfg.Logger = logrus.NewEntry(logger)
	}
	return nil
}

// Load reads every document of the corpus and returns the link graph formed
// by the links between them. Links pointing outside the corpus and links of
// a page to itself are dropped.
//
// The loader runs the following pipeline over the pages of the corpus:
//
// - Read the document contents.
// - Extract the targets of all <a href="..."> elements.
// - Record an edge for every target that is another page of the corpus.
func Load(ctx context.Context, cfg Config) (graph.LinkGraph, error) {
	if err := cfg.validate(); err != nil {
		return nil, xerrors.Errorf("corpus config validation failed: %w", err)
	}

	pages, err := registerPages(cfg.FS, cfg.Graph)
	if err != nil {
		return nil, err
	}
	cfg.Logger.WithField("pages", pages).Debug("registered corpus pages")

	linkIt, err := cfg.Graph.Links()
	if err != nil {
		return nil, xerrors.Errorf("list corpus pages: %w", err)
	}
	defer func() { _ = linkIt.Close() }()

	sink := &edgeSink{g: cfg.Graph, logger: cfg.Logger}
	err = assembleLoaderPipeline(cfg).Process(ctx, &linkSource{linkIter: linkIt}, sink)
	if err != nil {
		return nil, xerrors.Errorf("load corpus: %w", err)
	}

	cfg.Logger.WithFields(logrus.Fields{
		"pages": pages,
		"links": sink.getCount(),
	}).Info("loaded corpus")
	return cfg.Graph.Snapshot(), nil
}

func assembleLoaderPipeline(cfg Config) *pipeline.Pipeline {
	return pipeline.New(
		runners.FixedWorkerPool(newFileReader(cfg.FS), cfg.Workers),
		runners.FIFO(newLinkExtractor()),
	)
}

// registerPages upserts a link for each HTML document so that the set of
// known pages is complete before any edge is recorded.
func registerPages(fsys fs.FS, g Graph) (int, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return 0, xerrors.Errorf("read corpus directory: %w", err)
	}

	var count int
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		link := &graph.Link{Name: entry.Name(), Path: path.Clean(entry.Name())}
		if err := g.UpsertLink(link); err != nil {
			return 0, err
		}
		count++
	}

	if count == 0 {
		return 0, ErrEmptyCorpus
	}
	return count, nil
}
