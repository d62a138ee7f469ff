package graph

import (
	"sort"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/xerrors"
)

var (
	// ErrInvalidGraph is returned when a link graph violates one of its
	// structural invariants.
	ErrInvalidGraph = xerrors.New("invalid link graph")

	// ErrNotFound is returned when a link lookup fails.
	ErrNotFound = xerrors.New("not found")

	// ErrUnknownEdgeLinks is returned when an edge refers to links that
	// are not part of the store.
	ErrUnknownEdgeLinks = xerrors.New("unknown source and/or destination for edge")
)

// PageSet is a set of page identifiers.
type PageSet map[string]struct{}

// NewPageSet returns a PageSet containing the given pages.
func NewPageSet(pages ...string) PageSet {
	s := make(PageSet, len(pages))
	for _, p := range pages {
		s[p] = struct{}{}
	}
	return s
}

func (s PageSet) Contains(page string) bool {
	_, ok := s[page]
	return ok
}

// Sorted returns the members of the set in ascending order.
func (s PageSet) Sorted() []string {
	list := make([]string, 0, len(s))
	for p := range s {
		list = append(list, p)
	}
	sort.Strings(list)
	return list
}

// LinkGraph maps every page of a corpus to the set of pages it links to.
//
// A LinkGraph is treated as immutable once handed over to the ranking code.
// Pages with no outlinks are kept as keys with an empty set; the rankers
// decide how such dangling pages are handled.
type LinkGraph map[string]PageSet

// Pages returns all pages of the graph in ascending order.
func (g LinkGraph) Pages() []string {
	list := make([]string, 0, len(g))
	for p := range g {
		list = append(list, p)
	}
	sort.Strings(list)
	return list
}

// Outlinks returns the outlinks of page in ascending order.
func (g LinkGraph) Outlinks(page string) []string {
	return g[page].Sorted()
}

// Validate checks that every outlink target is part of the graph and that
// no page links to itself. All violations are reported.
func (g LinkGraph) Validate() error {
	var err error
	for _, src := range g.Pages() {
		for _, dst := range g.Outlinks(src) {
			if dst == src {
				err = multierror.Append(err, xerrors.Errorf("page %q links to itself: %w", src, ErrInvalidGraph))
				continue
			}
			if _, known := g[dst]; !known {
				err = multierror.Append(err, xerrors.Errorf("page %q links to unknown page %q: %w", src, dst, ErrInvalidGraph))
			}
		}
	}
	return err
}

// Iterator is implemented by graph objects that can be iterated.
type Iterator interface {
	// Next advances the iterator. If no more items are available or an
	// error occurs, calls to Next() return false.
	Next() bool

	// Error returns the last error encountered by the iterator.
	Error() error

	// Close releases any resources associated with the iterator.
	Close() error
}

// Link describes a page of the corpus.
type Link struct {
	ID uuid.UUID

	// Name is the page identifier used by the link graph.
	Name string

	// Path is the location the page contents can be read from.
	Path string
}

// LinkIterator is implemented by objects that can iterate the graph links.
type LinkIterator interface {
	Iterator

	// Link returns the currently fetched link object.
	Link() *Link
}

// Edge describes a directed link between two pages.
type Edge struct {
	ID  uuid.UUID
	Src uuid.UUID
	Dst uuid.UUID
}
