package memory

import (
	"sort"
	"sync"

	"github.com/Ahmed-Sermani/go-pagerank/graph"
	"github.com/google/uuid"
	"golang.org/x/xerrors"
)

type edgeList []uuid.UUID

// InMemoryGraph keeps the links and edges discovered while loading a corpus.
// It is safe for concurrent use.
type InMemoryGraph struct {
	mu sync.RWMutex

	links map[uuid.UUID]*graph.Link
	edges map[uuid.UUID]*graph.Edge

	linkNameIndex map[string]*graph.Link
	linkEdgeMap   map[uuid.UUID]edgeList
}

// NewInMemoryGraph creates a new in-memory link graph.
func NewInMemoryGraph() *InMemoryGraph {
	return &InMemoryGraph{
		links:         make(map[uuid.UUID]*graph.Link),
		edges:         make(map[uuid.UUID]*graph.Edge),
		linkNameIndex: make(map[string]*graph.Link),
		linkEdgeMap:   make(map[uuid.UUID]edgeList),
	}
}

// UpsertLink creates a new link or updates the path of an existing link with
// the same name. On return link.ID holds the stored link's ID.
func (s *InMemoryGraph) UpsertLink(link *graph.Link) error {
	if link.Name == "" {
		return xerrors.New("upsert link: link name must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing := s.linkNameIndex[link.Name]; existing != nil {
		link.ID = existing.ID
		if link.Path == "" {
			link.Path = existing.Path
		}
		*existing = *link
		return nil
	}

	for {
		link.ID = uuid.New()
		if s.links[link.ID] == nil {
			break
		}
	}

	lCopy := new(graph.Link)
	*lCopy = *link
	s.linkNameIndex[lCopy.Name] = lCopy
	s.links[lCopy.ID] = lCopy
	return nil
}

// UpsertEdge creates a new edge between two known links. Upserting an edge
// that already exists is a no-op apart from populating edge.ID.
func (s *InMemoryGraph) UpsertEdge(edge *graph.Edge) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, srcExists := s.links[edge.Src]
	_, dstExists := s.links[edge.Dst]
	if !srcExists || !dstExists {
		return xerrors.Errorf("upsert edge: %w", graph.ErrUnknownEdgeLinks)
	}
	if edge.Src == edge.Dst {
		return xerrors.Errorf("upsert edge: self-link for %q: %w", s.links[edge.Src].Name, graph.ErrInvalidGraph)
	}

	for _, edgeID := range s.linkEdgeMap[edge.Src] {
		if existing := s.edges[edgeID]; existing.Dst == edge.Dst {
			*edge = *existing
			return nil
		}
	}

	for {
		edge.ID = uuid.New()
		if s.edges[edge.ID] == nil {
			break
		}
	}

	eCopy := new(graph.Edge)
	*eCopy = *edge
	s.edges[eCopy.ID] = eCopy
	s.linkEdgeMap[eCopy.Src] = append(s.linkEdgeMap[eCopy.Src], eCopy.ID)
	return nil
}

// FindLink looks up a link by its ID.
func (s *InMemoryGraph) FindLink(id uuid.UUID) (*graph.Link, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	link := s.links[id]
	if link == nil {
		return nil, xerrors.Errorf("find link: %w", graph.ErrNotFound)
	}

	lCopy := new(graph.Link)
	*lCopy = *link
	return lCopy, nil
}

// FindLinkByName looks up a link by its page name.
func (s *InMemoryGraph) FindLinkByName(name string) (*graph.Link, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	link := s.linkNameIndex[name]
	if link == nil {
		return nil, xerrors.Errorf("find link %q: %w", name, graph.ErrNotFound)
	}

	lCopy := new(graph.Link)
	*lCopy = *link
	return lCopy, nil
}

// Links returns an iterator over all stored links ordered by name.
func (s *InMemoryGraph) Links() (graph.LinkIterator, error) {
	s.mu.RLock()
	list := make([]*graph.Link, 0, len(s.links))
	for _, link := range s.links {
		list = append(list, link)
	}
	s.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return &linkIterator{s: s, links: list}, nil
}

// Snapshot converts the stored links and edges into a graph.LinkGraph. Every
// stored link becomes a page, including links without outgoing edges.
func (s *InMemoryGraph) Snapshot() graph.LinkGraph {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g := make(graph.LinkGraph, len(s.links))
	for id, link := range s.links {
		outlinks := make(graph.PageSet, len(s.linkEdgeMap[id]))
		for _, edgeID := range s.linkEdgeMap[id] {
			outlinks[s.links[s.edges[edgeID].Dst].Name] = struct{}{}
		}
		g[link.Name] = outlinks
	}
	return g
}
