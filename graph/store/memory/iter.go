package memory

import "github.com/Ahmed-Sermani/go-pagerank/graph"

// linkIterator is a graph.LinkIterator implementation for the in-memory graph.
type linkIterator struct {
	s *InMemoryGraph

	links  []*graph.Link
	curIdx int
}

func (i *linkIterator) Next() bool {
	if i.curIdx >= len(i.links) {
		return false
	}
	i.curIdx++
	return true
}

func (i *linkIterator) Link() *graph.Link {
	// The link may be overwritten by a concurrent upsert; clone it while
	// holding the read lock.
	i.s.mu.RLock()
	link := new(graph.Link)
	*link = *i.links[i.curIdx-1]
	i.s.mu.RUnlock()
	return link
}

func (i *linkIterator) Error() error {
	return nil
}

func (i *linkIterator) Close() error {
	return nil
}
