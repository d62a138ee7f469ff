package corpus

import (
	"context"
	"sync"

	"github.com/Ahmed-Sermani/go-pagerank/graph"
	"github.com/Ahmed-Sermani/go-pagerank/pipeline"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

type linkSource struct {
	linkIter graph.LinkIterator
}

func (ls *linkSource) Error() error                  { return ls.linkIter.Error() }
func (ls *linkSource) Next(ctx context.Context) bool { return ls.linkIter.Next() }

func (ls *linkSource) Payload() pipeline.Payload {
	link := ls.linkIter.Link()
	payload := payloadPool.Get().(*documentPayload)
	payload.LinkID = link.ID
	payload.Name = link.Name
	payload.Path = link.Path
	return payload
}

// edgeSink records an edge for every extracted link that points to another
// page of the corpus.
type edgeSink struct {
	g      Graph
	logger *logrus.Entry

	mu    sync.Mutex
	count int
}

func (s *edgeSink) Consume(_ context.Context, p pipeline.Payload) error {
	payload := p.(*documentPayload)

	for _, target := range payload.Links {
		if target == payload.Name {
			continue
		}

		dst, err := s.g.FindLinkByName(target)
		if xerrors.Is(err, graph.ErrNotFound) {
			s.logger.WithFields(logrus.Fields{
				"page":   payload.Name,
				"target": target,
			}).Debug("skipping link outside of the corpus")
			continue
		} else if err != nil {
			return err
		}

		if err := s.g.UpsertEdge(&graph.Edge{Src: payload.LinkID, Dst: dst.ID}); err != nil {
			return xerrors.Errorf("link %q -> %q: %w", payload.Name, target, err)
		}

		s.mu.Lock()
		s.count++
		s.mu.Unlock()
	}
	return nil
}

func (s *edgeSink) getCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}
