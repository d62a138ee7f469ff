package corpus

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/Ahmed-Sermani/go-pagerank/pipeline"
	"github.com/google/uuid"
)

var (
	_ pipeline.Payload = (*documentPayload)(nil)

	// Payloads are recycled through a pool; the buffers and slices they
	// hold keep their capacity between uses.
	payloadPool = sync.Pool{
		New: func() any { return new(documentPayload) },
	}
)

type documentPayload struct {
	LinkID uuid.UUID
	Name   string
	Path   string

	RawContent bytes.Buffer

	Links []string
}

func (p *documentPayload) Clone() pipeline.Payload {
	newp := payloadPool.Get().(*documentPayload)
	newp.LinkID = p.LinkID
	newp.Name = p.Name
	newp.Path = p.Path
	newp.Links = append(newp.Links[:0], p.Links...)

	newp.RawContent.Reset()
	if _, err := io.Copy(&newp.RawContent, bytes.NewReader(p.RawContent.Bytes())); err != nil {
		panic(fmt.Sprintf("error while cloning payload RawContent: %v", err))
	}
	return newp
}

// MarkAsProcessed resets the payload and returns it to the pool.
func (p *documentPayload) MarkAsProcessed() {
	p.LinkID = uuid.Nil
	p.Name = p.Name[:0]
	p.Path = p.Path[:0]
	p.RawContent.Reset()
	p.Links = p.Links[:0]
	payloadPool.Put(p)
}
