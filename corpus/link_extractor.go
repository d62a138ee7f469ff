package corpus

import (
	"bytes"
	"context"

	"github.com/Ahmed-Sermani/go-pagerank/pipeline"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var _ pipeline.Processor = (*linkExtractor)(nil)

type linkExtractor struct{}

func newLinkExtractor() *linkExtractor {
	return &linkExtractor{}
}

// Process collects the href targets of all anchor elements in the document.
// Each target is reported once, in order of first appearance. Targets are
// kept verbatim; the sink decides which of them are part of the corpus.
func (le *linkExtractor) Process(ctx context.Context, p pipeline.Payload) (pipeline.Payload, error) {
	payload := p.(*documentPayload)

	seen := make(map[string]struct{})
	z := html.NewTokenizer(bytes.NewReader(payload.RawContent.Bytes()))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF marks the end of the document; the tokenizer is
			// lenient with malformed markup so any other error is
			// treated the same way.
			return payload, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if tok.DataAtom != atom.A {
				continue
			}
			for _, attr := range tok.Attr {
				if attr.Key != "href" || attr.Namespace != "" {
					continue
				}
				if _, dup := seen[attr.Val]; dup {
					continue
				}
				seen[attr.Val] = struct{}{}
				payload.Links = append(payload.Links, attr.Val)
			}
		}
	}
}
