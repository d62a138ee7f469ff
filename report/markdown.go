package report

import (
	"io"

	"github.com/Ahmed-Sermani/go-pagerank/service/ranker"
	"github.com/nao1215/markdown"
)

// MarkdownWriter renders results as Markdown, one section with a page/rank
// table per estimator.
type MarkdownWriter struct {
	w io.Writer
}

func NewMarkdownWriter(w io.Writer) *MarkdownWriter {
	return &MarkdownWriter{w: w}
}

func (mw *MarkdownWriter) Write(results ...ranker.Result) error {
	md := markdown.NewMarkdown(mw.w)
	md.H1("PageRank")
	md.PlainText("")

	for _, r := range results {
		var rows [][]string
		err := r.Ranks.Visit(func(page string, rank float64) error {
			rows = append(rows, []string{page, formatRank(rank)})
			return nil
		})
		if err != nil {
			return err
		}

		md.H2(title(r))
		md.PlainText("")
		md.Table(markdown.TableSet{
			Header: []string{"Page", "Rank"},
			Rows:   rows,
		})
		md.PlainText("")
	}
	return md.Build()
}
