package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Ahmed-Sermani/go-pagerank/service/ranker"
)

// TextWriter prints one block per result, listing every page in name order
// with its rank rounded to four decimals.
type TextWriter struct {
	w io.Writer
}

func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

func (tw *TextWriter) Write(results ...ranker.Result) error {
	bw := bufio.NewWriter(tw.w)
	for _, r := range results {
		if _, err := fmt.Fprintln(bw, title(r)); err != nil {
			return err
		}
		err := r.Ranks.Visit(func(page string, rank float64) error {
			_, err := fmt.Fprintf(bw, "  %s: %s\n", page, formatRank(rank))
			return err
		})
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}
