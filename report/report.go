/*
   Renders estimator results for humans.
*/
package report

import (
	"fmt"
	"io"

	"github.com/Ahmed-Sermani/go-pagerank/service/ranker"
	"golang.org/x/xerrors"
)

// Supported output formats.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
)

// Writer is implemented by types that render estimator results.
type Writer interface {
	Write(results ...ranker.Result) error
}

// New returns the Writer for the given format.
func New(format string, w io.Writer) (Writer, error) {
	switch format {
	case FormatText, "":
		return NewTextWriter(w), nil
	case FormatMarkdown, "md":
		return NewMarkdownWriter(w), nil
	default:
		return nil, xerrors.Errorf("unsupported output format: %q", format)
	}
}

// title describes the estimator that produced r.
func title(r ranker.Result) string {
	switch r.Estimator {
	case ranker.SamplingEstimator:
		return fmt.Sprintf("PageRank Results from Sampling (n = %d)", r.Samples)
	case ranker.IterativeEstimator:
		return "PageRank Results from Iteration"
	default:
		return fmt.Sprintf("PageRank Results from %s", r.Estimator)
	}
}

func formatRank(rank float64) string {
	return fmt.Sprintf("%.4f", rank)
}
