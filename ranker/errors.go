package ranker

import "golang.org/x/xerrors"

var (
	// ErrInvalidParameter is returned when a ranking parameter is out of
	// its domain or the graph is empty.
	ErrInvalidParameter = xerrors.New("invalid parameter")

	// ErrUnknownPage is returned when a page is not part of the graph.
	ErrUnknownPage = xerrors.Errorf("unknown page: %w", ErrInvalidParameter)

	// ErrNonConvergence is returned when the iterative ranker exceeds its
	// iteration budget.
	ErrNonConvergence = xerrors.New("ranks did not converge")
)
