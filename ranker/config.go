package ranker

import (
	"math"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/xerrors"
)

const (
	DefaultDampingFactor          = 0.85
	DefaultSamples                = 10000
	DefaultMinDeltaForConvergence = 0.001
	DefaultMaxIterations          = 1000
)

// Config encapsulates the parameters for creating a new Ranker instance.
type Config struct {
	// DampingFactor is the probability that a random surfer will click on
	// one of the outgoing links on the page they are currently visiting
	// instead of visiting (teleporting to) a random page in the graph.
	//
	// If not specified, a default value of 0.85 will be used instead. A
	// damping factor of zero is a valid setting; use Damping(0) to select
	// it.
	DampingFactor *float64

	// Samples is the length of the random walk performed by Sample.
	//
	// If not specified, a default value of 10000 will be used instead.
	Samples int

	// Iterate keeps running until the largest absolute change of any
	// page's rank between two iterations drops below
	// MinDeltaForConvergence.
	//
	// If not specified, a default value of 0.001 will be used instead.
	MinDeltaForConvergence float64

	// MaxIterations caps the number of iterations performed by Iterate.
	//
	// If not specified, a default value of 1000 will be used instead.
	MaxIterations int

	// Seed for the random source owned by the ranker. If zero, the source
	// is seeded from the current time.
	Seed int64
}

// Damping returns a pointer to d for use as Config.DampingFactor.
func Damping(d float64) *float64 {
	return &d
}

// validate checks whether the ranker configuration is valid and sets the
// default values where required.
func (c *Config) validate() error {
	var err error
	if c.DampingFactor == nil {
		c.DampingFactor = Damping(DefaultDampingFactor)
	} else if d := *c.DampingFactor; d < 0 || d > 1.0 || math.IsNaN(d) {
		err = multierror.Append(err, xerrors.Errorf("DampingFactor must be in the range [0, 1]: %w", ErrInvalidParameter))
	}

	if c.Samples < 0 {
		err = multierror.Append(err, xerrors.Errorf("Samples must be a positive integer: %w", ErrInvalidParameter))
	} else if c.Samples == 0 {
		c.Samples = DefaultSamples
	}

	if c.MinDeltaForConvergence < 0 || c.MinDeltaForConvergence >= 1.0 {
		err = multierror.Append(err, xerrors.Errorf("MinDeltaForConvergence must be in the range (0, 1): %w", ErrInvalidParameter))
	} else if c.MinDeltaForConvergence == 0 {
		c.MinDeltaForConvergence = DefaultMinDeltaForConvergence
	}

	if c.MaxIterations < 0 {
		err = multierror.Append(err, xerrors.Errorf("MaxIterations must be a positive integer: %w", ErrInvalidParameter))
	} else if c.MaxIterations == 0 {
		c.MaxIterations = DefaultMaxIterations
	}

	return err
}
