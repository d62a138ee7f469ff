/*
   Application settings for the pagerank command.

   Settings are layered; each layer overrides the previous one:

       built-in defaults
       YAML configuration file
       environment variables (optionally read from a .env file)
       command line flags (applied by the caller)
*/
package config

import (
	"math"
	"os"
	"strconv"

	"github.com/Ahmed-Sermani/go-pagerank/ranker"
	"github.com/adrg/xdg"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the location of the configuration file relative to
// the XDG configuration directories.
const DefaultConfigFile = "pagerank/config.yaml"

// EnvPrefix prefixes all environment variables read by Load.
const EnvPrefix = "PAGERANK_"

// ErrConfigNotFound is returned when an explicitly requested configuration
// file does not exist.
var ErrConfigNotFound = xerrors.New("configuration file not found")

// Settings holds the tunables of a ranking run.
type Settings struct {
	// Damping factor for both estimators. Zero disables link following.
	Damping float64 `yaml:"damping"`

	// Length of the random walk of the sampling estimator.
	Samples int `yaml:"samples"`

	// Convergence threshold of the iterative estimator.
	Threshold float64 `yaml:"threshold"`

	// Iteration cap of the iterative estimator.
	MaxIterations int `yaml:"max_iterations"`

	// Seed for the sampling estimator; zero picks a time based seed.
	Seed int64 `yaml:"seed"`

	// Number of workers reading corpus documents; zero uses one per CPU.
	Workers int `yaml:"workers"`

	// Output format: text or markdown.
	Format string `yaml:"format"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Damping:       ranker.DefaultDampingFactor,
		Samples:       ranker.DefaultSamples,
		Threshold:     ranker.DefaultMinDeltaForConvergence,
		MaxIterations: ranker.DefaultMaxIterations,
		Format:        "text",
	}
}

// Load builds the settings from the defaults, the configuration file and the
// environment. If path is empty the file is looked up in the XDG config
// directories and silently skipped when absent. It returns the path of the
// file that was used, if any.
func Load(path string) (Settings, string, error) {
	// A missing .env file is fine; variables already set are kept.
	_ = godotenv.Load()

	s := Defaults()

	file := path
	if file == "" {
		file, _ = xdg.SearchConfigFile(DefaultConfigFile)
	}
	if file != "" {
		if err := LoadFile(file, &s); err != nil {
			return Settings{}, "", err
		}
	}

	if err := ApplyEnv(&s, os.LookupEnv); err != nil {
		return Settings{}, "", err
	}
	return s, file, nil
}

// LoadFile overlays the YAML document at path onto s. Keys missing from the
// document leave the corresponding settings untouched.
func LoadFile(path string, s *Settings) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return xerrors.Errorf("%s: %w", path, ErrConfigNotFound)
		}
		return xerrors.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return xerrors.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays PAGERANK_* variables found through lookup onto s. All
// malformed values are reported.
func ApplyEnv(s *Settings, lookup func(string) (string, bool)) error {
	var err error
	parseFloat := func(name string, dst *float64) {
		if v, ok := lookup(EnvPrefix + name); ok {
			f, pErr := strconv.ParseFloat(v, 64)
			if pErr != nil {
				err = multierror.Append(err, xerrors.Errorf("%s%s: %w", EnvPrefix, name, pErr))
				return
			}
			*dst = f
		}
	}
	parseInt := func(name string, dst *int) {
		if v, ok := lookup(EnvPrefix + name); ok {
			n, pErr := strconv.Atoi(v)
			if pErr != nil {
				err = multierror.Append(err, xerrors.Errorf("%s%s: %w", EnvPrefix, name, pErr))
				return
			}
			*dst = n
		}
	}

	parseFloat("DAMPING", &s.Damping)
	parseInt("SAMPLES", &s.Samples)
	parseFloat("THRESHOLD", &s.Threshold)
	parseInt("MAX_ITERATIONS", &s.MaxIterations)
	parseInt("WORKERS", &s.Workers)
	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		seed, pErr := strconv.ParseInt(v, 10, 64)
		if pErr != nil {
			err = multierror.Append(err, xerrors.Errorf("%sSEED: %w", EnvPrefix, pErr))
		} else {
			s.Seed = seed
		}
	}
	if v, ok := lookup(EnvPrefix + "FORMAT"); ok {
		s.Format = v
	}
	return err
}

// Validate checks the settings that the ranker cannot check on its own.
func (s Settings) Validate() error {
	var err error
	if s.Damping < 0 || s.Damping > 1 || math.IsNaN(s.Damping) {
		err = multierror.Append(err, xerrors.Errorf("damping factor %v must be in the range [0, 1]: %w", s.Damping, ranker.ErrInvalidParameter))
	}
	if s.Samples <= 0 {
		err = multierror.Append(err, xerrors.Errorf("sample count %d must be a positive integer: %w", s.Samples, ranker.ErrInvalidParameter))
	}
	if s.Threshold <= 0 || s.Threshold >= 1 {
		err = multierror.Append(err, xerrors.Errorf("convergence threshold %v must be in the range (0, 1): %w", s.Threshold, ranker.ErrInvalidParameter))
	}
	if s.MaxIterations <= 0 {
		err = multierror.Append(err, xerrors.Errorf("max iterations %d must be a positive integer: %w", s.MaxIterations, ranker.ErrInvalidParameter))
	}
	if s.Workers < 0 {
		err = multierror.Append(err, xerrors.Errorf("worker count %d must not be negative: %w", s.Workers, ranker.ErrInvalidParameter))
	}
	return err
}

// RankerConfig maps the settings onto a ranker configuration.
func (s Settings) RankerConfig() ranker.Config {
	return ranker.Config{
		DampingFactor:          ranker.Damping(s.Damping),
		Samples:                s.Samples,
		MinDeltaForConvergence: s.Threshold,
		MaxIterations:          s.MaxIterations,
		Seed:                   s.Seed,
	}
}
