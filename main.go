package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Ahmed-Sermani/go-pagerank/config"
	"github.com/Ahmed-Sermani/go-pagerank/corpus"
	"github.com/Ahmed-Sermani/go-pagerank/graph"
	"github.com/Ahmed-Sermani/go-pagerank/ranker"
	"github.com/Ahmed-Sermani/go-pagerank/report"
	"github.com/Ahmed-Sermani/go-pagerank/service"
	svcranker "github.com/Ahmed-Sermani/go-pagerank/service/ranker"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

var (
	appName = "pagerank"
	appSha  = ""
)

func main() {
	logger := logrus.New()
	if err := newRootCmd(logger).Execute(); err != nil {
		logger.WithFields(logrus.Fields{"app": appName, "sha": appSha}).WithError(err).Error("shutting down due to error")
		os.Exit(1)
	}
}

// options mirrors config.Settings for the command line flags.
type options struct {
	configPath string
	verbose    bool
	settings   config.Settings
}

func newRootCmd(logger *logrus.Logger) *cobra.Command {
	var opts options
	defaults := config.Defaults()

	cmd := &cobra.Command{
		Use:   "pagerank <corpus-dir>",
		Short: "Rank the pages of an HTML corpus with PageRank",
		Long: `pagerank loads every .html document of a directory, builds the graph
of links between them and ranks each page twice: once by sampling a random
surfer's walk and once by iterating the PageRank recurrence until it converges.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], opts, logger)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "Path to a YAML configuration file (default: $XDG_CONFIG_HOME/"+config.DefaultConfigFile+")")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	f.Float64Var(&opts.settings.Damping, "damping", defaults.Damping, "The probability of following a link instead of jumping to a random page")
	f.IntVar(&opts.settings.Samples, "samples", defaults.Samples, "The number of pages visited by the sampling estimator")
	f.Float64Var(&opts.settings.Threshold, "threshold", defaults.Threshold, "The largest rank change at which the iterative estimator stops")
	f.IntVar(&opts.settings.MaxIterations, "max-iterations", defaults.MaxIterations, "The maximum number of iterations of the iterative estimator")
	f.Int64Var(&opts.settings.Seed, "seed", 0, "Seed for the sampling estimator (0 picks a time based seed)")
	f.IntVar(&opts.settings.Workers, "workers", 0, "The number of workers reading corpus documents (defaults to number of CPUs)")
	f.StringVar(&opts.settings.Format, "format", defaults.Format, "Output format: text or markdown")

	return cmd
}

func run(cmd *cobra.Command, dir string, opts options, rootLogger *logrus.Logger) error {
	if opts.verbose {
		rootLogger.SetLevel(logrus.DebugLevel)
	}
	logger := rootLogger.WithField("run_id", uuid.New().String())

	settings, cfgFile, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if cfgFile != "" {
		logger.WithField("config", cfgFile).Debug("loaded configuration file")
	}
	applyFlags(cmd, &settings, opts.settings)
	if err := settings.Validate(); err != nil {
		return xerrors.Errorf("invalid settings: %w", err)
	}

	writer, err := report.New(settings.Format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(contextOf(cmd), syscall.SIGINT, syscall.SIGHUP)
	defer cancel()

	linkGraph, err := corpus.Load(ctx, corpus.Config{
		Dir:     dir,
		Workers: settings.Workers,
		Logger:  logger.WithField("service", "corpus"),
	})
	if err != nil {
		return err
	}

	r, err := ranker.NewRanker(settings.RankerConfig())
	if err != nil {
		return err
	}

	collector := svcranker.NewCollector()
	svcGroup, err := setupServices(linkGraph, r, collector, logger)
	if err != nil {
		return err
	}
	if err := svcGroup.Run(ctx); err != nil {
		return err
	}

	var results []svcranker.Result
	for _, name := range []string{svcranker.SamplingEstimator, svcranker.IterativeEstimator} {
		res, ok := collector.Result(name)
		if !ok {
			return xerrors.Errorf("no result from the %s estimator", name)
		}
		results = append(results, res)
	}
	return writer.Write(results...)
}

func setupServices(linkGraph graph.LinkGraph, r *ranker.Ranker, sink svcranker.ResultSink, logger *logrus.Entry) (service.Group, error) {
	var (
		svc      service.Service
		svcGroup service.Group
		err      error
	)

	samplingCfg := svcranker.Config{
		Graph:  linkGraph,
		Ranker: r,
		Sink:   sink,
		Logger: logger.WithField("service", svcranker.SamplingEstimator),
	}
	if svc, err = svcranker.NewSamplingService(samplingCfg); err == nil {
		svcGroup = append(svcGroup, svc)
	} else {
		return nil, err
	}

	iterativeCfg := svcranker.Config{
		Graph:  linkGraph,
		Ranker: r,
		Sink:   sink,
		Logger: logger.WithField("service", svcranker.IterativeEstimator),
	}
	if svc, err = svcranker.NewIterativeService(iterativeCfg); err == nil {
		svcGroup = append(svcGroup, svc)
	} else {
		return nil, err
	}

	return svcGroup, nil
}

// applyFlags overrides settings with the flags explicitly set by the user.
func applyFlags(cmd *cobra.Command, settings *config.Settings, flags config.Settings) {
	changed := cmd.Flags().Changed
	if changed("damping") {
		settings.Damping = flags.Damping
	}
	if changed("samples") {
		settings.Samples = flags.Samples
	}
	if changed("threshold") {
		settings.Threshold = flags.Threshold
	}
	if changed("max-iterations") {
		settings.MaxIterations = flags.MaxIterations
	}
	if changed("seed") {
		settings.Seed = flags.Seed
	}
	if changed("workers") {
		settings.Workers = flags.Workers
	}
	if changed("format") {
		settings.Format = flags.Format
	}
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
