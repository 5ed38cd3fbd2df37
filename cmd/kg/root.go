package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-kg/pkg/config"
	"github.com/dd0wney/cluso-kg/pkg/logging"
	"github.com/dd0wney/cluso-kg/pkg/metrics"
)

// Version is set at build time.
var Version = "0.1.0"

// app holds the state shared by all subcommands of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath  string
	logLevel    string
	logFile     string
	metricsFile string

	cfg      *config.Config
	logger   logging.Logger
	closeLog func() error
	metrics  *metrics.Registry

	out styles
	err styles
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:   stdout,
		stderr:   stderr,
		cfg:      config.Default(),
		logger:   logging.NewNopLogger(),
		closeLog: func() error { return nil },
		out:      newStyles(stdout),
		err:      newStyles(stderr),
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "kg",
		Short: "Concept graph analysis",
		Long: `kg analyzes a concept graph stored as JSON:

  {"nodes": ["A", "B"], "edges": [{"source": "A", "target": "B",
   "relation": "relates_to", "weight": 1.0}]}

It groups concepts into communities, reports weakly connected community
pairs (gaps) and concepts linking different communities (bridges).

Exit codes:
  0 - success
  1 - unexpected analysis failure
  2 - invalid input, options or output path`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML file with analysis, logging and visualization defaults")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&a.logFile, "log-file", "", "also write JSON log records to this file")
	flags.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile after the run")

	root.AddCommand(a.validateCmd(), a.analyzeCmd(), a.versionCmd())
	return root
}

// setup loads the configuration and opens the logger and metrics registry.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" || cmd.Name() == "help" {
		return nil
	}

	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return usageError(err)
		}
		a.cfg = cfg
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		a.cfg.Logging.Level = a.logLevel
	}
	if flags.Changed("log-file") {
		a.cfg.Logging.File = a.logFile
	}
	if err := a.cfg.Validate(); err != nil {
		return usageError(err)
	}

	logger, closeLog, err := logging.Setup(a.cfg.Logging.File, logging.ParseLevel(a.cfg.Logging.Level))
	if err != nil {
		return usageError(fmt.Errorf("open log file: %w", err))
	}
	a.logger = logger.With(logging.Component("cli"))
	a.closeLog = closeLog

	if a.metricsFile != "" {
		a.metrics = metrics.NewRegistry()
	}
	return nil
}

// finish flushes metrics and closes the log file. Failures here never change
// the exit code.
func (a *app) finish() {
	if a.metrics != nil {
		if err := a.metrics.WriteTextfile(a.metricsFile); err != nil {
			printWarning(a.stderr, a.err, "%v", err)
		}
	}
	if err := a.closeLog(); err != nil {
		printWarning(a.stderr, a.err, "close log file: %v", err)
	}
}

// execute runs the command line and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	a := newApp(stdout, stderr)
	root := a.rootCmd()
	root.SetArgs(args)

	err := root.Execute()
	a.finish()

	if err != nil && !reported(err) {
		printError(stderr, a.err, err)
	}
	return exitCode(err)
}
