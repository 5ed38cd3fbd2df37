package main

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-kg/pkg/analysis"
	"github.com/dd0wney/cluso-kg/pkg/config"
	"github.com/dd0wney/cluso-kg/pkg/graph"
	"github.com/dd0wney/cluso-kg/pkg/input"
	"github.com/dd0wney/cluso-kg/pkg/logging"
	"github.com/dd0wney/cluso-kg/pkg/render"
)

type analyzeFlags struct {
	format       string
	visualize    string
	seed         int64
	resolution   float64
	gapThreshold float64
}

func (a *app) analyzeCmd() *cobra.Command {
	var f analyzeFlags

	cmd := &cobra.Command{
		Use:   "analyze <input>",
		Short: "Detect communities, gaps and bridges in a concept graph",
		Long: `Analyze validates the document, partitions the concepts into communities
with the Louvain method, estimates betweenness centrality, and reports
community pairs with sparse connections (gaps) and concepts that link
communities (bridges).

Flags override values from --config only when given explicitly.

Examples:
  # Human readable report
  kg analyze graph.json

  # JSON report plus an interactive page
  kg analyze graph.json --format json --visualize out/graph.html

  # Finer communities, stricter gap threshold
  kg analyze graph.json --resolution 1.5 --gap-threshold 0.02`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAnalyze(cmd, args[0], f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.format, "format", config.FormatText, "report format: text or json")
	flags.StringVar(&f.visualize, "visualize", "", "write an interactive HTML page to this path")
	flags.Int64Var(&f.seed, "seed", 0, "community detection seed (default from config, 42)")
	flags.Float64Var(&f.resolution, "resolution", 0, "modularity resolution, > 0 (default from config, 1.0)")
	flags.Float64Var(&f.gapThreshold, "gap-threshold", 0, "gap density threshold in [0, 1] (default from config, 0.05)")

	return cmd
}

func (a *app) runAnalyze(cmd *cobra.Command, path string, f analyzeFlags) error {
	flags := cmd.Flags()

	format := a.cfg.Analysis.Format
	if flags.Changed("format") {
		format = f.format
	}
	if format != config.FormatText && format != config.FormatJSON {
		return usageError(fmt.Errorf("unknown format %q (want %s or %s)", format, config.FormatText, config.FormatJSON))
	}

	if f.visualize != "" {
		if err := render.CheckOutputPath(f.visualize); err != nil {
			return usageError(err)
		}
	}

	in, err := input.Open(path)
	if err != nil {
		return usageError(err)
	}

	if flags.Changed("seed") {
		a.cfg.Analysis.Seed = f.seed
	}
	if flags.Changed("resolution") {
		a.cfg.Analysis.Resolution = f.resolution
	}
	if flags.Changed("gap-threshold") {
		a.cfg.Analysis.GapThreshold = f.gapThreshold
	}
	opts := a.analysisOptions()

	logger := a.logger.With(logging.RunID(opts.RunID), logging.Path(path))
	logger.Debug("analyze command", logging.String("format", format), logging.String("visualize", f.visualize))

	a.logInput(in)
	g, err := analysis.Prepare(in.Doc, opts)
	if err != nil {
		return a.reportAnalysisError(err)
	}
	report, err := analysis.AnalyzeGraph(g, opts)
	if err != nil {
		return a.reportAnalysisError(err)
	}

	switch format {
	case config.FormatJSON:
		data, err := render.JSON(report)
		if err != nil {
			return failureError(fmt.Errorf("%w: encode report: %w", analysis.ErrAnalysisFailed, err))
		}
		fmt.Fprintln(a.stdout, string(data))
	default:
		fmt.Fprintln(a.stdout, render.Text(report))
	}

	if f.visualize != "" {
		a.writeVisualization(f.visualize, report, g, logger)
	}
	return nil
}

// writeVisualization reports write failures as warnings; the analysis itself
// already succeeded.
func (a *app) writeVisualization(path string, report *analysis.Report, g *graph.Graph, logger logging.Logger) {
	if err := render.WriteHTMLFile(path, report, g, a.cfg.HTMLOptions()); err != nil {
		logger.Warn("visualization not written", logging.Error(err))
		printWarning(a.stderr, a.err, "could not write visualization: %v", err)
		return
	}
	fmt.Fprintln(a.stderr, a.err.muted.Render("Visualization saved to: "+absPath(path)))
}

func (a *app) analysisOptions() analysis.Options {
	opts := a.cfg.AnalysisOptions()
	opts.RunID = uuid.NewString()
	opts.Logger = a.logger
	opts.Metrics = a.metrics
	return opts
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
