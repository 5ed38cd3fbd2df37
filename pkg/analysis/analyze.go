package analysis

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-kg/pkg/algorithms"
	"github.com/dd0wney/cluso-kg/pkg/graph"
	"github.com/dd0wney/cluso-kg/pkg/logging"
	"github.com/dd0wney/cluso-kg/pkg/metrics"
	"github.com/dd0wney/cluso-kg/pkg/validation"
)

// Pipeline stage names, used in logs and the stage duration metric.
const (
	StageValidate    = "validate"
	StageBuild       = "build"
	StageCentrality  = "centrality"
	StageCommunities = "communities"
	StageGaps        = "gaps"
	StageBridges     = "bridges"
)

// Analyze validates a generically decoded document and analyzes it.
func Analyze(raw any, opts Options) (*Report, error) {
	opts = opts.withRunID()

	g, err := Prepare(raw, opts)
	if err != nil {
		return nil, err
	}
	return AnalyzeGraph(g, opts)
}

// Prepare validates a generically decoded document and builds its graph.
// Input problems are returned as a *ValidationError.
func Prepare(raw any, opts Options) (*graph.Graph, error) {
	opts = opts.withRunID()
	logger := opts.logger().With(logging.Component("analysis"), logging.RunID(opts.RunID))

	timer := logging.StartTimer(logger, "stage complete", logging.Stage(StageValidate))
	problems := validation.ValidateDocument(raw)
	opts.recordStage(StageValidate, timer.End(logging.Count(len(problems))))

	if len(problems) > 0 {
		logger.Warn("input rejected", logging.Count(len(problems)))
		if opts.Metrics != nil {
			opts.Metrics.RecordValidationErrors(len(problems))
			opts.Metrics.RecordRun(metrics.StatusInvalid, 0)
		}
		return nil, &ValidationError{Problems: problems}
	}

	timer = logging.StartTimer(logger, "stage complete", logging.Stage(StageBuild))
	doc, err := graph.DocumentFromRaw(raw)
	if err != nil {
		timer.EndError(err)
		return nil, fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}
	g := graph.Build(doc)
	opts.recordStage(StageBuild, timer.End(
		logging.Nodes(g.NodeCount()),
		logging.Edges(g.EdgeCount()),
	))

	return g, nil
}

// AnalyzeGraph runs centrality, community, gap and bridge detection on a
// built graph. Invalid options yield a *ValidationError; any panic inside the
// algorithms is recovered and reported as ErrAnalysisFailed.
func AnalyzeGraph(g *graph.Graph, opts Options) (report *Report, err error) {
	opts = opts.withRunID()
	logger := opts.logger().With(logging.Component("analysis"), logging.RunID(opts.RunID))

	if err := opts.Validate(); err != nil {
		logger.Warn("options rejected", logging.Error(err))
		if opts.Metrics != nil {
			opts.Metrics.RecordRun(metrics.StatusInvalid, 0)
		}
		return nil, err
	}

	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			report = nil
			err = fmt.Errorf("%w: %v", ErrAnalysisFailed, r)
		}

		status := metrics.StatusSuccess
		if err != nil {
			status = metrics.StatusFailed
			logger.Error("analysis failed", logging.Error(err))
		}
		if opts.Metrics != nil {
			opts.Metrics.RecordRun(status, time.Since(start))
		}
	}()

	logger.Info("analysis started",
		logging.Nodes(g.NodeCount()),
		logging.Edges(g.EdgeCount()),
		logging.Seed(opts.Seed),
		logging.Float64("resolution", opts.Resolution),
	)

	timer := logging.StartTimer(logger, "stage complete", logging.Stage(StageCentrality))
	centrality := opts.estimator().Centrality(g)
	opts.recordStage(StageCentrality, timer.End())

	timer = logging.StartTimer(logger, "stage complete", logging.Stage(StageCommunities))
	detected := algorithms.DetectCommunities(g, centrality, opts.communityOptions())
	opts.recordStage(StageCommunities, timer.End(logging.Count(len(detected.Communities))))

	timer = logging.StartTimer(logger, "stage complete", logging.Stage(StageGaps))
	gaps := DetectGaps(g, detected.Communities, opts.GapThreshold)
	opts.recordStage(StageGaps, timer.End(logging.Count(len(gaps))))

	timer = logging.StartTimer(logger, "stage complete", logging.Stage(StageBridges))
	bridges := FindBridges(g, detected.Communities, centrality)
	opts.recordStage(StageBridges, timer.End(logging.Count(len(bridges))))

	report = &Report{
		Communities: detected.Communities,
		Gaps:        gaps,
		Bridges:     bridges,
		Modularity:  detected.Modularity,
		NodeCount:   g.NodeCount(),
		EdgeCount:   g.EdgeCount(),
	}

	if opts.Metrics != nil {
		opts.Metrics.RecordGraph(report.NodeCount, report.EdgeCount)
		opts.Metrics.RecordReport(len(report.Communities), len(report.Gaps), len(report.Bridges), report.Modularity)
	}

	logger.Info("analysis complete",
		logging.Int("communities", len(report.Communities)),
		logging.Int("gaps", len(report.Gaps)),
		logging.Int("bridges", len(report.Bridges)),
		logging.Float64("modularity", report.Modularity),
		logging.Latency(time.Since(start)),
	)

	return report, nil
}

func (o Options) withRunID() Options {
	if o.RunID == "" {
		o.RunID = uuid.NewString()
	}
	return o
}

func (o Options) recordStage(stage string, d time.Duration) {
	if o.Metrics != nil {
		o.Metrics.RecordStage(stage, d)
	}
}
