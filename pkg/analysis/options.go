package analysis

import (
	"github.com/dd0wney/cluso-kg/pkg/algorithms"
	"github.com/dd0wney/cluso-kg/pkg/logging"
	"github.com/dd0wney/cluso-kg/pkg/metrics"
	"github.com/dd0wney/cluso-kg/pkg/validation"
)

// DefaultGapThreshold is the cross-community density below which a pair of
// communities is reported as a gap.
const DefaultGapThreshold = 0.05

// Options configures one analysis run.
type Options struct {
	// Seed drives community detection only.
	Seed       int64
	Resolution float64 `validate:"gt=0"`

	GapThreshold float64 `validate:"gte=0,lte=1"`

	// CentralitySamples and CentralitySeed configure the default sampled
	// betweenness estimator independently of Seed.
	CentralitySamples int `validate:"gte=1"`
	CentralitySeed    int64

	// Detector and Estimator replace the default strategies when set.
	Detector  algorithms.CommunityDetector   `validate:"-"`
	Estimator algorithms.CentralityEstimator `validate:"-"`

	// RunID tags log lines of this run; generated when empty.
	RunID string

	Logger  logging.Logger    `validate:"-"`
	Metrics *metrics.Registry `validate:"-"`
}

// DefaultOptions returns seed 42, resolution 1.0, gap threshold 0.05 and
// 100 centrality samples drawn with seed 42.
func DefaultOptions() Options {
	return Options{
		Seed:              algorithms.DefaultSeed,
		Resolution:        algorithms.DefaultResolution,
		GapThreshold:      DefaultGapThreshold,
		CentralitySamples: algorithms.DefaultCentralitySamples,
		CentralitySeed:    algorithms.DefaultCentralitySeed,
	}
}

// Validate returns a *ValidationError listing every invalid option.
func (o Options) Validate() error {
	if problems := validation.ValidateStruct(o); len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func (o Options) logger() logging.Logger {
	if o.Logger == nil {
		return logging.NewNopLogger()
	}
	return o.Logger
}

func (o Options) estimator() algorithms.CentralityEstimator {
	if o.Estimator != nil {
		return o.Estimator
	}
	return &algorithms.SampledBetweenness{
		Samples: o.CentralitySamples,
		Seed:    o.CentralitySeed,
	}
}

func (o Options) communityOptions() algorithms.CommunityOptions {
	return algorithms.CommunityOptions{
		Resolution: o.Resolution,
		Seed:       o.Seed,
		Detector:   o.Detector,
	}
}
