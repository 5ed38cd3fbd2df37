// Package config loads kg defaults from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-kg/pkg/algorithms"
	"github.com/dd0wney/cluso-kg/pkg/analysis"
	"github.com/dd0wney/cluso-kg/pkg/logging"
	"github.com/dd0wney/cluso-kg/pkg/render"
	"github.com/dd0wney/cluso-kg/pkg/validation"
	"github.com/dd0wney/cluso-kg/pkg/visualization"
)

// Community detection algorithms selectable in the config file.
const (
	AlgorithmLouvain          = "louvain"
	AlgorithmGonumLouvain     = "gonum_louvain"
	AlgorithmLabelPropagation = "label_propagation"
)

// Centrality estimators selectable in the config file.
const (
	CentralityBetweenness = "betweenness"
	CentralityPageRank    = "pagerank"
)

// Output formats of the analyze command.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the full kg configuration.
type Config struct {
	Analysis      AnalysisConfig      `yaml:"analysis"`
	Logging       LoggingConfig       `yaml:"logging"`
	Visualization VisualizationConfig `yaml:"visualization"`
}

// AnalysisConfig holds pipeline defaults.
type AnalysisConfig struct {
	Seed                int64   `yaml:"seed"`
	Resolution          float64 `yaml:"resolution"`
	GapThreshold        float64 `yaml:"gap_threshold"`
	CentralitySamples   int     `yaml:"centrality_samples"`
	CentralitySeed      int64   `yaml:"centrality_seed"`
	CentralityAlgorithm string  `yaml:"centrality_algorithm"`
	CommunityAlgorithm  string  `yaml:"community_algorithm"`
	Format              string  `yaml:"format"`
}

// LoggingConfig controls the process logger.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// VisualizationConfig controls the HTML page.
type VisualizationConfig struct {
	Title      string  `yaml:"title"`
	Layout     string  `yaml:"layout"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Iterations int     `yaml:"iterations"`
	Seed       int64   `yaml:"seed"`
}

// Default returns the built-in configuration.
func Default() *Config {
	layout := visualization.DefaultLayoutConfig()
	return &Config{
		Analysis: AnalysisConfig{
			Seed:                algorithms.DefaultSeed,
			Resolution:          algorithms.DefaultResolution,
			GapThreshold:        analysis.DefaultGapThreshold,
			CentralitySamples:   algorithms.DefaultCentralitySamples,
			CentralitySeed:      algorithms.DefaultCentralitySeed,
			CentralityAlgorithm: CentralityBetweenness,
			CommunityAlgorithm:  AlgorithmLouvain,
			Format:              FormatText,
		},
		Logging: LoggingConfig{
			Level: logging.WarnLevel.String(),
		},
		Visualization: VisualizationConfig{
			Title:      render.DefaultHTMLOptions().Title,
			Layout:     visualization.LayoutForce,
			Width:      layout.Width,
			Height:     layout.Height,
			Iterations: layout.Iterations,
			Seed:       layout.Seed,
		},
	}
}

// Load reads a YAML file over the defaults. Unknown keys are rejected and an
// empty file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every section and returns all problems joined.
func (c *Config) Validate() error {
	cv := validation.NewConfigValidator("analysis").
		PositiveFloat("resolution", c.Analysis.Resolution).
		RangeFloat("gap_threshold", c.Analysis.GapThreshold, 0, 1).
		Positive("centrality_samples", c.Analysis.CentralitySamples).
		OneOf("centrality_algorithm", c.Analysis.CentralityAlgorithm,
			[]string{CentralityBetweenness, CentralityPageRank}).
		OneOf("community_algorithm", c.Analysis.CommunityAlgorithm,
			[]string{AlgorithmLouvain, AlgorithmGonumLouvain, AlgorithmLabelPropagation}).
		OneOf("format", c.Analysis.Format, []string{FormatText, FormatJSON})

	lv := validation.NewConfigValidator("logging").
		OneOfFold("level", c.Logging.Level, []string{"DEBUG", "INFO", "WARN", "ERROR"}).
		When(c.Logging.File != "", func(cv *validation.ConfigValidator) {
			cv.Custom("file", func() error {
				dir := filepath.Dir(c.Logging.File)
				if info, err := os.Stat(dir); err != nil || !info.IsDir() {
					return fmt.Errorf("directory %s does not exist", dir)
				}
				return nil
			})
		})

	vv := validation.NewConfigValidator("visualization").
		OneOf("layout", c.Visualization.Layout,
			[]string{visualization.LayoutForce, visualization.LayoutCircular}).
		PositiveFloat("width", c.Visualization.Width).
		PositiveFloat("height", c.Visualization.Height).
		RangeInt("iterations", c.Visualization.Iterations, 1, 10000)

	return errors.Join(cv.Validate(), lv.Validate(), vv.Validate())
}

// CommunityDetector returns the configured detector, or nil for the default
// Louvain optimizer.
func (a AnalysisConfig) CommunityDetector() algorithms.CommunityDetector {
	switch a.CommunityAlgorithm {
	case AlgorithmGonumLouvain:
		return &algorithms.GonumLouvain{Resolution: a.Resolution, Seed: a.Seed}
	case AlgorithmLabelPropagation:
		return &algorithms.LabelPropagation{Seed: a.Seed}
	}
	return nil
}

// CentralityEstimator returns the configured estimator, or nil for the
// default sampled betweenness.
func (a AnalysisConfig) CentralityEstimator() algorithms.CentralityEstimator {
	if a.CentralityAlgorithm == CentralityPageRank {
		return &algorithms.PageRank{Options: algorithms.DefaultPageRankOptions()}
	}
	return nil
}

// AnalysisOptions converts the analysis section into pipeline options.
func (c *Config) AnalysisOptions() analysis.Options {
	opts := analysis.DefaultOptions()
	opts.Seed = c.Analysis.Seed
	opts.Resolution = c.Analysis.Resolution
	opts.GapThreshold = c.Analysis.GapThreshold
	opts.CentralitySamples = c.Analysis.CentralitySamples
	opts.CentralitySeed = c.Analysis.CentralitySeed
	opts.Detector = c.Analysis.CommunityDetector()
	opts.Estimator = c.Analysis.CentralityEstimator()
	return opts
}

// HTMLOptions converts the visualization section into render options.
func (c *Config) HTMLOptions() render.HTMLOptions {
	return render.HTMLOptions{
		Title:  c.Visualization.Title,
		Layout: c.Visualization.Layout,
		Config: visualization.LayoutConfig{
			Width:      c.Visualization.Width,
			Height:     c.Visualization.Height,
			Iterations: c.Visualization.Iterations,
			Padding:    visualization.DefaultLayoutConfig().Padding,
			Seed:       c.Visualization.Seed,
		},
	}
}
