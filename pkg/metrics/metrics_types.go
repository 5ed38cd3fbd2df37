package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for one kg process
type Registry struct {
	// Run Metrics
	RunsTotal        *prometheus.CounterVec
	RunDuration      prometheus.Histogram
	StageDuration    *prometheus.HistogramVec
	ValidationErrors prometheus.Counter

	// Graph Metrics
	GraphNodes prometheus.Gauge
	GraphEdges prometheus.Gauge

	// Report Metrics
	Communities prometheus.Gauge
	Gaps        prometheus.Gauge
	Bridges     prometheus.Gauge
	Modularity  prometheus.Gauge

	// Process Metrics
	LastRunTimestamp prometheus.Gauge
	HeapAllocBytes   prometheus.Gauge
	TotalAllocBytes  prometheus.Gauge

	registry *prometheus.Registry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	// Initialize all metrics
	r.initRunMetrics()
	r.initReportMetrics()
	r.initProcessMetrics()

	return r
}

