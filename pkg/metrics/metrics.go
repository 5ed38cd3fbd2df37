package metrics

import (
	"fmt"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Run outcomes used as the status label of kg_analysis_runs_total.
const (
	StatusSuccess = "success"
	StatusInvalid = "invalid"
	StatusFailed  = "failed"
)

// RecordRun records a finished analysis run with its outcome
func (r *Registry) RecordRun(status string, duration time.Duration) {
	r.RunsTotal.WithLabelValues(status).Inc()
	r.RunDuration.Observe(duration.Seconds())
	r.LastRunTimestamp.SetToCurrentTime()
}

// RecordStage records the duration of one pipeline stage
func (r *Registry) RecordStage(stage string, duration time.Duration) {
	r.StageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

// RecordValidationErrors adds the number of problems found in an input
func (r *Registry) RecordValidationErrors(count int) {
	r.ValidationErrors.Add(float64(count))
}

// RecordGraph records the size of the analyzed graph
func (r *Registry) RecordGraph(nodes, edges int) {
	r.GraphNodes.Set(float64(nodes))
	r.GraphEdges.Set(float64(edges))
}

// RecordReport records the shape of a finished report
func (r *Registry) RecordReport(communities, gaps, bridges int, modularity float64) {
	r.Communities.Set(float64(communities))
	r.Gaps.Set(float64(gaps))
	r.Bridges.Set(float64(bridges))
	r.Modularity.Set(modularity)
}

// UpdateProcessMetrics samples heap statistics
func (r *Registry) UpdateProcessMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	r.HeapAllocBytes.Set(float64(m.HeapAlloc))
	r.TotalAllocBytes.Set(float64(m.TotalAlloc))
}

// WriteTextfile writes every metric in the text exposition format, suitable
// for the node_exporter textfile collector. The file is replaced atomically.
func (r *Registry) WriteTextfile(path string) error {
	r.UpdateProcessMetrics()
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
