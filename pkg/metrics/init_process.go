package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Process gauges describe the kg invocation that wrote the textfile, so a
// collector can tell stale files from fresh ones.
func (r *Registry) initProcessMetrics() {
	factory := promauto.With(r.registry)

	r.LastRunTimestamp = factory.NewGauge(prometheus.GaugeOpts{
		Name: "kg_last_run_timestamp_seconds",
		Help: "Unix time at which the last analysis run finished",
	})

	r.HeapAllocBytes = factory.NewGauge(prometheus.GaugeOpts{
		Name: "kg_heap_alloc_bytes",
		Help: "Heap bytes in use when metrics were exported",
	})

	r.TotalAllocBytes = factory.NewGauge(prometheus.GaugeOpts{
		Name: "kg_total_alloc_bytes",
		Help: "Cumulative heap bytes allocated by the process",
	})
}
