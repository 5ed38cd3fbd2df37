package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initReportMetrics() {
	r.GraphNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "kg_graph_nodes",
			Help: "Number of concepts in the last analyzed graph",
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "kg_graph_edges",
			Help: "Number of relations in the last analyzed graph after collapsing duplicates",
		},
	)

	r.Communities = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "kg_report_communities",
			Help: "Communities detected in the last report",
		},
	)

	r.Gaps = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "kg_report_gaps",
			Help: "Gaps detected in the last report",
		},
	)

	r.Bridges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "kg_report_bridges",
			Help: "Bridge concepts detected in the last report",
		},
	)

	r.Modularity = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "kg_report_modularity",
			Help: "Modularity of the last partition",
		},
	)
}
