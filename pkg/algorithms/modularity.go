package algorithms

import "github.com/dd0wney/cluso-kg/pkg/graph"

// Modularity computes the weighted modularity of a partition given as one
// community label per node:
//
//	Q = Σ_c [ L_c/m − γ·(d_c/2m)² ]
//
// where L_c is the weight of edges inside c (self-loops once), d_c the summed
// weighted degree of its members and m the total edge weight. A graph with no
// edge weight has modularity 0.
func Modularity(g *graph.Graph, labels []int, resolution float64) float64 {
	m := g.TotalWeight()
	if m <= 0 || len(labels) == 0 {
		return 0.0
	}

	comm := compactLabels(labels)
	k := 0
	for _, c := range comm {
		if c+1 > k {
			k = c + 1
		}
	}

	internal := make([]float64, k)
	degree := make([]float64, k)
	for _, e := range g.Edges() {
		if comm[e.U] == comm[e.V] {
			internal[comm[e.U]] += e.Weight
		}
	}
	for u := 0; u < g.NodeCount(); u++ {
		degree[comm[u]] += g.Strength(u)
	}

	return modularityFromSums(internal, degree, m, resolution)
}

func modularityFromSums(internal, degree []float64, m, resolution float64) float64 {
	if m <= 0 {
		return 0.0
	}
	q := 0.0
	for c := range internal {
		share := degree[c] / (2 * m)
		q += internal[c]/m - resolution*share*share
	}
	return q
}
