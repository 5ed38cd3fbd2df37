package algorithms

import (
	"math/rand"

	"github.com/dd0wney/cluso-kg/pkg/graph"
)

// DefaultLabelPropagationIterations caps LabelPropagation sweeps.
const DefaultLabelPropagationIterations = 100

// LabelPropagation performs label propagation for community detection.
// Fast, scalable alternative to Louvain; nodes adopt the label carrying the
// most edge weight among their neighbors. Visit order is shuffled with Seed
// and ties go to the smallest label, so results are reproducible.
type LabelPropagation struct {
	MaxIterations int
	Seed          int64
}

// Partition runs label propagation until no label changes or the iteration
// cap is reached.
func (lp *LabelPropagation) Partition(g *graph.Graph) []int {
	n := g.NodeCount()
	maxIterations := lp.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultLabelPropagationIterations
	}

	// Initialize: each node in its own community
	labels := make([]int, n)
	for i := range labels {
		labels[i] = i
	}

	rng := rand.New(rand.NewSource(lp.Seed))
	order := rng.Perm(n)

	for iter := 0; iter < maxIterations; iter++ {
		changed := false

		for _, v := range order {
			labelWeight := make(map[int]float64)
			for _, w := range g.Neighbors(v) {
				if w == v {
					continue
				}
				e, _ := g.EdgeBetween(v, w)
				labelWeight[labels[w]] += e.Weight
			}
			if len(labelWeight) == 0 {
				continue
			}

			// Find heaviest label, smallest label on ties
			bestLabel := labels[v]
			bestWeight := -1.0
			for label, weight := range labelWeight {
				if weight > bestWeight || (weight == bestWeight && label < bestLabel) {
					bestWeight = weight
					bestLabel = label
				}
			}

			if bestLabel != labels[v] && bestWeight > labelWeight[labels[v]] {
				labels[v] = bestLabel
				changed = true
			}
		}

		if !changed {
			break // Converged
		}
	}

	return labels
}
