package algorithms

import (
	"math"

	"github.com/dd0wney/cluso-kg/pkg/graph"
)

// PageRankOptions configures the PageRank estimator.
type PageRankOptions struct {
	DampingFactor float64 // Usually 0.85
	MaxIterations int
	Tolerance     float64 // Convergence threshold
}

// DefaultPageRankOptions returns default PageRank configuration
func DefaultPageRankOptions() PageRankOptions {
	return PageRankOptions{
		DampingFactor: 0.85,
		MaxIterations: 100,
		Tolerance:     1e-6,
	}
}

// PageRankResult contains PageRank scores indexed by node.
type PageRankResult struct {
	Scores     []float64
	Iterations int
	Converged  bool
}

// PageRank is a CentralityEstimator ranking concepts by weighted PageRank
// on the undirected graph. A walker at u follows an edge with probability
// proportional to its weight.
type PageRank struct {
	Options PageRankOptions
}

// Centrality returns PageRank scores summing to 1.
func (p *PageRank) Centrality(g *graph.Graph) []float64 {
	return ComputePageRank(g, p.Options).Scores
}

// ComputePageRank runs power iteration until the largest score change drops
// below the tolerance. Mass held by nodes without edges is spread uniformly.
func ComputePageRank(g *graph.Graph, opts PageRankOptions) *PageRankResult {
	n := g.NodeCount()
	if n == 0 {
		return &PageRankResult{Scores: []float64{}, Converged: true}
	}

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1.0 / float64(n)
	}
	next := make([]float64, n)

	converged := false
	iterations := 0

	for iterations < opts.MaxIterations {
		iterations++

		dangling := 0.0
		for u := 0; u < n; u++ {
			if g.Strength(u) == 0 {
				dangling += scores[u]
			}
		}

		base := (1.0-opts.DampingFactor)/float64(n) + opts.DampingFactor*dangling/float64(n)
		for v := 0; v < n; v++ {
			next[v] = base
		}

		for u := 0; u < n; u++ {
			s := g.Strength(u)
			if s == 0 {
				continue
			}
			for _, v := range g.Neighbors(u) {
				e, _ := g.EdgeBetween(u, v)
				w := e.Weight
				if v == u {
					w *= 2
				}
				next[v] += opts.DampingFactor * scores[u] * w / s
			}
		}

		maxDiff := 0.0
		for i := range scores {
			maxDiff = math.Max(maxDiff, math.Abs(next[i]-scores[i]))
		}
		scores, next = next, scores

		if maxDiff < opts.Tolerance {
			converged = true
			break
		}
	}

	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	if sum > 0 {
		for i := range scores {
			scores[i] /= sum
		}
	}

	return &PageRankResult{
		Scores:     scores,
		Iterations: iterations,
		Converged:  converged,
	}
}
