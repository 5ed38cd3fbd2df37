package algorithms

import "github.com/dd0wney/cluso-kg/pkg/graph"

// TriangleCountResult holds per-node triangle counts, the global count and
// local clustering coefficients, all indexed by node.
type TriangleCountResult struct {
	PerNode                []int
	GlobalCount            int
	ClusteringCoefficients []float64
	AverageClustering      float64
}

// CountTriangles counts triangles in g. For each node u it checks every pair
// (v, w) of u's neighbors for an edge; self-loops never close a triangle.
// Each triangle is counted once per participating node, so GlobalCount =
// sum(PerNode) / 3. Clustering coefficients are computed in the same pass.
func CountTriangles(g *graph.Graph) *TriangleCountResult {
	n := g.NodeCount()
	perNode := make([]int, n)
	coefficients := make([]float64, n)

	total := 0
	for u := 0; u < n; u++ {
		nbrs := make([]int, 0, g.Degree(u))
		for _, v := range g.Neighbors(u) {
			if v != u {
				nbrs = append(nbrs, v)
			}
		}

		count := 0
		for i := 0; i < len(nbrs); i++ {
			for j := i + 1; j < len(nbrs); j++ {
				if g.HasEdge(nbrs[i], nbrs[j]) {
					count++
				}
			}
		}
		perNode[u] = count
		total += count

		if k := len(nbrs); k >= 2 {
			coefficients[u] = float64(count) / float64(k*(k-1)/2)
		}
	}

	average := 0.0
	if n > 0 {
		for _, c := range coefficients {
			average += c
		}
		average /= float64(n)
	}

	return &TriangleCountResult{
		PerNode:                perNode,
		GlobalCount:            total / 3,
		ClusteringCoefficients: coefficients,
		AverageClustering:      average,
	}
}
