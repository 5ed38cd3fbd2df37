package algorithms

import (
	"container/list"

	"github.com/dd0wney/cluso-kg/pkg/graph"
)

// Components treats every connected component as one community. An isolated
// node is a community of its own.
type Components struct{}

// Partition labels each node with the index of the first node of its component.
func (Components) Partition(g *graph.Graph) []int {
	n := g.NodeCount()
	labels := make([]int, n)
	visited := make([]bool, n)

	// BFS to find each component
	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}

		queue := list.New()
		queue.PushBack(start)
		visited[start] = true

		for queue.Len() > 0 {
			v, ok := queue.Remove(queue.Front()).(int)
			if !ok {
				continue
			}
			labels[v] = start

			for _, w := range g.Neighbors(v) {
				if !visited[w] {
					visited[w] = true
					queue.PushBack(w)
				}
			}
		}
	}

	return labels
}

// ConnectedComponents finds all connected components in the graph and returns
// them as communities.
func ConnectedComponents(g *graph.Graph, centrality []float64) *CommunityDetectionResult {
	return DetectCommunities(g, centrality, CommunityOptions{Detector: Components{}})
}
