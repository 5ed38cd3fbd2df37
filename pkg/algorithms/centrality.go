package algorithms

import (
	"container/list"
	"math/rand"
	"sort"

	"github.com/dd0wney/cluso-kg/pkg/graph"
)

const (
	// DefaultCentralitySamples is the number of BFS sources used by the
	// sampled betweenness estimate.
	DefaultCentralitySamples = 100

	// DefaultCentralitySeed fixes source sampling.
	DefaultCentralitySeed int64 = 42
)

// CentralityEstimator scores every node of a graph. The result is indexed by
// node and has length g.NodeCount().
type CentralityEstimator interface {
	Centrality(g *graph.Graph) []float64
}

// SampledBetweenness approximates normalized betweenness centrality with
// Brandes' algorithm run from a seeded sample of source nodes. When Samples
// covers every node the result equals exact betweenness.
type SampledBetweenness struct {
	Samples int
	Seed    int64
}

// DefaultCentralityEstimator samples up to 100 sources with seed 42.
func DefaultCentralityEstimator() *SampledBetweenness {
	return &SampledBetweenness{
		Samples: DefaultCentralitySamples,
		Seed:    DefaultCentralitySeed,
	}
}

// Centrality implements CentralityEstimator.
func (s *SampledBetweenness) Centrality(g *graph.Graph) []float64 {
	samples := s.Samples
	if samples <= 0 {
		samples = DefaultCentralitySamples
	}
	return ApproxBetweenness(g, samples, s.Seed)
}

// ApproxBetweenness computes betweenness over unweighted shortest paths using
// min(k, n) source nodes drawn with the given seed. Scores are rescaled by n/k
// and normalized by 1/((n-1)(n-2)) so they are comparable to exact
// undirected betweenness in [0, 1]. Self-loops never lie on a shortest path.
func ApproxBetweenness(g *graph.Graph, k int, seed int64) []float64 {
	n := g.NodeCount()
	scores := make([]float64, n)
	if n < 2 {
		return scores
	}

	if k > n {
		k = n
	}
	if k <= 0 {
		return scores
	}

	sources := rand.New(rand.NewSource(seed)).Perm(n)[:k]
	sort.Ints(sources)

	stack := make([]int, 0, n)
	predecessors := make([][]int, n)
	sigma := make([]float64, n)
	distance := make([]int, n)
	delta := make([]float64, n)

	for _, source := range sources {
		stack = stack[:0]
		for i := 0; i < n; i++ {
			predecessors[i] = predecessors[i][:0]
			sigma[i] = 0
			distance[i] = -1
			delta[i] = 0
		}

		sigma[source] = 1.0
		distance[source] = 0

		queue := list.New()
		queue.PushBack(source)

		for queue.Len() > 0 {
			v, ok := queue.Remove(queue.Front()).(int)
			if !ok {
				continue
			}
			stack = append(stack, v)

			for _, w := range g.Neighbors(v) {
				if w == v {
					continue
				}
				if distance[w] < 0 {
					queue.PushBack(w)
					distance[w] = distance[v] + 1
				}
				if distance[w] == distance[v]+1 {
					sigma[w] += sigma[v]
					predecessors[w] = append(predecessors[w], v)
				}
			}
		}

		// Accumulate dependencies in reverse BFS order
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range predecessors[w] {
				delta[v] += (sigma[v] / sigma[w]) * (1.0 + delta[w])
			}
			if w != source {
				scores[w] += delta[w]
			}
		}
	}

	// Each undirected path is seen from both ends, which the (n-1)(n-2)
	// denominator (rather than (n-1)(n-2)/2) absorbs.
	scale := float64(n) / float64(k)
	if n > 2 {
		scale *= 1.0 / float64((n-1)*(n-2))
	}
	for i := range scores {
		scores[i] *= scale
	}

	return scores
}
