package algorithms

import (
	"testing"

	"github.com/dd0wney/cluso-kg/pkg/graph"
)

// buildTestGraph creates a graph from node names and unit-weight edge pairs.
func buildTestGraph(t *testing.T, nodes []string, pairs ...[2]string) *graph.Graph {
	t.Helper()

	doc := &graph.Document{Nodes: nodes}
	for _, p := range pairs {
		doc.Edges = append(doc.Edges, graph.EdgeInput{
			Source:   p[0],
			Target:   p[1],
			Relation: "related",
			Weight:   1.0,
		})
	}
	return graph.Build(doc)
}

// twoTriangles returns two triangles a-b-c and x-y-z joined by c-x.
func twoTriangles(t *testing.T) *graph.Graph {
	t.Helper()
	return buildTestGraph(t,
		[]string{"a", "b", "c", "x", "y", "z"},
		[2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"a", "c"},
		[2]string{"x", "y"}, [2]string{"y", "z"}, [2]string{"x", "z"},
		[2]string{"c", "x"},
	)
}

func approxEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
