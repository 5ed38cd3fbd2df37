package algorithms

import "testing"

func TestModularity_DisjointTriangles(t *testing.T) {
	g := buildTestGraph(t,
		[]string{"a", "b", "c", "x", "y", "z"},
		[2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"a", "c"},
		[2]string{"x", "y"}, [2]string{"y", "z"}, [2]string{"x", "z"},
	)

	split := []int{0, 0, 0, 1, 1, 1}
	if q := Modularity(g, split, 1.0); !approxEqual(q, 0.5) {
		t.Errorf("Expected modularity 0.5 for triangle split, got %f", q)
	}

	merged := []int{0, 0, 0, 0, 0, 0}
	if q := Modularity(g, merged, 1.0); !approxEqual(q, 0.0) {
		t.Errorf("Expected modularity 0 for single community, got %f", q)
	}
}

func TestModularity_Resolution(t *testing.T) {
	g := buildTestGraph(t,
		[]string{"a", "b", "c", "x", "y", "z"},
		[2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"a", "c"},
		[2]string{"x", "y"}, [2]string{"y", "z"}, [2]string{"x", "z"},
	)

	// each community: L/m = 0.5, (d/2m)^2 = 0.25
	q := Modularity(g, []int{0, 0, 0, 1, 1, 1}, 2.0)
	if !approxEqual(q, 0.0) {
		t.Errorf("Expected modularity 0 at resolution 2, got %f", q)
	}
}

func TestModularity_NoEdges(t *testing.T) {
	g := buildTestGraph(t, []string{"a", "b", "c"})

	if q := Modularity(g, []int{0, 1, 2}, 1.0); q != 0.0 {
		t.Errorf("Expected modularity 0 without edges, got %f", q)
	}
}

func TestModularity_MatchesLevelGraph(t *testing.T) {
	g := twoTriangles(t)
	labels := []int{0, 0, 0, 1, 1, 1}

	lg := newLevelGraph(g)
	direct := Modularity(g, labels, 1.0)
	viaLevel := lg.modularity(labels, g.TotalWeight(), 1.0)
	if !approxEqual(direct, viaLevel) {
		t.Errorf("Modularity mismatch: direct %f, level graph %f", direct, viaLevel)
	}

	// Aggregation preserves modularity of the collapsed partition
	agg := lg.aggregate(labels)
	collapsed := agg.modularity([]int{0, 1}, g.TotalWeight(), 1.0)
	if !approxEqual(direct, collapsed) {
		t.Errorf("Aggregated modularity %f differs from %f", collapsed, direct)
	}
}
