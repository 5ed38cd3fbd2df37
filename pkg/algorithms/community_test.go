package algorithms

import (
	"reflect"
	"testing"
)

func TestDetectCommunities_EmptyGraph(t *testing.T) {
	g := buildTestGraph(t, nil)

	result := DetectCommunities(g, nil, DefaultCommunityOptions())
	if result.Communities == nil || len(result.Communities) != 0 {
		t.Errorf("Expected empty non-nil communities, got %v", result.Communities)
	}
	if result.Modularity != 0 {
		t.Errorf("Expected modularity 0, got %f", result.Modularity)
	}
}

func TestDetectCommunities_TwoNodesUseComponents(t *testing.T) {
	g := buildTestGraph(t, []string{"b", "a"}, [2]string{"a", "b"})

	result := DetectCommunities(g, []float64{0, 0}, DefaultCommunityOptions())
	if len(result.Communities) != 1 {
		t.Fatalf("Expected 1 community, got %d", len(result.Communities))
	}
	if !reflect.DeepEqual(result.Communities[0].Nodes, []string{"a", "b"}) {
		t.Errorf("Expected sorted members [a b], got %v", result.Communities[0].Nodes)
	}
	if result.Modularity != 0 {
		t.Errorf("Expected modularity 0 for a single community, got %f", result.Modularity)
	}
}

func TestDetectCommunities_Ordering(t *testing.T) {
	// components of size 2, 3 and 2; ties broken by smallest member name
	g := buildTestGraph(t,
		[]string{"q", "r", "m", "n", "o", "b", "c"},
		[2]string{"q", "r"},
		[2]string{"m", "n"}, [2]string{"n", "o"},
		[2]string{"b", "c"},
	)

	result := ConnectedComponents(g, make([]float64, g.NodeCount()))
	want := [][]string{{"m", "n", "o"}, {"b", "c"}, {"q", "r"}}
	if len(result.Communities) != len(want) {
		t.Fatalf("Expected %d communities, got %d", len(want), len(result.Communities))
	}
	for i, c := range result.Communities {
		if c.ID != i {
			t.Errorf("Community %d has ID %d", i, c.ID)
		}
		if !reflect.DeepEqual(c.Nodes, want[i]) {
			t.Errorf("Community %d: expected %v, got %v", i, want[i], c.Nodes)
		}
		if c.Size != len(c.Nodes) {
			t.Errorf("Community %d: size %d does not match %d members", i, c.Size, len(c.Nodes))
		}
		for _, name := range c.Nodes {
			idx, _ := g.Index(name)
			if result.NodeCommunity[idx] != c.ID {
				t.Errorf("Node %s mapped to %d, expected %d", name, result.NodeCommunity[idx], c.ID)
			}
		}
	}
}

func TestDetectCommunities_TopNodes(t *testing.T) {
	g := buildTestGraph(t,
		[]string{"a", "b", "c", "d", "e", "f", "g"},
		[2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "d"},
		[2]string{"d", "e"}, [2]string{"e", "f"}, [2]string{"f", "g"},
	)
	scores := []float64{0, 0.5, 0.5, 0.9, 0.1, 0.2, 0}

	result := DetectCommunities(g, scores, CommunityOptions{Detector: Components{}})
	top := result.Communities[0].TopNodes
	if len(top) != TopNodesPerCommunity {
		t.Fatalf("Expected %d top nodes, got %d", TopNodesPerCommunity, len(top))
	}

	wantNames := []string{"d", "b", "c", "f", "e"}
	for i, rn := range top {
		if rn.Name != wantNames[i] {
			t.Errorf("Top node %d: expected %s, got %s", i, wantNames[i], rn.Name)
		}
	}
}

func TestDetectCommunities_LouvainModularity(t *testing.T) {
	g := twoTriangles(t)

	result := DetectCommunities(g, make([]float64, g.NodeCount()), DefaultCommunityOptions())
	if len(result.Communities) != 2 {
		t.Fatalf("Expected 2 communities, got %d", len(result.Communities))
	}
	// 2 * (3/7 - (7/14)^2)
	want := 2 * (3.0/7.0 - 0.25)
	if !approxEqual(result.Modularity, want) {
		t.Errorf("Expected modularity %f, got %f", want, result.Modularity)
	}
	if !reflect.DeepEqual(result.Communities[0].Nodes, []string{"a", "b", "c"}) {
		t.Errorf("Expected first community [a b c], got %v", result.Communities[0].Nodes)
	}
}

func TestDetectCommunities_IsolatedNodes(t *testing.T) {
	g := buildTestGraph(t, []string{"a", "b", "c", "d"})

	result := DetectCommunities(g, nil, DefaultCommunityOptions())
	if len(result.Communities) != 4 {
		t.Errorf("Expected 4 singleton communities, got %d", len(result.Communities))
	}
	if result.Modularity != 0 {
		t.Errorf("Expected modularity 0 without edges, got %f", result.Modularity)
	}
}
