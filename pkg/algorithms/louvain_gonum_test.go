package algorithms

import (
	"testing"

	"github.com/dd0wney/cluso-kg/pkg/graph"
)

func TestGonumLouvain_TwoTriangles(t *testing.T) {
	g := twoTriangles(t)

	labels := (&GonumLouvain{Resolution: 1.0, Seed: 42}).Partition(g)
	if len(labels) != g.NodeCount() {
		t.Fatalf("Expected %d labels, got %d", g.NodeCount(), len(labels))
	}

	groups := groupByLabel(labels)
	if len(groups) != 2 {
		t.Fatalf("Expected 2 communities, got %d: %v", len(groups), labels)
	}
	for _, members := range groups {
		if len(members) != 3 {
			t.Errorf("Expected triangle of 3, got %v", members)
		}
	}
}

func TestGonumLouvain_RingOfCliques(t *testing.T) {
	g := ringOfCliques(t, 6, 5)

	labels := (&GonumLouvain{Resolution: 1.0, Seed: 42}).Partition(g)
	if groups := groupByLabel(labels); len(groups) != 6 {
		t.Errorf("Expected 6 communities, got %d", len(groups))
	}
	if q := Modularity(g, labels, 1.0); q < 0.5 {
		t.Errorf("Expected modularity >= 0.5, got %f", q)
	}
}

func TestGonumLouvain_Deterministic(t *testing.T) {
	g := ringOfCliques(t, 8, 4)

	first := (&GonumLouvain{Resolution: 1.0, Seed: 3}).Partition(g)
	for run := 0; run < 5; run++ {
		again := (&GonumLouvain{Resolution: 1.0, Seed: 3}).Partition(g)
		for i := range first {
			if first[i] != again[i] {
				t.Fatalf("Run %d: label of node %d changed from %d to %d", run, i, first[i], again[i])
			}
		}
	}
}

func TestGonumLouvain_Resolution(t *testing.T) {
	g := ringOfCliques(t, 8, 4)

	coarse := groupByLabel((&GonumLouvain{Resolution: 0.1, Seed: 42}).Partition(g))
	fine := groupByLabel((&GonumLouvain{Resolution: 1.0, Seed: 42}).Partition(g))
	if len(fine) < len(coarse) {
		t.Errorf("Higher resolution gave fewer communities: %d < %d", len(fine), len(coarse))
	}
}

func TestGonumLouvain_ModularityMatchesLoopFree(t *testing.T) {
	g := twoTriangles(t)
	labels := []int{0, 0, 0, 1, 1, 1}

	gl := &GonumLouvain{}
	for _, resolution := range []float64{0.5, 1.0, 2.0} {
		want := Modularity(g, labels, resolution)
		if got := gl.Modularity(g, labels, resolution); !approxEqual(got, want) {
			t.Errorf("resolution %.1f: gonum Q %f, want %f", resolution, got, want)
		}
	}
}

func TestGonumLouvain_SelfLoopsAccepted(t *testing.T) {
	g := buildTestGraph(t,
		[]string{"a", "b", "c"},
		[2]string{"a", "a"}, [2]string{"a", "b"}, [2]string{"b", "c"},
	)

	labels := (&GonumLouvain{Seed: 1}).Partition(g)
	if len(labels) != 3 {
		t.Fatalf("Expected 3 labels, got %d", len(labels))
	}
}

func TestGonumLouvain_ZeroWeightFallsBackToComponents(t *testing.T) {
	g := graph.Build(&graph.Document{
		Nodes: []string{"a", "b", "c", "d"},
		Edges: []graph.EdgeInput{
			{Source: "a", Target: "b", Relation: "r", Weight: 0},
			{Source: "c", Target: "d", Relation: "r", Weight: 0},
		},
	})

	gl := &GonumLouvain{Seed: 42}
	labels := gl.Partition(g)
	if labels[0] != labels[1] || labels[2] != labels[3] || labels[0] == labels[2] {
		t.Errorf("Expected components {a,b} {c,d}, got %v", labels)
	}
	if q := gl.Modularity(g, labels, 1.0); q != 0.0 {
		t.Errorf("Expected modularity 0 without weight, got %f", q)
	}
}

func TestDetectCommunities_UsesDetectorScorer(t *testing.T) {
	g := twoTriangles(t)

	result := DetectCommunities(g, nil, CommunityOptions{
		Resolution: 1.0,
		Detector:   &GonumLouvain{Resolution: 1.0, Seed: 42},
	})
	if len(result.Communities) != 2 {
		t.Fatalf("Expected 2 communities, got %d", len(result.Communities))
	}
	want := (&GonumLouvain{}).Modularity(g, result.NodeCommunity, DefaultResolution)
	if !approxEqual(result.Modularity, want) {
		t.Errorf("Expected modularity %f from gonum Q, got %f", want, result.Modularity)
	}
}
