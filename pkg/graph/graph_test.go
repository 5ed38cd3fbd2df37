package graph

import (
	"encoding/json"
	"errors"
	"testing"
)

func mustBuild(t *testing.T, doc *Document) *Graph {
	t.Helper()
	return Build(doc)
}

func TestBuild_EmptyGraph(t *testing.T) {
	g := mustBuild(t, &Document{})

	if g.NodeCount() != 0 {
		t.Errorf("Expected 0 nodes, got %d", g.NodeCount())
	}
	if g.EdgeCount() != 0 {
		t.Errorf("Expected 0 edges, got %d", g.EdgeCount())
	}
	if g.TotalWeight() != 0 {
		t.Errorf("Expected total weight 0, got %f", g.TotalWeight())
	}
}

func TestBuild_IsolatedNodesKept(t *testing.T) {
	g := mustBuild(t, &Document{
		Nodes: []string{"A", "B", "lonely"},
		Edges: []EdgeInput{{Source: "A", Target: "B", Relation: "r", Weight: 1}},
	})

	if g.NodeCount() != 3 {
		t.Fatalf("Expected 3 nodes, got %d", g.NodeCount())
	}
	i, ok := g.Index("lonely")
	if !ok {
		t.Fatal("isolated node missing from index")
	}
	if g.Degree(i) != 0 {
		t.Errorf("Expected isolated node degree 0, got %d", g.Degree(i))
	}
}

func TestBuild_DuplicateNodesCollapse(t *testing.T) {
	g := mustBuild(t, &Document{Nodes: []string{"A", "B", "A"}})

	if g.NodeCount() != 2 {
		t.Errorf("Expected 2 nodes, got %d", g.NodeCount())
	}
	if names := g.Names(); names[0] != "A" || names[1] != "B" {
		t.Errorf("Expected declaration order [A B], got %v", names)
	}
}

func TestBuild_ParallelEdgesCollapseLastWins(t *testing.T) {
	g := mustBuild(t, &Document{
		Nodes: []string{"A", "B"},
		Edges: []EdgeInput{
			{Source: "A", Target: "B", Relation: "first", Weight: 1},
			{Source: "B", Target: "A", Relation: "second", Weight: 3},
		},
	})

	if g.EdgeCount() != 1 {
		t.Fatalf("Expected 1 edge after collapse, got %d", g.EdgeCount())
	}
	e, ok := g.EdgeBetween(1, 0)
	if !ok {
		t.Fatal("expected edge between A and B")
	}
	if e.Relation != "second" || e.Weight != 3 {
		t.Errorf("Expected last edge to win, got %+v", e)
	}
	if g.TotalWeight() != 3 {
		t.Errorf("Expected total weight 3, got %f", g.TotalWeight())
	}
}

func TestBuild_EdgeOrderDoesNotChangeStructure(t *testing.T) {
	nodes := []string{"A", "B", "C", "D"}
	forward := mustBuild(t, &Document{Nodes: nodes, Edges: []EdgeInput{
		{Source: "A", Target: "B", Relation: "r", Weight: 1},
		{Source: "B", Target: "C", Relation: "r", Weight: 1},
		{Source: "C", Target: "D", Relation: "r", Weight: 1},
	}})
	reverse := mustBuild(t, &Document{Nodes: nodes, Edges: []EdgeInput{
		{Source: "D", Target: "C", Relation: "r", Weight: 1},
		{Source: "C", Target: "B", Relation: "r", Weight: 1},
		{Source: "B", Target: "A", Relation: "r", Weight: 1},
	}})

	for i := 0; i < forward.NodeCount(); i++ {
		a, b := forward.Neighbors(i), reverse.Neighbors(i)
		if len(a) != len(b) {
			t.Fatalf("node %d: neighbor count %d vs %d", i, len(a), len(b))
		}
		for j := range a {
			if a[j] != b[j] {
				t.Errorf("node %d: neighbors %v vs %v", i, a, b)
			}
		}
	}
}

func TestBuild_SelfLoop(t *testing.T) {
	g := mustBuild(t, &Document{
		Nodes: []string{"A", "B"},
		Edges: []EdgeInput{
			{Source: "A", Target: "A", Relation: "self", Weight: 2},
			{Source: "A", Target: "B", Relation: "r", Weight: 1},
		},
	})

	if g.EdgeCount() != 2 {
		t.Fatalf("Expected 2 edges, got %d", g.EdgeCount())
	}
	if !g.HasEdge(0, 0) {
		t.Error("self-loop missing")
	}
	if got := g.Neighbors(0); len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("Expected neighbors [0 1], got %v", got)
	}
	if g.Strength(0) != 5 {
		t.Errorf("Expected strength 5 (loop counted twice), got %f", g.Strength(0))
	}
	if !g.Edges()[0].SelfLoop() {
		t.Error("first edge should report SelfLoop")
	}
}

func TestBuild_UnicodeNames(t *testing.T) {
	names := []string{"💡 idea", "概念", "<script>alert('x')</script>"}
	g := mustBuild(t, &Document{
		Nodes: names,
		Edges: []EdgeInput{{Source: names[0], Target: names[1], Relation: "→", Weight: 0.5}},
	})

	for i, name := range names {
		if g.Name(i) != name {
			t.Errorf("Name(%d) = %q, want %q", i, g.Name(i), name)
		}
	}
	if !g.HasEdge(0, 1) {
		t.Error("expected edge between unicode nodes")
	}
}

func TestEdgesReturnsCopy(t *testing.T) {
	g := mustBuild(t, &Document{
		Nodes: []string{"A", "B"},
		Edges: []EdgeInput{{Source: "A", Target: "B", Relation: "r", Weight: 1}},
	})

	edges := g.Edges()
	edges[0].Relation = "mutated"

	if e, _ := g.EdgeBetween(0, 1); e.Relation != "r" {
		t.Errorf("graph was mutated through Edges(): %+v", e)
	}
}

func TestDocumentFromRaw(t *testing.T) {
	var raw any
	input := `{"nodes":["A","B"],"edges":[{"source":"A","target":"B","relation":"r","weight":1.5}]}`
	if err := json.Unmarshal([]byte(input), &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	doc, err := DocumentFromRaw(raw)
	if err != nil {
		t.Fatalf("DocumentFromRaw failed: %v", err)
	}
	if len(doc.Nodes) != 2 || len(doc.Edges) != 1 {
		t.Fatalf("unexpected document %+v", doc)
	}
	if doc.Edges[0].Weight != 1.5 || doc.Edges[0].Relation != "r" {
		t.Errorf("unexpected edge %+v", doc.Edges[0])
	}
}

func TestDocumentFromRaw_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  any
	}{
		{"not an object", []any{}},
		{"nodes not array", map[string]any{"nodes": "x", "edges": []any{}}},
		{"edges not array", map[string]any{"nodes": []any{}, "edges": 3.0}},
		{"node not string", map[string]any{"nodes": []any{1.0}, "edges": []any{}}},
		{"edge not object", map[string]any{"nodes": []any{}, "edges": []any{"e"}}},
		{"weight not number", map[string]any{"nodes": []any{"A"}, "edges": []any{
			map[string]any{"source": "A", "target": "A", "relation": "r", "weight": "1"},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DocumentFromRaw(tt.raw)
			if !errors.Is(err, ErrMalformedDocument) {
				t.Errorf("expected ErrMalformedDocument, got %v", err)
			}
		})
	}
}
