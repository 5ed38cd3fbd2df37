package synthetic

import (
	"testing"

	"github.com/dd0wney/cluso-kg/pkg/validation"
)

func TestPlanted_IsValidDocument(t *testing.T) {
	doc := Planted(DefaultPlantedConfig())

	if problems := validation.ValidateDocument(doc); len(problems) != 0 {
		t.Fatalf("Expected generated document to validate, got %v", problems)
	}

	nodes, _ := doc["nodes"].([]any)
	if len(nodes) != 48 {
		t.Errorf("Expected 48 nodes, got %d", len(nodes))
	}
}

func TestPlanted_NoEdgesAcrossGaps(t *testing.T) {
	cfg := DefaultPlantedConfig()
	doc := Planted(cfg)

	gap := make(map[[2]int]bool)
	for _, p := range ExpectedGaps(cfg) {
		gap[p] = true
	}

	edges, _ := doc["edges"].([]any)
	for _, raw := range edges {
		e, _ := raw.(map[string]any)
		a, _ := CommunityOf(e["source"].(string))
		b, _ := CommunityOf(e["target"].(string))
		if a > b {
			a, b = b, a
		}
		if gap[[2]int{a, b}] {
			t.Errorf("Edge %v crosses planted gap (%d,%d)", e, a, b)
		}
	}
}

func TestPlanted_Deterministic(t *testing.T) {
	first := Planted(DefaultPlantedConfig())
	second := Planted(DefaultPlantedConfig())

	e1, _ := first["edges"].([]any)
	e2, _ := second["edges"].([]any)
	if len(e1) != len(e2) {
		t.Fatalf("Edge counts differ: %d vs %d", len(e1), len(e2))
	}
	for i := range e1 {
		a, _ := e1[i].(map[string]any)
		b, _ := e2[i].(map[string]any)
		if a["source"] != b["source"] || a["target"] != b["target"] || a["weight"] != b["weight"] {
			t.Fatalf("Edge %d differs: %v vs %v", i, a, b)
		}
	}
}

func TestExpectedGaps_Default(t *testing.T) {
	got := ExpectedGaps(DefaultPlantedConfig())
	want := [][2]int{{0, 2}, {0, 3}, {1, 2}, {1, 3}}

	if len(got) != len(want) {
		t.Fatalf("Expected %d gaps, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Gap %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestScaleConfig(t *testing.T) {
	tests := []struct {
		n           int
		communities int
		perComm     int
	}{
		{20, 2, 10},
		{200, 16, 12},
		{500, 41, 12},
	}

	for _, tt := range tests {
		cfg := ScaleConfig(tt.n, 42)
		if cfg.Communities != tt.communities || cfg.NodesPerCommunity != tt.perComm {
			t.Errorf("ScaleConfig(%d) = %d x %d, want %d x %d",
				tt.n, cfg.Communities, cfg.NodesPerCommunity, tt.communities, tt.perComm)
		}
	}
}

func TestCommunityOf(t *testing.T) {
	if c, ok := CommunityOf(NodeName(7, 3)); !ok || c != 7 {
		t.Errorf("Expected community 7, got %d (ok=%v)", c, ok)
	}
	if _, ok := CommunityOf("alpha"); ok {
		t.Error("Expected non-generated name to be rejected")
	}
}
