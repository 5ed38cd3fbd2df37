package analysis

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/dd0wney/cluso-kg/pkg/graph"
	"github.com/dd0wney/cluso-kg/pkg/synthetic"
)

// decode parses a JSON literal the way the CLI does.
func decode(t *testing.T, src string) any {
	t.Helper()
	var raw any
	if err := json.Unmarshal([]byte(src), &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return raw
}

func buildGraph(t *testing.T, src string) *graph.Graph {
	t.Helper()
	g, err := Prepare(decode(t, src), DefaultOptions())
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
	return g
}

// gapPrecisionRecall maps every planted community to the first detected
// community holding one of its nodes and scores detected gaps against the
// planted ones.
func gapPrecisionRecall(cfg synthetic.PlantedConfig, report *Report) (precision, recall float64) {
	plantedToDetected := make(map[int]int)
	for planted := 0; planted < cfg.Communities; planted++ {
		prefix := synthetic.NodeName(planted, 0)
		prefix = prefix[:strings.Index(prefix, "_")+1]
	search:
		for _, c := range report.Communities {
			for _, name := range c.Nodes {
				if strings.HasPrefix(name, prefix) {
					plantedToDetected[planted] = c.ID
					break search
				}
			}
		}
	}

	expected := make(map[[2]int]bool)
	for _, p := range synthetic.ExpectedGaps(cfg) {
		a, okA := plantedToDetected[p[0]]
		b, okB := plantedToDetected[p[1]]
		if okA && okB && a != b {
			expected[[2]int{min(a, b), max(a, b)}] = true
		}
	}
	if len(expected) == 0 {
		return 1, 1
	}

	detected := make(map[[2]int]bool)
	for _, g := range report.Gaps {
		detected[[2]int{g.CommunityA, g.CommunityB}] = true
	}

	found := 0
	for pair := range expected {
		if detected[pair] {
			found++
		}
	}
	recall = float64(found) / float64(len(expected))

	precision = 1
	if len(detected) > 0 {
		hits := 0
		for pair := range detected {
			if expected[pair] {
				hits++
			}
		}
		precision = float64(hits) / float64(len(detected))
	}
	return precision, recall
}

// mustAnalyze runs the full pipeline and fails the test on any error.
func mustAnalyze(t *testing.T, raw any, opts Options) *Report {
	t.Helper()
	report, err := Analyze(raw, opts)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	return report
}

// partitionOf returns the communities as sorted member lists, in id order.
func partitionOf(report *Report) [][]string {
	out := make([][]string, len(report.Communities))
	for i, c := range report.Communities {
		out[i] = c.Nodes
	}
	return out
}

func samePartition(a, b *Report) bool {
	return reflect.DeepEqual(partitionOf(a), partitionOf(b))
}

// assertPartition checks that communities cover every node exactly once.
func assertPartition(t *testing.T, g *graph.Graph, report *Report) {
	t.Helper()
	seen := make(map[string]int)
	for _, c := range report.Communities {
		if len(c.Nodes) == 0 {
			t.Fatalf("community %d is empty", c.ID)
		}
		for _, name := range c.Nodes {
			if prev, dup := seen[name]; dup {
				t.Fatalf("node %q in communities %d and %d", name, prev, c.ID)
			}
			seen[name] = c.ID
		}
	}
	if len(seen) != g.NodeCount() {
		t.Fatalf("partition covers %d nodes, graph has %d", len(seen), g.NodeCount())
	}
	for _, name := range g.Names() {
		if _, ok := seen[name]; !ok {
			t.Fatalf("node %q missing from partition", name)
		}
	}
}
