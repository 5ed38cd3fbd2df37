package analysis

import (
	"sort"

	"github.com/dd0wney/cluso-kg/pkg/algorithms"
	"github.com/dd0wney/cluso-kg/pkg/graph"
)

// Bridge is a concept whose neighborhood touches more than one community.
type Bridge struct {
	Name       string
	Centrality float64
}

// FindBridges returns every node whose own community together with its
// neighbors' communities spans more than one community, sorted by descending
// centrality, then name. Isolated nodes are never bridges.
func FindBridges(g *graph.Graph, communities []algorithms.Community, centrality []float64) []Bridge {
	bridges := make([]Bridge, 0)
	membership := membershipOf(g, communities)

	for u := 0; u < g.NodeCount(); u++ {
		own := membership[u]
		spans := false
		for _, v := range g.Neighbors(u) {
			if membership[v] != own {
				spans = true
				break
			}
		}
		if !spans {
			continue
		}

		score := 0.0
		if u < len(centrality) {
			score = centrality[u]
		}
		bridges = append(bridges, Bridge{Name: g.Name(u), Centrality: score})
	}

	sort.Slice(bridges, func(i, j int) bool {
		if bridges[i].Centrality != bridges[j].Centrality {
			return bridges[i].Centrality > bridges[j].Centrality
		}
		return bridges[i].Name < bridges[j].Name
	})

	return bridges
}

// BridgeSet returns the bridge names for membership lookups.
func BridgeSet(bridges []Bridge) map[string]bool {
	set := make(map[string]bool, len(bridges))
	for _, b := range bridges {
		set[b.Name] = true
	}
	return set
}
