// Package synthetic generates concept graphs with planted community structure.
// The generated documents have the same shape as decoded JSON input, so they
// exercise validation, analysis and rendering exactly like real files.
package synthetic

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// PlantedConfig describes a planted-partition graph.
type PlantedConfig struct {
	Communities       int
	NodesPerCommunity int
	IntraDensity      float64

	// InterPairs lists planted community pairs that receive cross edges.
	// Every other pair is a gap with no edges at all.
	InterPairs   [][2]int
	InterDensity float64

	Seed int64
}

// DefaultPlantedConfig returns 4 communities of 12 nodes where only the
// pairs (0,1) and (2,3) are cross-connected.
func DefaultPlantedConfig() PlantedConfig {
	return PlantedConfig{
		Communities:       4,
		NodesPerCommunity: 12,
		IntraDensity:      0.4,
		InterPairs:        [][2]int{{0, 1}, {2, 3}},
		InterDensity:      0.05,
		Seed:              42,
	}
}

// ScaleConfig returns a planted config with roughly n nodes, grouped in
// communities of about 12 with consecutive pairs cross-connected.
func ScaleConfig(n int, seed int64) PlantedConfig {
	communities := max(2, n/12)
	perCommunity := max(3, n/communities)

	var pairs [][2]int
	for i := 0; i+1 < communities; i += 2 {
		pairs = append(pairs, [2]int{i, i + 1})
	}

	return PlantedConfig{
		Communities:       communities,
		NodesPerCommunity: perCommunity,
		IntraDensity:      0.3,
		InterPairs:        pairs,
		InterDensity:      0.03,
		Seed:              seed,
	}
}

// NodeName is the name of node i of planted community c.
func NodeName(c, i int) string {
	return fmt.Sprintf("c%d_n%d", c, i)
}

// CommunityOf recovers the planted community from a generated node name.
func CommunityOf(name string) (int, bool) {
	rest, ok := strings.CutPrefix(name, "c")
	if !ok {
		return 0, false
	}
	idx, _, ok := strings.Cut(rest, "_")
	if !ok {
		return 0, false
	}
	c, err := strconv.Atoi(idx)
	if err != nil {
		return 0, false
	}
	return c, true
}

// Planted generates the document as a decoded-JSON value
// (map[string]any with []any slices).
func Planted(cfg PlantedConfig) map[string]any {
	rng := rand.New(rand.NewSource(cfg.Seed))

	members := make([][]string, cfg.Communities)
	nodes := make([]any, 0, cfg.Communities*cfg.NodesPerCommunity)
	for c := 0; c < cfg.Communities; c++ {
		for i := 0; i < cfg.NodesPerCommunity; i++ {
			name := NodeName(c, i)
			members[c] = append(members[c], name)
			nodes = append(nodes, name)
		}
	}

	edges := make([]any, 0)
	seen := make(map[[2]string]struct{})
	addEdge := func(u, v, relation string) {
		if u == v {
			return
		}
		key := [2]string{min(u, v), max(u, v)}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		edges = append(edges, map[string]any{
			"source":   u,
			"target":   v,
			"relation": relation,
			"weight":   math.Round((0.5+rng.Float64()*0.5)*100) / 100,
		})
	}

	for _, community := range members {
		for i := range community {
			for j := i + 1; j < len(community); j++ {
				if rng.Float64() < cfg.IntraDensity {
					addEdge(community[i], community[j], "related_to")
				}
			}
		}
	}

	for _, pair := range cfg.InterPairs {
		for _, u := range members[pair[0]] {
			for _, v := range members[pair[1]] {
				if rng.Float64() < cfg.InterDensity {
					addEdge(u, v, "cross_community")
				}
			}
		}
	}

	return map[string]any{"nodes": nodes, "edges": edges}
}

// ExpectedGaps lists the planted community pairs (a < b) that have no cross
// edges by construction.
func ExpectedGaps(cfg PlantedConfig) [][2]int {
	connected := make(map[[2]int]bool, len(cfg.InterPairs))
	for _, p := range cfg.InterPairs {
		connected[[2]int{min(p[0], p[1]), max(p[0], p[1])}] = true
	}

	var gaps [][2]int
	for a := 0; a < cfg.Communities; a++ {
		for b := a + 1; b < cfg.Communities; b++ {
			if !connected[[2]int{a, b}] {
				gaps = append(gaps, [2]int{a, b})
			}
		}
	}
	return gaps
}
