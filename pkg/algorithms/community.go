package algorithms

import (
	"sort"

	"github.com/dd0wney/cluso-kg/pkg/graph"
)

const (
	// MinNodesForModularity is the smallest graph handed to the modularity
	// optimizer; smaller graphs use connected components.
	MinNodesForModularity = 3

	// TopNodesPerCommunity bounds Community.TopNodes.
	TopNodesPerCommunity = 5

	// DefaultResolution is the neutral modularity resolution.
	DefaultResolution = 1.0

	// DefaultSeed seeds community detection when the caller does not.
	DefaultSeed int64 = 42
)

// CommunityDetector partitions a graph. Partition returns one label per node
// index; labels only need to be equal within a community.
type CommunityDetector interface {
	Partition(g *graph.Graph) []int
}

// ModularityScorer is implemented by detectors that report modularity under
// their own conventions. Other detectors are scored with Modularity.
type ModularityScorer interface {
	Modularity(g *graph.Graph, labels []int, resolution float64) float64
}

// CommunityOptions configures DetectCommunities.
type CommunityOptions struct {
	Resolution float64
	Seed       int64

	// Detector overrides the default Louvain optimizer for graphs with at
	// least MinNodesForModularity nodes.
	Detector CommunityDetector
}

// DefaultCommunityOptions returns resolution 1.0 and seed 42.
func DefaultCommunityOptions() CommunityOptions {
	return CommunityOptions{
		Resolution: DefaultResolution,
		Seed:       DefaultSeed,
	}
}

func (o CommunityOptions) detector(n int) CommunityDetector {
	if n < MinNodesForModularity {
		return Components{}
	}
	if o.Detector != nil {
		return o.Detector
	}
	return &Louvain{Resolution: o.Resolution, Seed: o.Seed}
}

// DetectCommunities partitions g into communities and ranks each community's
// members by the given centrality scores (indexed by node). Community IDs are
// assigned by descending size, ties broken by the lexicographically smallest
// member name. An empty graph yields no communities.
func DetectCommunities(g *graph.Graph, centrality []float64, opts CommunityOptions) *CommunityDetectionResult {
	n := g.NodeCount()
	if n == 0 {
		return &CommunityDetectionResult{
			Communities:   []Community{},
			NodeCommunity: []int{},
		}
	}

	detector := opts.detector(n)
	labels := detector.Partition(g)
	groups := groupByLabel(labels)

	for _, members := range groups {
		sort.Slice(members, func(i, j int) bool {
			return g.Name(members[i]) < g.Name(members[j])
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if len(groups[i]) != len(groups[j]) {
			return len(groups[i]) > len(groups[j])
		}
		return g.Name(groups[i][0]) < g.Name(groups[j][0])
	})

	nodeCommunity := make([]int, n)
	for id, members := range groups {
		for _, m := range members {
			nodeCommunity[m] = id
		}
	}

	communities := make([]Community, len(groups))
	for id, members := range groups {
		names := make([]string, len(members))
		for i, m := range members {
			names[i] = g.Name(m)
		}
		communities[id] = Community{
			ID:       id,
			Nodes:    names,
			TopNodes: topNodes(g, members, centrality, TopNodesPerCommunity),
			Size:     len(members),
		}
	}

	modularity := 0.0
	if len(communities) > 1 && g.EdgeCount() > 0 {
		if scorer, ok := detector.(ModularityScorer); ok {
			modularity = scorer.Modularity(g, nodeCommunity, DefaultResolution)
		} else {
			modularity = Modularity(g, nodeCommunity, DefaultResolution)
		}
	}

	return &CommunityDetectionResult{
		Communities:   communities,
		Modularity:    modularity,
		NodeCommunity: nodeCommunity,
	}
}

// groupByLabel collects node indices per label in order of first appearance.
func groupByLabel(labels []int) [][]int {
	slot := make(map[int]int)
	var groups [][]int
	for node, label := range labels {
		pos, ok := slot[label]
		if !ok {
			pos = len(groups)
			slot[label] = pos
			groups = append(groups, nil)
		}
		groups[pos] = append(groups[pos], node)
	}
	return groups
}

// topNodes ranks members by descending score, then name, keeping at most limit.
func topNodes(g *graph.Graph, members []int, centrality []float64, limit int) []RankedNode {
	ranked := make([]RankedNode, len(members))
	for i, m := range members {
		score := 0.0
		if m < len(centrality) {
			score = centrality[m]
		}
		ranked[i] = RankedNode{Name: g.Name(m), Score: score}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Name < ranked[j].Name
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
