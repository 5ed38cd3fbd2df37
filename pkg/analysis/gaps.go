package analysis

import (
	"sort"

	"github.com/dd0wney/cluso-kg/pkg/algorithms"
	"github.com/dd0wney/cluso-kg/pkg/graph"
)

// TopConceptsPerGap bounds the representative concepts listed per side.
const TopConceptsPerGap = 3

// Gap is a pair of communities whose cross-edge density is below threshold.
type Gap struct {
	CommunityA   int
	CommunityB   int
	Density      float64
	TopConceptsA []string
	TopConceptsB []string
}

// DetectGaps compares every pair of communities i < j. The density of a pair
// is the number of edges with one endpoint in each community divided by
// |Ci|*|Cj|. Pairs below threshold are returned sorted by density, then by
// community ids.
func DetectGaps(g *graph.Graph, communities []algorithms.Community, threshold float64) []Gap {
	gaps := make([]Gap, 0)
	if len(communities) < 2 {
		return gaps
	}

	membership := membershipOf(g, communities)

	cross := make(map[[2]int]int)
	for _, e := range g.Edges() {
		a, b := membership[e.U], membership[e.V]
		if a == b {
			continue
		}
		if a > b {
			a, b = b, a
		}
		cross[[2]int{a, b}]++
	}

	for i := range communities {
		for j := i + 1; j < len(communities); j++ {
			possible := communities[i].Size * communities[j].Size
			if possible == 0 {
				continue
			}

			a, b := communities[i].ID, communities[j].ID
			if a > b {
				a, b = b, a
			}
			density := float64(cross[[2]int{a, b}]) / float64(possible)
			if density >= threshold {
				continue
			}

			gaps = append(gaps, Gap{
				CommunityA:   a,
				CommunityB:   b,
				Density:      density,
				TopConceptsA: topConcepts(communityByID(communities, a)),
				TopConceptsB: topConcepts(communityByID(communities, b)),
			})
		}
	}

	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].Density != gaps[j].Density {
			return gaps[i].Density < gaps[j].Density
		}
		if gaps[i].CommunityA != gaps[j].CommunityA {
			return gaps[i].CommunityA < gaps[j].CommunityA
		}
		return gaps[i].CommunityB < gaps[j].CommunityB
	})

	return gaps
}

// membershipOf maps node index to community ID. Nodes not listed in any
// community get -1.
func membershipOf(g *graph.Graph, communities []algorithms.Community) []int {
	membership := make([]int, g.NodeCount())
	for i := range membership {
		membership[i] = -1
	}
	for _, c := range communities {
		for _, name := range c.Nodes {
			if idx, ok := g.Index(name); ok {
				membership[idx] = c.ID
			}
		}
	}
	return membership
}

func communityByID(communities []algorithms.Community, id int) algorithms.Community {
	if id >= 0 && id < len(communities) && communities[id].ID == id {
		return communities[id]
	}
	for _, c := range communities {
		if c.ID == id {
			return c
		}
	}
	return algorithms.Community{}
}

func topConcepts(c algorithms.Community) []string {
	n := min(TopConceptsPerGap, len(c.TopNodes))
	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = c.TopNodes[i].Name
	}
	return names
}
