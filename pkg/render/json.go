package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dd0wney/cluso-kg/pkg/analysis"
)

type rankedJSON struct {
	Name       string  `json:"name"`
	Centrality float64 `json:"centrality"`
}

type communityJSON struct {
	ID       int          `json:"id"`
	Nodes    []string     `json:"nodes"`
	TopNodes []rankedJSON `json:"top_nodes"`
	Size     int          `json:"size"`
}

type gapJSON struct {
	CommunityA   int      `json:"community_a"`
	CommunityB   int      `json:"community_b"`
	Density      float64  `json:"density"`
	TopConceptsA []string `json:"top_concepts_a"`
	TopConceptsB []string `json:"top_concepts_b"`
}

type reportJSON struct {
	NodeCount   int             `json:"node_count"`
	EdgeCount   int             `json:"edge_count"`
	Modularity  float64         `json:"modularity"`
	Communities []communityJSON `json:"communities"`
	Gaps        []gapJSON       `json:"gaps"`
	Bridges     []rankedJSON    `json:"bridges"`
}

// JSON renders the report as an indented JSON object. Empty collections are
// rendered as [] rather than null.
func JSON(report *analysis.Report) ([]byte, error) {
	out := reportJSON{
		NodeCount:   report.NodeCount,
		EdgeCount:   report.EdgeCount,
		Modularity:  report.Modularity,
		Communities: make([]communityJSON, 0, len(report.Communities)),
		Gaps:        make([]gapJSON, 0, len(report.Gaps)),
		Bridges:     make([]rankedJSON, 0, len(report.Bridges)),
	}

	for _, c := range report.Communities {
		top := make([]rankedJSON, 0, len(c.TopNodes))
		for _, n := range c.TopNodes {
			top = append(top, rankedJSON{Name: n.Name, Centrality: n.Score})
		}
		out.Communities = append(out.Communities, communityJSON{
			ID:       c.ID,
			Nodes:    nonNil(c.Nodes),
			TopNodes: top,
			Size:     len(c.Nodes),
		})
	}

	for _, g := range report.Gaps {
		out.Gaps = append(out.Gaps, gapJSON{
			CommunityA:   g.CommunityA,
			CommunityB:   g.CommunityB,
			Density:      g.Density,
			TopConceptsA: nonNil(g.TopConceptsA),
			TopConceptsB: nonNil(g.TopConceptsB),
		})
	}

	for _, b := range report.Bridges {
		out.Bridges = append(out.Bridges, rankedJSON{Name: b.Name, Centrality: b.Centrality})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
