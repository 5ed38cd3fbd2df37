// Package render turns an analysis report into human text, machine JSON or
// a self-contained interactive HTML page.
package render

import (
	"fmt"
	"strings"

	"github.com/dd0wney/cluso-kg/pkg/analysis"
)

// MaxBridgesDisplayed caps the bridge section of the text report.
const MaxBridgesDisplayed = 10

const ruleWidth = 60

// Text renders the report as a fixed-layout plain text document.
func Text(report *analysis.Report) string {
	var b strings.Builder
	heavy := strings.Repeat("=", ruleWidth)
	light := strings.Repeat("-", ruleWidth)

	section := func(title string) {
		b.WriteString("\n")
		b.WriteString(light + "\n")
		b.WriteString(title + "\n")
		b.WriteString(light + "\n")
	}

	b.WriteString(heavy + "\n")
	b.WriteString("KNOWLEDGE GRAPH ANALYSIS REPORT\n")
	b.WriteString(heavy + "\n\n")
	fmt.Fprintf(&b, "Nodes: %d\n", report.NodeCount)
	fmt.Fprintf(&b, "Edges: %d\n", report.EdgeCount)
	fmt.Fprintf(&b, "Communities: %d\n", len(report.Communities))
	fmt.Fprintf(&b, "Modularity: %.4f\n", report.Modularity)

	section("COMMUNITIES")
	for _, c := range report.Communities {
		fmt.Fprintf(&b, "\n  Community %d (%d nodes)\n", c.ID, len(c.Nodes))
		if len(c.TopNodes) > 0 {
			b.WriteString("  Top nodes (by centrality):\n")
			for _, n := range c.TopNodes {
				fmt.Fprintf(&b, "    - %s (%.4f)\n", n.Name, n.Score)
			}
		}
		fmt.Fprintf(&b, "  All nodes: %s\n", strings.Join(c.Nodes, ", "))
	}

	if len(report.Gaps) > 0 {
		section("GAPS (low inter-community connectivity)")
		for _, g := range report.Gaps {
			fmt.Fprintf(&b, "\n  Community %d <-> Community %d  (density: %.4f)\n", g.CommunityA, g.CommunityB, g.Density)
			fmt.Fprintf(&b, "    Community %d concepts: %s\n", g.CommunityA, strings.Join(g.TopConceptsA, ", "))
			fmt.Fprintf(&b, "    Community %d concepts: %s\n", g.CommunityB, strings.Join(g.TopConceptsB, ", "))
		}
	} else {
		b.WriteString("\nNo gaps detected.\n")
	}

	if len(report.Bridges) > 0 {
		section("BRIDGE CONCEPTS (span multiple communities)")
		bridges := report.Bridges
		if len(bridges) > MaxBridgesDisplayed {
			bridges = bridges[:MaxBridgesDisplayed]
		}
		for _, br := range bridges {
			fmt.Fprintf(&b, "  - %s (centrality: %.4f)\n", br.Name, br.Centrality)
		}
	} else {
		b.WriteString("\nNo bridge concepts detected.\n")
	}

	b.WriteString("\n" + heavy)
	return b.String()
}
