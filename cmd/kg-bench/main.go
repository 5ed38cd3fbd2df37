// Command kg-bench times each analysis stage on synthetic planted-partition
// graphs of increasing size.
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/dd0wney/cluso-kg/pkg/algorithms"
	"github.com/dd0wney/cluso-kg/pkg/analysis"
	"github.com/dd0wney/cluso-kg/pkg/graph"
	"github.com/dd0wney/cluso-kg/pkg/synthetic"
)

func main() {
	sizes := flag.String("sizes", "100,500,1000", "Comma-separated node counts")
	seed := flag.Int64("seed", 42, "Generator and analysis seed")
	samples := flag.Int("samples", algorithms.DefaultCentralitySamples, "Betweenness source samples")
	flag.Parse()

	counts, err := parseSizes(*sizes)
	if err != nil {
		log.Fatalf("Invalid -sizes: %v", err)
	}

	fmt.Printf("Concept Graph Analysis - Stage Benchmark\n")
	fmt.Printf("========================================\n\n")
	fmt.Printf("Configuration:\n")
	fmt.Printf("  Sizes:   %s\n", *sizes)
	fmt.Printf("  Seed:    %d\n", *seed)
	fmt.Printf("  Samples: %d\n", *samples)

	for _, n := range counts {
		benchmarkSize(n, *seed, *samples)
	}

	fmt.Printf("\nBenchmark complete!\n")
}

func benchmarkSize(n int, seed int64, samples int) {
	cfg := synthetic.ScaleConfig(n, seed)
	fmt.Printf("\nGraph: %d communities x %d nodes\n", cfg.Communities, cfg.NodesPerCommunity)

	start := time.Now()
	raw := synthetic.Planted(cfg)
	doc, err := graph.DocumentFromRaw(raw)
	if err != nil {
		log.Fatalf("Failed to decode synthetic graph: %v", err)
	}
	g := graph.Build(doc)
	fmt.Printf("  Build:       %v (%d nodes, %d edges)\n", time.Since(start), g.NodeCount(), g.EdgeCount())

	start = time.Now()
	centrality := algorithms.ApproxBetweenness(g, samples, seed)
	fmt.Printf("  Betweenness: %v\n", time.Since(start))

	start = time.Now()
	pr := algorithms.ComputePageRank(g, algorithms.DefaultPageRankOptions())
	fmt.Printf("  PageRank:    %v (%d iterations, converged %v)\n", time.Since(start), pr.Iterations, pr.Converged)

	start = time.Now()
	triangles := algorithms.CountTriangles(g)
	fmt.Printf("  Triangles:   %v (%d triangles, average clustering %.4f)\n",
		time.Since(start), triangles.GlobalCount, triangles.AverageClustering)

	start = time.Now()
	opts := algorithms.CommunityOptions{Resolution: algorithms.DefaultResolution, Seed: seed}
	detected := algorithms.DetectCommunities(g, centrality, opts)
	fmt.Printf("  Louvain:     %v (%d communities, modularity %.4f)\n",
		time.Since(start), len(detected.Communities), detected.Modularity)

	start = time.Now()
	gaps := analysis.DetectGaps(g, detected.Communities, analysis.DefaultGapThreshold)
	bridges := analysis.FindBridges(g, detected.Communities, centrality)
	fmt.Printf("  Gaps/bridges: %v (%d gaps, %d bridges)\n", time.Since(start), len(gaps), len(bridges))

	aopts := analysis.DefaultOptions()
	aopts.Seed = seed
	aopts.CentralitySeed = seed
	aopts.CentralitySamples = samples

	start = time.Now()
	if _, err := analysis.Analyze(raw, aopts); err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}
	fmt.Printf("  End to end:  %v\n", time.Since(start))
}

func parseSizes(s string) ([]int, error) {
	var counts []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		if n < 1 {
			return nil, fmt.Errorf("size %d must be positive", n)
		}
		counts = append(counts, n)
	}
	return counts, nil
}
