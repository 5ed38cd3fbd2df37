package algorithms

import (
	"math/rand"
	"sort"

	"github.com/dd0wney/cluso-kg/pkg/graph"
)

// DefaultLouvainThreshold is the minimum modularity gain required to run
// another aggregation level.
const DefaultLouvainThreshold = 1e-7

// Louvain optimizes modularity greedily. Each level moves single nodes into
// the neighboring community with the best modularity gain until no move
// helps, then collapses communities into super-nodes and repeats. Resolution
// scales the null-model term: values above 1 favour smaller communities.
//
// Node visit order is shuffled with Seed, so a fixed seed always yields the
// same partition for the same graph.
type Louvain struct {
	Resolution float64
	Seed       int64
	Threshold  float64
}

// levelGraph is the weighted graph one Louvain level operates on. Level 0
// mirrors the concept graph; later levels have one node per community.
type levelGraph struct {
	nbrs   [][]int
	wts    [][]float64
	loop   []float64
	degree []float64 // self-loops counted twice
}

func newLevelGraph(g *graph.Graph) *levelGraph {
	n := g.NodeCount()
	lg := &levelGraph{
		nbrs:   make([][]int, n),
		wts:    make([][]float64, n),
		loop:   make([]float64, n),
		degree: make([]float64, n),
	}

	for u := 0; u < n; u++ {
		for _, v := range g.Neighbors(u) {
			e, _ := g.EdgeBetween(u, v)
			if v == u {
				lg.loop[u] = e.Weight
				continue
			}
			lg.nbrs[u] = append(lg.nbrs[u], v)
			lg.wts[u] = append(lg.wts[u], e.Weight)
		}
		lg.degree[u] = g.Strength(u)
	}

	return lg
}

func (lg *levelGraph) size() int {
	return len(lg.degree)
}

// Partition returns a community label per node index.
func (l *Louvain) Partition(g *graph.Graph) []int {
	n := g.NodeCount()
	m := g.TotalWeight()
	if m <= 0 {
		// no weight means no modularity signal; fall back to connectivity
		return Components{}.Partition(g)
	}

	resolution := l.Resolution
	if resolution <= 0 {
		resolution = DefaultResolution
	}
	threshold := l.Threshold
	if threshold <= 0 {
		threshold = DefaultLouvainThreshold
	}

	rng := rand.New(rand.NewSource(l.Seed))
	lg := newLevelGraph(g)

	membership := make([]int, n)
	singletons := make([]int, n)
	for i := range membership {
		membership[i] = i
		singletons[i] = i
	}

	mod := lg.modularity(singletons, m, resolution)

	comm, _ := lg.oneLevel(rng, m, resolution)
	compose(membership, comm)

	for {
		newMod := lg.modularity(comm, m, resolution)
		if newMod-mod <= threshold {
			break
		}
		mod = newMod

		lg = lg.aggregate(comm)

		var improved bool
		comm, improved = lg.oneLevel(rng, m, resolution)
		if !improved {
			break
		}
		compose(membership, comm)
	}

	return membership
}

// compose maps every original node through the latest level's labels.
func compose(membership, comm []int) {
	for i, c := range membership {
		membership[i] = comm[c]
	}
}

// oneLevel runs the local-moving phase and returns compact community labels
// (0..k-1, numbered by first appearance) and whether any node moved.
func (lg *levelGraph) oneLevel(rng *rand.Rand, m, resolution float64) ([]int, bool) {
	n := lg.size()
	node2com := make([]int, n)
	stot := make([]float64, n)
	for i := 0; i < n; i++ {
		node2com[i] = i
		stot[i] = lg.degree[i]
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })

	// scratch space for neighbor community weights
	weightTo := make([]float64, n)
	touched := make([]int, 0, 16)
	seen := make([]bool, n)

	twoM2 := 2 * m * m
	improved := false

	for moves := 1; moves > 0; {
		moves = 0

		for _, u := range order {
			degree := lg.degree[u]
			current := node2com[u]

			touched = touched[:0]
			for k, v := range lg.nbrs[u] {
				c := node2com[v]
				if !seen[c] {
					seen[c] = true
					touched = append(touched, c)
				}
				weightTo[c] += lg.wts[u][k]
			}

			stot[current] -= degree
			removeCost := -weightTo[current]/m + resolution*(stot[current]*degree)/twoM2

			best := current
			bestGain := 0.0
			for _, c := range touched {
				gain := removeCost + weightTo[c]/m - resolution*(stot[c]*degree)/twoM2
				if gain > bestGain {
					bestGain = gain
					best = c
				}
			}

			stot[best] += degree
			if best != current {
				node2com[u] = best
				moves++
				improved = true
			}

			for _, c := range touched {
				weightTo[c] = 0
				seen[c] = false
			}
		}
	}

	return compactLabels(node2com), improved
}

// compactLabels renumbers labels to 0..k-1 in order of first appearance.
func compactLabels(labels []int) []int {
	remap := make(map[int]int)
	out := make([]int, len(labels))
	for i, l := range labels {
		id, ok := remap[l]
		if !ok {
			id = len(remap)
			remap[l] = id
		}
		out[i] = id
	}
	return out
}

// aggregate collapses each community of comm into a single node. Intra
// community weight becomes a self-loop on the new node.
func (lg *levelGraph) aggregate(comm []int) *levelGraph {
	k := 0
	for _, c := range comm {
		if c+1 > k {
			k = c + 1
		}
	}

	next := &levelGraph{
		nbrs:   make([][]int, k),
		wts:    make([][]float64, k),
		loop:   make([]float64, k),
		degree: make([]float64, k),
	}

	between := make(map[[2]int]float64)
	for u := 0; u < lg.size(); u++ {
		cu := comm[u]
		next.loop[cu] += lg.loop[u]
		next.degree[cu] += lg.degree[u]

		for idx, v := range lg.nbrs[u] {
			if v < u {
				continue
			}
			cv := comm[v]
			w := lg.wts[u][idx]
			if cu == cv {
				next.loop[cu] += w
				continue
			}
			between[pairOf(cu, cv)] += w
		}
	}

	keys := make([][2]int, 0, len(between))
	for key := range between {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})

	for _, key := range keys {
		a, b, w := key[0], key[1], between[key]
		next.nbrs[a] = append(next.nbrs[a], b)
		next.wts[a] = append(next.wts[a], w)
		next.nbrs[b] = append(next.nbrs[b], a)
		next.wts[b] = append(next.wts[b], w)
	}

	return next
}

func pairOf(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// modularity of a compact labelling of this level graph.
func (lg *levelGraph) modularity(comm []int, m, resolution float64) float64 {
	k := 0
	for _, c := range comm {
		if c+1 > k {
			k = c + 1
		}
	}

	internal := make([]float64, k)
	degree := make([]float64, k)
	for u := 0; u < lg.size(); u++ {
		cu := comm[u]
		internal[cu] += lg.loop[u]
		degree[cu] += lg.degree[u]
		for idx, v := range lg.nbrs[u] {
			if v > u && comm[v] == cu {
				internal[cu] += lg.wts[u][idx]
			}
		}
	}

	return modularityFromSums(internal, degree, m, resolution)
}
