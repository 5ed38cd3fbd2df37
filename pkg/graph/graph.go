package graph

import "sort"

// Edge is an undirected edge between two node indices, stored with U <= V.
type Edge struct {
	U        int
	V        int
	Relation string
	Weight   float64
}

// SelfLoop reports whether both endpoints are the same node.
func (e Edge) SelfLoop() bool {
	return e.U == e.V
}

// Graph is an immutable undirected weighted graph of named concepts.
type Graph struct {
	names []string
	index map[string]int

	edges    []Edge
	edgeAt   map[[2]int]int // (min,max) -> position in edges
	adj      [][]int        // sorted neighbor indices
	strength []float64      // weighted degree, self-loops counted twice

	totalWeight float64
}

func pairKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}
	return [2]int{u, v}
}

// Build constructs a Graph from a validated document. Every declared node is
// added, including nodes without edges; repeated node names are kept once.
// Edges whose endpoints were not declared are skipped.
func Build(doc *Document) *Graph {
	g := &Graph{
		names:  make([]string, 0, len(doc.Nodes)),
		index:  make(map[string]int, len(doc.Nodes)),
		edges:  make([]Edge, 0, len(doc.Edges)),
		edgeAt: make(map[[2]int]int, len(doc.Edges)),
	}

	for _, name := range doc.Nodes {
		if _, exists := g.index[name]; exists {
			continue
		}
		g.index[name] = len(g.names)
		g.names = append(g.names, name)
	}

	for _, in := range doc.Edges {
		u, okU := g.index[in.Source]
		v, okV := g.index[in.Target]
		if !okU || !okV {
			continue
		}

		key := pairKey(u, v)
		if pos, exists := g.edgeAt[key]; exists {
			// last occurrence wins
			g.edges[pos].Relation = in.Relation
			g.edges[pos].Weight = in.Weight
			continue
		}

		g.edgeAt[key] = len(g.edges)
		g.edges = append(g.edges, Edge{
			U:        key[0],
			V:        key[1],
			Relation: in.Relation,
			Weight:   in.Weight,
		})
	}

	g.buildAdjacency()
	return g
}

func (g *Graph) buildAdjacency() {
	n := len(g.names)
	g.adj = make([][]int, n)
	g.strength = make([]float64, n)

	for _, e := range g.edges {
		g.adj[e.U] = append(g.adj[e.U], e.V)
		if !e.SelfLoop() {
			g.adj[e.V] = append(g.adj[e.V], e.U)
		}
		g.strength[e.U] += e.Weight
		g.strength[e.V] += e.Weight
		g.totalWeight += e.Weight
	}

	for i := range g.adj {
		sort.Ints(g.adj[i])
	}
}

// NodeCount returns the number of distinct nodes.
func (g *Graph) NodeCount() int {
	return len(g.names)
}

// EdgeCount returns the number of distinct undirected edges, self-loops included.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Name returns the concept name of node i.
func (g *Graph) Name(i int) string {
	return g.names[i]
}

// Names returns all node names in declaration order.
func (g *Graph) Names() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}

// Index returns the node index for name.
func (g *Graph) Index(name string) (int, bool) {
	i, ok := g.index[name]
	return i, ok
}

// Neighbors returns the sorted neighbor indices of node i. A node with a
// self-loop lists itself. The returned slice is shared and must not be
// modified.
func (g *Graph) Neighbors(i int) []int {
	return g.adj[i]
}

// Degree returns the number of distinct neighbors of node i.
func (g *Graph) Degree(i int) int {
	return len(g.adj[i])
}

// Strength returns the weighted degree of node i. A self-loop contributes
// twice its weight.
func (g *Graph) Strength(i int) float64 {
	return g.strength[i]
}

// TotalWeight returns the sum of all edge weights.
func (g *Graph) TotalWeight() float64 {
	return g.totalWeight
}

// Edges returns a copy of all edges in first-insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// EdgeBetween returns the edge joining u and v, in either orientation.
func (g *Graph) EdgeBetween(u, v int) (Edge, bool) {
	pos, ok := g.edgeAt[pairKey(u, v)]
	if !ok {
		return Edge{}, false
	}
	return g.edges[pos], true
}

// HasEdge reports whether u and v are adjacent.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.edgeAt[pairKey(u, v)]
	return ok
}
