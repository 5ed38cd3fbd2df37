// Package graph holds the in-memory concept graph analysed by cluso-kg.
//
// A Graph is undirected and weighted. Nodes are arbitrary Unicode strings
// addressed internally by a dense index in declaration order; edges carry a
// free-text relation label and a non-negative weight. Parallel edges between
// the same unordered pair collapse into one edge whose relation and weight are
// taken from the last occurrence in the input. Self-loops are kept.
//
// A Graph is immutable once Build returns, so it can be shared freely between
// the analysis stages and across goroutines.
package graph
