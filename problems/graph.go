// UndirectedGraph: the minimal immutable graph shared by the graph-problem
// models. Simple by construction: no loops, no parallel edges.

package problems

import (
	"errors"
	"fmt"
)

// Graph construction errors.
var (
	// ErrVertexRange indicates an edge endpoint outside [0, n).
	ErrVertexRange = errors.New("problems: vertex index out of range")

	// ErrSelfLoop indicates an edge from a vertex to itself.
	ErrSelfLoop = errors.New("problems: self-loop not allowed")

	// ErrWeightCount indicates a weight slice whose length does not match
	// the element count it weights.
	ErrWeightCount = errors.New("problems: weight count mismatch")
)

// Edge is one undirected edge, stored with U < V.
type Edge struct {
	U, V int
}

// UndirectedGraph is an immutable simple undirected graph over vertices
// 0..n-1. Construction validates and canonicalizes; afterwards the value
// is read-only and safe to share.
type UndirectedGraph struct {
	n     int
	edges []Edge
	adj   map[int][]int
}

// NewUndirectedGraph builds a graph from a vertex count and edge pairs.
// Endpoints are canonicalized to U < V and duplicates are dropped, so the
// result is simple regardless of the input's redundancy.
func NewUndirectedGraph(n int, pairs [][2]int) (*UndirectedGraph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative vertex count %d", ErrVertexRange, n)
	}
	g := &UndirectedGraph{n: n, adj: make(map[int][]int)}
	seen := make(map[Edge]bool, len(pairs))
	for _, p := range pairs {
		u, v := p[0], p[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("%w: edge (%d,%d) with %d vertices", ErrVertexRange, u, v, n)
		}
		if u == v {
			return nil, fmt.Errorf("%w: vertex %d", ErrSelfLoop, u)
		}
		if u > v {
			u, v = v, u
		}
		e := Edge{U: u, V: v}
		if seen[e] {
			continue
		}
		seen[e] = true
		g.edges = append(g.edges, e)
		g.adj[u] = append(g.adj[u], v)
		g.adj[v] = append(g.adj[v], u)
	}
	return g, nil
}

// MustGraph is NewUndirectedGraph that panics on error; intended for
// literals in tests and examples.
func MustGraph(n int, pairs [][2]int) *UndirectedGraph {
	g, err := NewUndirectedGraph(n, pairs)
	if err != nil {
		panic(err)
	}
	return g
}

// NumVertices returns the vertex count.
func (g *UndirectedGraph) NumVertices() int { return g.n }

// NumEdges returns the edge count after deduplication.
func (g *UndirectedGraph) NumEdges() int { return len(g.edges) }

// Edges returns the edges in insertion order, canonicalized U < V.
func (g *UndirectedGraph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// HasEdge reports whether u and v are adjacent.
func (g *UndirectedGraph) HasEdge(u, v int) bool {
	for _, w := range g.adj[u] {
		if w == v {
			return true
		}
	}
	return false
}

// Neighbors returns the vertices adjacent to u.
func (g *UndirectedGraph) Neighbors(u int) []int {
	return append([]int(nil), g.adj[u]...)
}

// Degree returns the number of edges incident to u.
func (g *UndirectedGraph) Degree(u int) int { return len(g.adj[u]) }
