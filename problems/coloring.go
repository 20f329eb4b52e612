package problems

import (
	"fmt"
	"strconv"

	"github.com/CodingThrust/problemreductions/poly"
	"github.com/CodingThrust/problemreductions/variant"
)

// Coloring is the k-coloring problem: assign each vertex one of k colors.
// A configuration is valid iff no edge is monochromatic; the value counts
// properly colored edges, so even invalid configurations rank.
type Coloring struct {
	g        *UndirectedGraph
	k        int
	topology string
}

// NewColoring builds a k-coloring instance; k must be positive.
func NewColoring(g *UndirectedGraph, k int, opts ...GraphOption) (*Coloring, error) {
	if k <= 0 {
		return nil, fmt.Errorf("problems: color count must be positive, got %d", k)
	}
	o := defaultGraphOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Coloring{g: g, k: k, topology: o.topology}, nil
}

// Graph returns the underlying graph.
func (p *Coloring) Graph() *UndirectedGraph { return p.g }

// K returns the color count.
func (p *Coloring) K() int { return p.k }

func (p *Coloring) Name() string { return "Coloring" }

func (p *Coloring) Variant() variant.Variant {
	return variant.MustNew(
		variant.Graph(p.topology),
		variant.Weight(WeightOne),
		variant.ConstParam("k", strconv.Itoa(p.k)),
	)
}

func (p *Coloring) NumVariables() int    { return p.g.NumVertices() }
func (p *Coloring) NumFlavors() int      { return p.k }
func (p *Coloring) Direction() Direction { return Maximize }

func (p *Coloring) Size() poly.ProblemSize {
	return poly.ProblemSize{
		"num_vertices": p.g.NumVertices(),
		"num_edges":    p.g.NumEdges(),
	}
}

// Evaluate returns the number of properly colored edges; valid iff all
// edges are.
func (p *Coloring) Evaluate(config []int) (float64, bool) {
	if !configOK(config, p.g.NumVertices(), p.k) {
		return 0, false
	}
	proper := 0
	for _, e := range p.g.edges {
		if config[e.U] != config[e.V] {
			proper++
		}
	}
	return float64(proper), proper == p.g.NumEdges()
}
