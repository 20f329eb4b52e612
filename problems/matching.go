package problems

import (
	"fmt"

	"github.com/CodingThrust/problemreductions/poly"
	"github.com/CodingThrust/problemreductions/variant"
)

// Matching is the maximum (weighted) matching problem: pick a subset of
// edges with no shared endpoints, maximizing total edge weight. Decision
// variables are edges, in the graph's edge order.
type Matching struct {
	g        *UndirectedGraph
	weights  []int
	topology string
	weight   string
}

// NewMatching builds an instance over the given graph; WithEdgeWeights
// attaches per-edge weights in edge order.
func NewMatching(g *UndirectedGraph, opts ...GraphOption) (*Matching, error) {
	o := defaultGraphOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p := &Matching{g: g, topology: o.topology, weight: WeightOne}
	if o.edgeWeights != nil {
		if len(o.edgeWeights) != g.NumEdges() {
			return nil, fmt.Errorf("%w: %d weights for %d edges",
				ErrWeightCount, len(o.edgeWeights), g.NumEdges())
		}
		p.weights = o.edgeWeights
		p.weight = WeightInt
	} else {
		p.weights = unitWeights(g.NumEdges())
	}
	return p, nil
}

// Graph returns the underlying graph.
func (p *Matching) Graph() *UndirectedGraph { return p.g }

// Weights returns the per-edge weights.
func (p *Matching) Weights() []int { return append([]int(nil), p.weights...) }

func (p *Matching) Name() string             { return "Matching" }
func (p *Matching) Variant() variant.Variant { return graphVariant(p.topology, p.weight) }
func (p *Matching) NumVariables() int        { return p.g.NumEdges() }
func (p *Matching) NumFlavors() int          { return 2 }
func (p *Matching) Direction() Direction     { return Maximize }

func (p *Matching) Size() poly.ProblemSize {
	return poly.ProblemSize{
		"num_vertices": p.g.NumVertices(),
		"num_edges":    p.g.NumEdges(),
	}
}

// Evaluate returns the selected edge weight; valid iff no vertex is
// covered by two selected edges.
func (p *Matching) Evaluate(config []int) (float64, bool) {
	if !boolConfigOK(config, p.g.NumEdges()) {
		return 0, false
	}
	covered := make([]bool, p.g.NumVertices())
	for i, e := range p.g.edges {
		if config[i] != 1 {
			continue
		}
		if covered[e.U] || covered[e.V] {
			return 0, false
		}
		covered[e.U], covered[e.V] = true, true
	}
	return sumSelected(config, p.weights), true
}
