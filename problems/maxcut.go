package problems

import (
	"fmt"

	"github.com/CodingThrust/problemreductions/poly"
	"github.com/CodingThrust/problemreductions/variant"
)

// MaxCut is the maximum (weighted) cut problem: bipartition the vertices
// to maximize the total weight of edges crossing the partition. Every
// configuration is valid.
type MaxCut struct {
	g        *UndirectedGraph
	weights  []int
	topology string
	weight   string
}

// NewMaxCut builds an instance over the given graph; WithEdgeWeights
// attaches per-edge weights in edge order.
func NewMaxCut(g *UndirectedGraph, opts ...GraphOption) (*MaxCut, error) {
	o := defaultGraphOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p := &MaxCut{g: g, topology: o.topology, weight: WeightOne}
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
func (p *MaxCut) Graph() *UndirectedGraph { return p.g }

// Weights returns the per-edge weights.
func (p *MaxCut) Weights() []int { return append([]int(nil), p.weights...) }

func (p *MaxCut) Name() string             { return "MaxCut" }
func (p *MaxCut) Variant() variant.Variant { return graphVariant(p.topology, p.weight) }
func (p *MaxCut) NumVariables() int        { return p.g.NumVertices() }
func (p *MaxCut) NumFlavors() int          { return 2 }
func (p *MaxCut) Direction() Direction     { return Maximize }

func (p *MaxCut) Size() poly.ProblemSize {
	return poly.ProblemSize{
		"num_vertices": p.g.NumVertices(),
		"num_edges":    p.g.NumEdges(),
	}
}

// Evaluate returns the total weight of cut edges.
func (p *MaxCut) Evaluate(config []int) (float64, bool) {
	if !boolConfigOK(config, p.g.NumVertices()) {
		return 0, false
	}
	cut := 0
	for i, e := range p.g.edges {
		if config[e.U] != config[e.V] {
			cut += p.weights[i]
		}
	}
	return float64(cut), true
}
