package problems

import (
	"fmt"

	"github.com/CodingThrust/problemreductions/poly"
	"github.com/CodingThrust/problemreductions/variant"
)

// VertexCover is the minimum (weighted) vertex cover problem: pick a
// subset of vertices touching every edge, minimizing total vertex weight.
// Complement of IndependentSet: S is independent iff V\S is a cover.
type VertexCover struct {
	g        *UndirectedGraph
	weights  []int
	topology string
	weight   string
}

// NewVertexCover builds an instance over the given graph.
func NewVertexCover(g *UndirectedGraph, opts ...GraphOption) (*VertexCover, error) {
	o := defaultGraphOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p := &VertexCover{g: g, topology: o.topology, weight: WeightOne}
	if o.vertexWeights != nil {
		if len(o.vertexWeights) != g.NumVertices() {
			return nil, fmt.Errorf("%w: %d weights for %d vertices",
				ErrWeightCount, len(o.vertexWeights), g.NumVertices())
		}
		p.weights = o.vertexWeights
		p.weight = WeightInt
	} else {
		p.weights = unitWeights(g.NumVertices())
	}
	return p, nil
}

// Graph returns the underlying graph.
func (p *VertexCover) Graph() *UndirectedGraph { return p.g }

// Weights returns the per-vertex weights.
func (p *VertexCover) Weights() []int { return append([]int(nil), p.weights...) }

func (p *VertexCover) Name() string             { return "VertexCover" }
func (p *VertexCover) Variant() variant.Variant { return graphVariant(p.topology, p.weight) }
func (p *VertexCover) NumVariables() int        { return p.g.NumVertices() }
func (p *VertexCover) NumFlavors() int          { return 2 }
func (p *VertexCover) Direction() Direction     { return Minimize }

func (p *VertexCover) Size() poly.ProblemSize {
	return poly.ProblemSize{
		"num_vertices": p.g.NumVertices(),
		"num_edges":    p.g.NumEdges(),
	}
}

// Evaluate returns the selected weight; valid iff every edge has at least
// one endpoint selected.
func (p *VertexCover) Evaluate(config []int) (float64, bool) {
	if !boolConfigOK(config, p.g.NumVertices()) {
		return 0, false
	}
	for _, e := range p.g.edges {
		if config[e.U] == 0 && config[e.V] == 0 {
			return 0, false
		}
	}
	return sumSelected(config, p.weights), true
}
