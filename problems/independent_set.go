package problems

import (
	"fmt"

	"github.com/CodingThrust/problemreductions/poly"
	"github.com/CodingThrust/problemreductions/variant"
)

// IndependentSet is the maximum (weighted) independent set problem: pick a
// subset of vertices with no two adjacent, maximizing total vertex weight.
type IndependentSet struct {
	g        *UndirectedGraph
	weights  []int
	topology string
	weight   string
}

// NewIndependentSet builds an instance over the given graph. Without
// WithVertexWeights every vertex weighs 1 and the weight kind is "One".
func NewIndependentSet(g *UndirectedGraph, opts ...GraphOption) (*IndependentSet, error) {
	o := defaultGraphOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p := &IndependentSet{g: g, topology: o.topology, weight: WeightOne}
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
func (p *IndependentSet) Graph() *UndirectedGraph { return p.g }

// Weights returns the per-vertex weights.
func (p *IndependentSet) Weights() []int { return append([]int(nil), p.weights...) }

func (p *IndependentSet) Name() string             { return "IndependentSet" }
func (p *IndependentSet) Variant() variant.Variant { return graphVariant(p.topology, p.weight) }
func (p *IndependentSet) NumVariables() int        { return p.g.NumVertices() }
func (p *IndependentSet) NumFlavors() int          { return 2 }
func (p *IndependentSet) Direction() Direction     { return Maximize }

func (p *IndependentSet) Size() poly.ProblemSize {
	return poly.ProblemSize{
		"num_vertices": p.g.NumVertices(),
		"num_edges":    p.g.NumEdges(),
	}
}

// Evaluate returns the selected weight; valid iff no edge has both
// endpoints selected.
func (p *IndependentSet) Evaluate(config []int) (float64, bool) {
	if !boolConfigOK(config, p.g.NumVertices()) {
		return 0, false
	}
	for _, e := range p.g.edges {
		if config[e.U] == 1 && config[e.V] == 1 {
			return 0, false
		}
	}
	return sumSelected(config, p.weights), true
}
