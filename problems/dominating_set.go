package problems

import (
	"fmt"

	"github.com/CodingThrust/problemreductions/poly"
	"github.com/CodingThrust/problemreductions/variant"
)

// DominatingSet is the minimum (weighted) dominating set problem: pick a
// subset of vertices so that every vertex is selected or adjacent to a
// selected one, minimizing total vertex weight.
type DominatingSet struct {
	g        *UndirectedGraph
	weights  []int
	topology string
	weight   string
}

// NewDominatingSet builds an instance over the given graph.
func NewDominatingSet(g *UndirectedGraph, opts ...GraphOption) (*DominatingSet, error) {
	o := defaultGraphOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p := &DominatingSet{g: g, topology: o.topology, weight: WeightOne}
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
func (p *DominatingSet) Graph() *UndirectedGraph { return p.g }

func (p *DominatingSet) Name() string             { return "DominatingSet" }
func (p *DominatingSet) Variant() variant.Variant { return graphVariant(p.topology, p.weight) }
func (p *DominatingSet) NumVariables() int        { return p.g.NumVertices() }
func (p *DominatingSet) NumFlavors() int          { return 2 }
func (p *DominatingSet) Direction() Direction     { return Minimize }

func (p *DominatingSet) Size() poly.ProblemSize {
	return poly.ProblemSize{
		"num_vertices": p.g.NumVertices(),
		"num_edges":    p.g.NumEdges(),
	}
}

// Evaluate returns the selected weight; valid iff every vertex is selected
// or has a selected neighbor.
func (p *DominatingSet) Evaluate(config []int) (float64, bool) {
	if !boolConfigOK(config, p.g.NumVertices()) {
		return 0, false
	}
	for v := 0; v < p.g.NumVertices(); v++ {
		if config[v] == 1 {
			continue
		}
		dominated := false
		for _, u := range p.g.adj[v] {
			if config[u] == 1 {
				dominated = true
				break
			}
		}
		if !dominated {
			return 0, false
		}
	}
	return sumSelected(config, p.weights), true
}
