package problems

import (
	"fmt"

	"github.com/CodingThrust/problemreductions/poly"
	"github.com/CodingThrust/problemreductions/variant"
)

// SetCovering is the minimum (weighted) set covering problem: pick sets
// whose union is the whole universe 0..numElements-1, minimizing total set
// weight.
type SetCovering struct {
	numElements int
	sets        [][]int
	weights     []int
	weight      string
}

// NewSetCovering builds an instance over an explicit universe size; every
// set element must lie inside the universe.
func NewSetCovering(numElements int, sets [][]int, opts ...SetOption) (*SetCovering, error) {
	if numElements < 0 {
		return nil, fmt.Errorf("problems: negative universe size %d", numElements)
	}
	var o setOptions
	for _, opt := range opts {
		opt(&o)
	}
	p := &SetCovering{numElements: numElements, weight: WeightOne}
	for _, s := range sets {
		for _, e := range s {
			if e < 0 || e >= numElements {
				return nil, fmt.Errorf("problems: element %d outside universe of size %d", e, numElements)
			}
		}
		p.sets = append(p.sets, append([]int(nil), s...))
	}
	if o.setWeights != nil {
		if len(o.setWeights) != len(p.sets) {
			return nil, fmt.Errorf("%w: %d weights for %d sets",
				ErrWeightCount, len(o.setWeights), len(p.sets))
		}
		p.weights = o.setWeights
		p.weight = WeightInt
	} else {
		p.weights = unitWeights(len(p.sets))
	}
	return p, nil
}

// Sets returns the sets in construction order.
func (p *SetCovering) Sets() [][]int {
	out := make([][]int, len(p.sets))
	for i, s := range p.sets {
		out[i] = append([]int(nil), s...)
	}
	return out
}

// NumElements returns the universe size.
func (p *SetCovering) NumElements() int { return p.numElements }

func (p *SetCovering) Name() string { return "SetCovering" }

func (p *SetCovering) Variant() variant.Variant {
	return variant.MustNew(variant.Weight(p.weight))
}

func (p *SetCovering) NumVariables() int    { return len(p.sets) }
func (p *SetCovering) NumFlavors() int      { return 2 }
func (p *SetCovering) Direction() Direction { return Minimize }

func (p *SetCovering) Size() poly.ProblemSize {
	return poly.ProblemSize{
		"num_sets":     len(p.sets),
		"num_elements": p.numElements,
	}
}

// Evaluate returns the selected set weight; valid iff the selected sets
// cover the universe.
func (p *SetCovering) Evaluate(config []int) (float64, bool) {
	if !boolConfigOK(config, len(p.sets)) {
		return 0, false
	}
	covered := make([]bool, p.numElements)
	count := 0
	for i, s := range p.sets {
		if config[i] != 1 {
			continue
		}
		for _, e := range s {
			if !covered[e] {
				covered[e] = true
				count++
			}
		}
	}
	if count != p.numElements {
		return 0, false
	}
	return sumSelected(config, p.weights), true
}
