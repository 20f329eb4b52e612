package problems

import (
	"fmt"

	"github.com/CodingThrust/problemreductions/poly"
	"github.com/CodingThrust/problemreductions/variant"
)

// SetPacking is the maximum (weighted) set packing problem: pick pairwise
// disjoint sets maximizing total set weight. Elements are non-negative
// integers; the universe size is one past the largest element.
type SetPacking struct {
	sets        [][]int
	weights     []int
	numElements int
	weight      string
}

// SetOption customizes a set-problem constructor.
type SetOption func(*setOptions)

type setOptions struct{ setWeights []int }

// WithSetWeights attaches integer per-set weights; the instance's weight
// kind becomes "Int".
func WithSetWeights(weights []int) SetOption {
	return func(o *setOptions) { o.setWeights = append([]int(nil), weights...) }
}

// NewSetPacking builds an instance from the given sets.
func NewSetPacking(sets [][]int, opts ...SetOption) (*SetPacking, error) {
	var o setOptions
	for _, opt := range opts {
		opt(&o)
	}
	p := &SetPacking{weight: WeightOne}
	for _, s := range sets {
		for _, e := range s {
			if e < 0 {
				return nil, fmt.Errorf("problems: negative set element %d", e)
			}
			if e >= p.numElements {
				p.numElements = e + 1
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
func (p *SetPacking) Sets() [][]int {
	out := make([][]int, len(p.sets))
	for i, s := range p.sets {
		out[i] = append([]int(nil), s...)
	}
	return out
}

// Weights returns the per-set weights.
func (p *SetPacking) Weights() []int { return append([]int(nil), p.weights...) }

func (p *SetPacking) Name() string { return "SetPacking" }

func (p *SetPacking) Variant() variant.Variant {
	return variant.MustNew(variant.Weight(p.weight))
}

func (p *SetPacking) NumVariables() int    { return len(p.sets) }
func (p *SetPacking) NumFlavors() int      { return 2 }
func (p *SetPacking) Direction() Direction { return Maximize }

func (p *SetPacking) Size() poly.ProblemSize {
	return poly.ProblemSize{
		"num_sets":     len(p.sets),
		"num_elements": p.numElements,
	}
}

// Evaluate returns the selected set weight; valid iff the selected sets
// are pairwise disjoint.
func (p *SetPacking) Evaluate(config []int) (float64, bool) {
	if !boolConfigOK(config, len(p.sets)) {
		return 0, false
	}
	used := make([]bool, p.numElements)
	for i, s := range p.sets {
		if config[i] != 1 {
			continue
		}
		for _, e := range s {
			if used[e] {
				return 0, false
			}
			used[e] = true
		}
	}
	return sumSelected(config, p.weights), true
}
