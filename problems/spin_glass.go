package problems

import (
	"fmt"

	"github.com/CodingThrust/problemreductions/poly"
	"github.com/CodingThrust/problemreductions/variant"
)

// Interaction is one pairwise coupling J between spins I and J2.
type Interaction struct {
	I, J     int
	Coupling float64
}

// SpinGlass is the Ising energy minimization problem over spins
// s ∈ {-1,+1}: minimize Σ J_ij·s_i·s_j + Σ h_i·s_i. Configurations use
// the binary encoding s = 2x - 1 (x=0 is spin -1), matching the QUBO
// models it reduces to and from. Every configuration is valid.
type SpinGlass struct {
	n            int
	interactions []Interaction
	fields       []float64
	weight       string
}

// NewSpinGlass builds an instance from pairwise couplings and per-spin
// external fields; fields may be nil for a pure coupling model.
func NewSpinGlass(n int, interactions []Interaction, fields []float64) (*SpinGlass, error) {
	if n < 0 {
		return nil, fmt.Errorf("problems: negative spin count %d", n)
	}
	for _, in := range interactions {
		if in.I < 0 || in.I >= n || in.J < 0 || in.J >= n || in.I == in.J {
			return nil, fmt.Errorf("problems: bad interaction (%d,%d) with %d spins", in.I, in.J, n)
		}
	}
	if fields == nil {
		fields = make([]float64, n)
	}
	if len(fields) != n {
		return nil, fmt.Errorf("%w: %d fields for %d spins", ErrWeightCount, len(fields), n)
	}
	return &SpinGlass{
		n:            n,
		interactions: append([]Interaction(nil), interactions...),
		fields:       append([]float64(nil), fields...),
		weight:       WeightFloat,
	}, nil
}

// WithWeightKind overrides the reported weight kind, e.g. "Int" for an
// instance whose couplings are integral. Unknown kinds panic.
func (p *SpinGlass) WithWeightKind(kind string) *SpinGlass {
	if kind != WeightOne && kind != WeightInt && kind != WeightFloat {
		panic("problems: unknown weight kind " + kind)
	}
	p.weight = kind
	return p
}

// Interactions returns the pairwise couplings.
func (p *SpinGlass) Interactions() []Interaction {
	return append([]Interaction(nil), p.interactions...)
}

// Fields returns the per-spin external fields.
func (p *SpinGlass) Fields() []float64 { return append([]float64(nil), p.fields...) }

func (p *SpinGlass) Name() string { return "SpinGlass" }

func (p *SpinGlass) Variant() variant.Variant {
	return variant.MustNew(variant.Weight(p.weight))
}

func (p *SpinGlass) NumVariables() int    { return p.n }
func (p *SpinGlass) NumFlavors() int      { return 2 }
func (p *SpinGlass) Direction() Direction { return Minimize }

func (p *SpinGlass) Size() poly.ProblemSize {
	return poly.ProblemSize{
		"num_spins":        p.n,
		"num_interactions": len(p.interactions),
	}
}

// Evaluate returns the Ising energy of the binary configuration.
func (p *SpinGlass) Evaluate(config []int) (float64, bool) {
	if !boolConfigOK(config, p.n) {
		return 0, false
	}
	spin := func(i int) float64 { return float64(2*config[i] - 1) }
	energy := 0.0
	for _, in := range p.interactions {
		energy += in.Coupling * spin(in.I) * spin(in.J)
	}
	for i, h := range p.fields {
		energy += h * spin(i)
	}
	return energy, true
}
