// MaxCut <-> SpinGlass.
//
// Forward: couplings J_ij = w_ij, no onsite fields. A cut edge has
// opposite spins, contributing -w to the Ising energy, so minimizing
// energy maximizes the cut; configurations map 1:1.
//
// Backward: couplings become edge weights; a nonzero onsite field h_i
// needs an ancilla vertex a with edge (i, a) of weight h_i, standing in
// for the term h_i*s_i*s_a. That reads as h_i*s_i only with the ancilla
// at spin +1, and the cut is invariant under a global spin flip, so
// extraction normalizes the ancilla to +1 (flip everything if its bit
// is 0) and drops it.

package rules

import (
	"fmt"
	"math"

	"github.com/CodingThrust/problemreductions/poly"
	"github.com/CodingThrust/problemreductions/problems"
	"github.com/CodingThrust/problemreductions/registry"
)

var spinSizeFields = []string{"num_spins", "num_interactions"}

func init() {
	registry.Register(registry.Entry{
		SourceName:    "MaxCut",
		TargetName:    "SpinGlass",
		SourceVariant: graphVariant(problems.WeightInt),
		TargetVariant: weightVariant(problems.WeightInt),
		Overhead: func() poly.Overhead {
			return poly.NewOverhead(
				poly.Term("num_spins", poly.Var("num_vertices")),
				poly.Term("num_interactions", poly.Var("num_edges")),
			)
		},
		Apply:            applyMaxCutToSpinGlass,
		SourceSizeFields: graphSizeFields,
		TargetSizeFields: spinSizeFields,
		Origin:           "rules/maxcut_spinglass",
	})
	registry.Register(registry.Entry{
		SourceName:    "SpinGlass",
		TargetName:    "MaxCut",
		SourceVariant: weightVariant(problems.WeightInt),
		TargetVariant: graphVariant(problems.WeightInt),
		Overhead: func() poly.Overhead {
			// One ancilla vertex and up to num_spins field edges.
			return poly.NewOverhead(
				poly.Term("num_vertices", poly.Var("num_spins").Add(poly.Constant(1))),
				poly.Term("num_edges", poly.Var("num_interactions").Add(poly.Var("num_spins"))),
			)
		},
		Apply:            applySpinGlassToMaxCut,
		SourceSizeFields: spinSizeFields,
		TargetSizeFields: graphSizeFields,
		Origin:           "rules/maxcut_spinglass",
	})
}

func applyMaxCutToSpinGlass(src any) (any, registry.Extractor, error) {
	mc, ok := src.(*problems.MaxCut)
	if !ok {
		return nil, nil, fmt.Errorf("%w: want *problems.MaxCut, have %T", registry.ErrTypeMismatch, src)
	}
	edges := mc.Graph().Edges()
	weights := mc.Weights()
	interactions := make([]problems.Interaction, len(edges))
	for i, e := range edges {
		interactions[i] = problems.Interaction{I: e.U, J: e.V, Coupling: float64(weights[i])}
	}
	sg, err := problems.NewSpinGlass(mc.Graph().NumVertices(), interactions, nil)
	if err != nil {
		return nil, nil, err
	}
	return sg.WithWeightKind(problems.WeightInt), registry.IdentityExtractor, nil
}

func applySpinGlassToMaxCut(src any) (any, registry.Extractor, error) {
	sg, ok := src.(*problems.SpinGlass)
	if !ok {
		return nil, nil, fmt.Errorf("%w: want *problems.SpinGlass, have %T", registry.ErrTypeMismatch, src)
	}
	n := sg.NumVariables()
	var pairs [][2]int
	var weights []int
	for _, in := range sg.Interactions() {
		pairs = append(pairs, [2]int{in.I, in.J})
		weights = append(weights, int(math.Round(in.Coupling)))
	}
	ancilla := -1
	for i, h := range sg.Fields() {
		if h == 0 {
			continue
		}
		if ancilla < 0 {
			ancilla = n
		}
		pairs = append(pairs, [2]int{i, ancilla})
		weights = append(weights, int(math.Round(h)))
	}
	numVertices := n
	if ancilla >= 0 {
		numVertices = n + 1
	}
	g, err := problems.NewUndirectedGraph(numVertices, pairs)
	if err != nil {
		return nil, nil, err
	}
	mc, err := problems.NewMaxCut(g, problems.WithEdgeWeights(weights))
	if err != nil {
		return nil, nil, err
	}

	anc := ancilla
	extract := func(sol []int) []int {
		out := append([]int(nil), sol...)
		if anc >= 0 && anc < len(out) {
			if out[anc] == 0 {
				for i := range out {
					out[i] = 1 - out[i]
				}
			}
			out = out[:anc]
		}
		return out
	}
	return mc, extract, nil
}
