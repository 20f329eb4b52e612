// Matching -> SetPacking: each edge becomes the two-element set of its
// endpoints; edge-disjointness at shared vertices is exactly set
// disjointness. Solutions map 1:1 over the edge order.

package rules

import (
	"fmt"

	"github.com/CodingThrust/problemreductions/poly"
	"github.com/CodingThrust/problemreductions/problems"
	"github.com/CodingThrust/problemreductions/registry"
)

func init() {
	for _, wk := range []string{problems.WeightOne, problems.WeightInt} {
		registry.Register(registry.Entry{
			SourceName:    "Matching",
			TargetName:    "SetPacking",
			SourceVariant: graphVariant(wk),
			TargetVariant: weightVariant(wk),
			Overhead: func() poly.Overhead {
				return poly.NewOverhead(
					poly.Term("num_sets", poly.Var("num_edges")),
					poly.Term("num_elements", poly.Var("num_vertices")),
				)
			},
			Apply:            applyMatchingToSetPacking(wk),
			SourceSizeFields: graphSizeFields,
			TargetSizeFields: setSizeFields,
			Origin:           "rules/matching_setpacking",
		})
	}
}

func applyMatchingToSetPacking(wk string) registry.ApplyFunc {
	return func(src any) (any, registry.Extractor, error) {
		m, ok := src.(*problems.Matching)
		if !ok {
			return nil, nil, fmt.Errorf("%w: want *problems.Matching, have %T", registry.ErrTypeMismatch, src)
		}
		edges := m.Graph().Edges()
		sets := make([][]int, len(edges))
		for i, e := range edges {
			sets[i] = []int{e.U, e.V}
		}
		var opts []problems.SetOption
		if wk != problems.WeightOne {
			opts = append(opts, problems.WithSetWeights(m.Weights()))
		}
		sp, err := problems.NewSetPacking(sets, opts...)
		if err != nil {
			return nil, nil, err
		}
		return sp, registry.IdentityExtractor, nil
	}
}
