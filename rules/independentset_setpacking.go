// IndependentSet <-> SetPacking.
//
// Forward: each vertex becomes the set of its incident edge indices, so
// two sets intersect exactly when the vertices are adjacent. Backward:
// each set becomes a vertex of a conflict graph with an edge between
// every intersecting pair. Solutions map 1:1 in both directions.

package rules

import (
	"fmt"

	"github.com/CodingThrust/problemreductions/poly"
	"github.com/CodingThrust/problemreductions/problems"
	"github.com/CodingThrust/problemreductions/registry"
)

var setSizeFields = []string{"num_sets", "num_elements"}

func init() {
	for _, wk := range []string{problems.WeightOne, problems.WeightInt} {
		registry.Register(registry.Entry{
			SourceName:    "IndependentSet",
			TargetName:    "SetPacking",
			SourceVariant: graphVariant(wk),
			TargetVariant: weightVariant(wk),
			Overhead: func() poly.Overhead {
				return poly.NewOverhead(
					poly.Term("num_sets", poly.Var("num_vertices")),
					poly.Term("num_elements", poly.Var("num_edges")),
				)
			},
			Apply:            applyISToSetPacking(wk),
			SourceSizeFields: graphSizeFields,
			TargetSizeFields: setSizeFields,
			Origin:           "rules/independentset_setpacking",
		})
		registry.Register(registry.Entry{
			SourceName:    "SetPacking",
			TargetName:    "IndependentSet",
			SourceVariant: weightVariant(wk),
			TargetVariant: graphVariant(wk),
			Overhead: func() poly.Overhead {
				// Pairwise intersection checks bound the conflict edges by
				// num_sets choose 2.
				return poly.NewOverhead(
					poly.Term("num_vertices", poly.Var("num_sets")),
					poly.Term("num_edges", poly.VarPowP("num_sets", 2)),
				)
			},
			Apply:            applySetPackingToIS(wk),
			SourceSizeFields: setSizeFields,
			TargetSizeFields: graphSizeFields,
			Origin:           "rules/independentset_setpacking",
		})
	}
}

func applyISToSetPacking(wk string) registry.ApplyFunc {
	return func(src any) (any, registry.Extractor, error) {
		is, ok := src.(*problems.IndependentSet)
		if !ok {
			return nil, nil, fmt.Errorf("%w: want *problems.IndependentSet, have %T", registry.ErrTypeMismatch, src)
		}
		g := is.Graph()
		sets := make([][]int, g.NumVertices())
		for idx, e := range g.Edges() {
			sets[e.U] = append(sets[e.U], idx)
			sets[e.V] = append(sets[e.V], idx)
		}
		var opts []problems.SetOption
		if wk != problems.WeightOne {
			opts = append(opts, problems.WithSetWeights(is.Weights()))
		}
		sp, err := problems.NewSetPacking(sets, opts...)
		if err != nil {
			return nil, nil, err
		}
		return sp, registry.IdentityExtractor, nil
	}
}

func applySetPackingToIS(wk string) registry.ApplyFunc {
	return func(src any) (any, registry.Extractor, error) {
		sp, ok := src.(*problems.SetPacking)
		if !ok {
			return nil, nil, fmt.Errorf("%w: want *problems.SetPacking, have %T", registry.ErrTypeMismatch, src)
		}
		sets := sp.Sets()
		var pairs [][2]int
		for i := range sets {
			members := make(map[int]bool, len(sets[i]))
			for _, e := range sets[i] {
				members[e] = true
			}
			for j := i + 1; j < len(sets); j++ {
				for _, e := range sets[j] {
					if members[e] {
						pairs = append(pairs, [2]int{i, j})
						break
					}
				}
			}
		}
		g, err := problems.NewUndirectedGraph(len(sets), pairs)
		if err != nil {
			return nil, nil, err
		}
		is, err := problems.NewIndependentSet(g, vertexWeightOpts(wk, sp.Weights())...)
		if err != nil {
			return nil, nil, err
		}
		return is, registry.IdentityExtractor, nil
	}
}
