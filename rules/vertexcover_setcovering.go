// VertexCover -> SetCovering: the universe is the edge set, and each
// vertex becomes the set of edge indices it covers. A cover of the graph
// is exactly a cover of the universe; solutions map 1:1.

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
			SourceName:    "VertexCover",
			TargetName:    "SetCovering",
			SourceVariant: graphVariant(wk),
			TargetVariant: weightVariant(wk),
			Overhead: func() poly.Overhead {
				return poly.NewOverhead(
					poly.Term("num_sets", poly.Var("num_vertices")),
					poly.Term("num_elements", poly.Var("num_edges")),
				)
			},
			Apply:            applyVCToSetCovering(wk),
			SourceSizeFields: graphSizeFields,
			TargetSizeFields: setSizeFields,
			Origin:           "rules/vertexcover_setcovering",
		})
	}
}

func applyVCToSetCovering(wk string) registry.ApplyFunc {
	return func(src any) (any, registry.Extractor, error) {
		vc, ok := src.(*problems.VertexCover)
		if !ok {
			return nil, nil, fmt.Errorf("%w: want *problems.VertexCover, have %T", registry.ErrTypeMismatch, src)
		}
		g := vc.Graph()
		sets := make([][]int, g.NumVertices())
		for idx, e := range g.Edges() {
			sets[e.U] = append(sets[e.U], idx)
			sets[e.V] = append(sets[e.V], idx)
		}
		var opts []problems.SetOption
		if wk != problems.WeightOne {
			opts = append(opts, problems.WithSetWeights(vc.Weights()))
		}
		sc, err := problems.NewSetCovering(g.NumEdges(), sets, opts...)
		if err != nil {
			return nil, nil, err
		}
		return sc, registry.IdentityExtractor, nil
	}
}
