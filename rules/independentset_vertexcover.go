// IndependentSet <-> VertexCover. The problems are complements: S is an
// independent set iff V\S is a vertex cover, so both directions keep the
// graph and flip the configuration bits on extraction.

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
			SourceName:       "IndependentSet",
			TargetName:       "VertexCover",
			SourceVariant:    graphVariant(wk),
			TargetVariant:    graphVariant(wk),
			Overhead:         graphIdentityOverhead,
			Apply:            applyISToVC(wk),
			SourceSizeFields: graphSizeFields,
			TargetSizeFields: graphSizeFields,
			Origin:           "rules/independentset_vertexcover",
		})
		registry.Register(registry.Entry{
			SourceName:       "VertexCover",
			TargetName:       "IndependentSet",
			SourceVariant:    graphVariant(wk),
			TargetVariant:    graphVariant(wk),
			Overhead:         graphIdentityOverhead,
			Apply:            applyVCToIS(wk),
			SourceSizeFields: graphSizeFields,
			TargetSizeFields: graphSizeFields,
			Origin:           "rules/independentset_vertexcover",
		})
	}
}

func graphIdentityOverhead() poly.Overhead {
	return poly.Identity("num_vertices", "num_edges")
}

// vertexWeightOpts carries the source's weights into the target only for
// weighted entries, so an unweighted hop produces an unweighted instance.
func vertexWeightOpts(wk string, weights []int) []problems.GraphOption {
	if wk == problems.WeightOne {
		return nil
	}
	return []problems.GraphOption{problems.WithVertexWeights(weights)}
}

// complementBits maps a solution to its bitwise complement.
func complementBits(sol []int) []int {
	out := make([]int, len(sol))
	for i, x := range sol {
		out[i] = 1 - x
	}
	return out
}

func applyISToVC(wk string) registry.ApplyFunc {
	return func(src any) (any, registry.Extractor, error) {
		is, ok := src.(*problems.IndependentSet)
		if !ok {
			return nil, nil, fmt.Errorf("%w: want *problems.IndependentSet, have %T", registry.ErrTypeMismatch, src)
		}
		vc, err := problems.NewVertexCover(is.Graph(), vertexWeightOpts(wk, is.Weights())...)
		if err != nil {
			return nil, nil, err
		}
		return vc, complementBits, nil
	}
}

func applyVCToIS(wk string) registry.ApplyFunc {
	return func(src any) (any, registry.Extractor, error) {
		vc, ok := src.(*problems.VertexCover)
		if !ok {
			return nil, nil, fmt.Errorf("%w: want *problems.VertexCover, have %T", registry.ErrTypeMismatch, src)
		}
		is, err := problems.NewIndependentSet(vc.Graph(), vertexWeightOpts(wk, vc.Weights())...)
		if err != nil {
			return nil, nil, err
		}
		return is, complementBits, nil
	}
}
