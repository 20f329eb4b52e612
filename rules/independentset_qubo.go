// IndependentSet -> QUBO penalty formulation.
//
// Maximize Σ w_i·x_i subject to x_i·x_j = 0 on edges becomes
// minimize -Σ w_i·x_i + P·Σ_{(i,j)∈E} x_i·x_j with P = 1 + Σ w_i, large
// enough that violating any edge always costs more than any gain.

package rules

import (
	"fmt"

	"github.com/CodingThrust/problemreductions/poly"
	"github.com/CodingThrust/problemreductions/problems"
	"github.com/CodingThrust/problemreductions/registry"
)

func init() {
	registry.Register(registry.Entry{
		SourceName:    "IndependentSet",
		TargetName:    "QUBO",
		SourceVariant: graphVariant(problems.WeightInt),
		TargetVariant: weightVariant(problems.WeightFloat),
		Overhead: func() poly.Overhead {
			return poly.NewOverhead(poly.Term("num_vars", poly.Var("num_vertices")))
		},
		Apply:            applyISToQUBO,
		SourceSizeFields: graphSizeFields,
		TargetSizeFields: []string{"num_vars"},
		Origin:           "rules/independentset_qubo",
	})
}

func applyISToQUBO(src any) (any, registry.Extractor, error) {
	is, ok := src.(*problems.IndependentSet)
	if !ok {
		return nil, nil, fmt.Errorf("%w: want *problems.IndependentSet, have %T", registry.ErrTypeMismatch, src)
	}
	n := is.Graph().NumVertices()
	weights := is.Weights()
	total := 0
	for _, w := range weights {
		total += w
	}
	penalty := float64(1 + total)

	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		matrix[i][i] = -float64(weights[i])
	}
	for _, e := range is.Graph().Edges() {
		matrix[e.U][e.V] += penalty
	}
	q, err := problems.NewQUBO(matrix)
	if err != nil {
		return nil, nil, err
	}
	return q, registry.IdentityExtractor, nil
}
