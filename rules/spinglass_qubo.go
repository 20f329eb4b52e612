// SpinGlass <-> QUBO via the substitution s = 2x - 1.
//
// J_ij·s_i·s_j = 4·J_ij·x_i·x_j - 2·J_ij·x_i - 2·J_ij·x_j + J_ij
// h_i·s_i     = 2·h_i·x_i - h_i
//
// Constant offsets are dropped: the minimizing configurations are
// identical, and configurations map 1:1 (both use the binary encoding).

package rules

import (
	"fmt"

	"github.com/CodingThrust/problemreductions/poly"
	"github.com/CodingThrust/problemreductions/problems"
	"github.com/CodingThrust/problemreductions/registry"
)

func init() {
	registry.Register(registry.Entry{
		SourceName:    "SpinGlass",
		TargetName:    "QUBO",
		SourceVariant: weightVariant(problems.WeightFloat),
		TargetVariant: weightVariant(problems.WeightFloat),
		Overhead: func() poly.Overhead {
			return poly.NewOverhead(poly.Term("num_vars", poly.Var("num_spins")))
		},
		Apply:            applySpinGlassToQUBO,
		SourceSizeFields: spinSizeFields,
		TargetSizeFields: []string{"num_vars"},
		Origin:           "rules/spinglass_qubo",
	})
	registry.Register(registry.Entry{
		SourceName:    "QUBO",
		TargetName:    "SpinGlass",
		SourceVariant: weightVariant(problems.WeightFloat),
		TargetVariant: weightVariant(problems.WeightFloat),
		Overhead: func() poly.Overhead {
			return poly.NewOverhead(poly.Term("num_spins", poly.Var("num_vars")))
		},
		Apply:            applyQUBOToSpinGlass,
		SourceSizeFields: []string{"num_vars"},
		TargetSizeFields: spinSizeFields,
		Origin:           "rules/spinglass_qubo",
	})
}

func applySpinGlassToQUBO(src any) (any, registry.Extractor, error) {
	sg, ok := src.(*problems.SpinGlass)
	if !ok {
		return nil, nil, fmt.Errorf("%w: want *problems.SpinGlass, have %T", registry.ErrTypeMismatch, src)
	}
	n := sg.NumVariables()
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}
	for _, in := range sg.Interactions() {
		i, j := in.I, in.J
		if i > j {
			i, j = j, i
		}
		matrix[i][j] += 4 * in.Coupling
		matrix[i][i] -= 2 * in.Coupling
		matrix[j][j] -= 2 * in.Coupling
	}
	for i, h := range sg.Fields() {
		matrix[i][i] += 2 * h
	}
	q, err := problems.NewQUBO(matrix)
	if err != nil {
		return nil, nil, err
	}
	return q, registry.IdentityExtractor, nil
}

func applyQUBOToSpinGlass(src any) (any, registry.Extractor, error) {
	q, ok := src.(*problems.QUBO)
	if !ok {
		return nil, nil, fmt.Errorf("%w: want *problems.QUBO, have %T", registry.ErrTypeMismatch, src)
	}
	n := q.NumVariables()
	matrix := q.Matrix()
	var interactions []problems.Interaction
	fields := make([]float64, n)
	for i := 0; i < n; i++ {
		// Diagonal: Q_ii·x_i = Q_ii/2·s_i + const.
		fields[i] += matrix[i][i] / 2
		for j := i + 1; j < n; j++ {
			v := matrix[i][j]
			if v == 0 {
				continue
			}
			// Off-diagonal: Q_ij·x_i·x_j spreads over coupling and both fields.
			interactions = append(interactions, problems.Interaction{I: i, J: j, Coupling: v / 4})
			fields[i] += v / 4
			fields[j] += v / 4
		}
	}
	sg, err := problems.NewSpinGlass(n, interactions, fields)
	if err != nil {
		return nil, nil, err
	}
	return sg, registry.IdentityExtractor, nil
}
