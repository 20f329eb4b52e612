// Coloring -> QUBO via one-hot encoding: variable v*k+c is 1 iff vertex v
// gets color c. One penalty P = 1 + num_vertices serves both constraints:
// the one-hot expansion (1 - Σ_c x_{v,c})^2 contributes -P on each
// diagonal and +2P on same-vertex color pairs, and each monochromatic
// edge costs P/2 per shared color.
//
// Extraction decodes the first set color bit per vertex, 0 if none.

package rules

import (
	"fmt"

	"github.com/CodingThrust/problemreductions/poly"
	"github.com/CodingThrust/problemreductions/problems"
	"github.com/CodingThrust/problemreductions/registry"
	"github.com/CodingThrust/problemreductions/variant"
)

// coloringVariant is the registered 3-coloring node; the apply function
// itself handles any color count.
func coloringVariant() variant.Variant {
	return variant.MustNew(
		variant.Graph(problems.TopologySimple),
		variant.Weight(problems.WeightOne),
		variant.ConstParam("k", "3"),
	)
}

func init() {
	registry.Register(registry.Entry{
		SourceName:    "Coloring",
		TargetName:    "QUBO",
		SourceVariant: coloringVariant(),
		TargetVariant: weightVariant(problems.WeightFloat),
		Overhead: func() poly.Overhead {
			// One binary variable per (vertex, color) pair.
			return poly.NewOverhead(
				poly.Term("num_vars", poly.Var("num_vertices").Scale(3)),
			)
		},
		Apply:            applyColoringToQUBO,
		SourceSizeFields: graphSizeFields,
		TargetSizeFields: []string{"num_vars"},
		Origin:           "rules/coloring_qubo",
	})
}

func applyColoringToQUBO(src any) (any, registry.Extractor, error) {
	col, ok := src.(*problems.Coloring)
	if !ok {
		return nil, nil, fmt.Errorf("%w: want *problems.Coloring, have %T", registry.ErrTypeMismatch, src)
	}
	n := col.Graph().NumVertices()
	k := col.K()
	nq := n * k
	penalty := float64(1 + n)

	matrix := make([][]float64, nq)
	for i := range matrix {
		matrix[i] = make([]float64, nq)
	}

	// One-hot penalty per vertex. x^2 = x for binary variables, so the
	// expansion leaves -P on the diagonal and 2P on color pairs.
	for v := 0; v < n; v++ {
		for c := 0; c < k; c++ {
			idx := v*k + c
			matrix[idx][idx] -= penalty
		}
		for c1 := 0; c1 < k; c1++ {
			for c2 := c1 + 1; c2 < k; c2++ {
				matrix[v*k+c1][v*k+c2] += 2 * penalty
			}
		}
	}

	// Monochromatic-edge penalty.
	for _, e := range col.Graph().Edges() {
		for c := 0; c < k; c++ {
			i, j := e.U*k+c, e.V*k+c
			if i > j {
				i, j = j, i
			}
			matrix[i][j] += penalty / 2
		}
	}

	q, err := problems.NewQUBO(matrix)
	if err != nil {
		return nil, nil, err
	}

	extract := func(sol []int) []int {
		colors := make([]int, n)
		for v := 0; v < n; v++ {
			for c := 0; c < k; c++ {
				if v*k+c < len(sol) && sol[v*k+c] == 1 {
					colors[v] = c
					break
				}
			}
		}
		return colors
	}
	return q, extract, nil
}
