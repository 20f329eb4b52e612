// Pluggable cost functions for cheapest-path search. Each converts one
// edge's symbolic overhead and the accumulated size at the edge's source
// into a scalar edge cost.

package reduction

import "github.com/CodingThrust/problemreductions/poly"

// lexicographicEpsilon scales each successive field of
// MinimizeLexicographic, approximating lexicographic order by one scalar.
const lexicographicEpsilon = 1e-10

// CostFunc ranks one edge given its overhead and the problem size
// accumulated at the edge's source node. Implementations must return
// non-negative costs for overheads satisfying the non-negative-coefficient
// precondition, and must treat a referenced-but-absent field as 0.
type CostFunc interface {
	// EdgeCost computes the cost of taking one edge.
	EdgeCost(overhead poly.Overhead, currentSize poly.ProblemSize) float64
}

// MinimizeSteps costs every edge 1: cheapest path = fewest hops.
type MinimizeSteps struct{}

// EdgeCost implements CostFunc.
func (MinimizeSteps) EdgeCost(poly.Overhead, poly.ProblemSize) float64 { return 1 }

// Minimize costs an edge by the edge's output value of one named size
// field; 0 if the overhead does not produce the field.
type Minimize string

// EdgeCost implements CostFunc.
func (m Minimize) EdgeCost(overhead poly.Overhead, size poly.ProblemSize) float64 {
	return float64(overhead.EvaluateOutputSize(size).Get(string(m)))
}

// FieldWeight pairs one output size field with its weight in a
// MinimizeWeighted sum.
type FieldWeight struct {
	// Field is the output size-dimension name.
	Field string

	// Weight multiplies the field's output value.
	Weight float64
}

// MinimizeWeighted costs an edge by a weighted sum of output fields;
// fields absent from the overhead contribute 0.
type MinimizeWeighted []FieldWeight

// EdgeCost implements CostFunc.
func (m MinimizeWeighted) EdgeCost(overhead poly.Overhead, size poly.ProblemSize) float64 {
	out := overhead.EvaluateOutputSize(size)
	sum := 0.0
	for _, fw := range m {
		sum += fw.Weight * float64(out.Get(fw.Field))
	}
	return sum
}

// MinimizeMax costs an edge by the maximum over the named output fields,
// 0 for an empty list.
type MinimizeMax []string

// EdgeCost implements CostFunc.
func (m MinimizeMax) EdgeCost(overhead poly.Overhead, size poly.ProblemSize) float64 {
	out := overhead.EvaluateOutputSize(size)
	max := 0.0
	for _, field := range m {
		if v := float64(out.Get(field)); v > max {
			max = v
		}
	}
	return max
}

// MinimizeLexicographic costs an edge by its first named field, breaking
// ties with subsequent fields scaled by successive powers of a small
// epsilon — a single-scalar approximation of true lexicographic order.
type MinimizeLexicographic []string

// EdgeCost implements CostFunc.
func (m MinimizeLexicographic) EdgeCost(overhead poly.Overhead, size poly.ProblemSize) float64 {
	out := overhead.EvaluateOutputSize(size)
	cost := 0.0
	scale := 1.0
	for _, field := range m {
		cost += scale * float64(out.Get(field))
		scale *= lexicographicEpsilon
	}
	return cost
}

// CostFn adapts a plain function to CostFunc for caller-supplied costs.
type CostFn func(overhead poly.Overhead, currentSize poly.ProblemSize) float64

// EdgeCost implements CostFunc.
func (f CostFn) EdgeCost(overhead poly.Overhead, size poly.ProblemSize) float64 {
	return f(overhead, size)
}
