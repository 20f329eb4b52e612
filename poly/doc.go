// Package poly implements the symbolic size algebra used to predict how a
// problem instance grows across a reduction without executing it.
//
// Overview:
//
//   - ProblemSize: named, non-negative integer size dimensions of one
//     instance ("num_vertices": 12, "num_edges": 30). Looking up an absent
//     dimension yields 0 by contract, not an error.
//   - Monomial:    coefficient × Π(variable^exponent).
//   - Polynomial:  Σ monomials, with addition, scalar scaling,
//     multiplication, integer powers and evaluation against a ProblemSize.
//   - Overhead:    one polynomial per output size dimension, describing a
//     reduction's size growth symbolically; supports evaluation and purely
//     symbolic composition across multiple reduction hops.
//
// Absent-is-zero policy:
//
//	A variable referenced by a monomial but absent from the ProblemSize
//	evaluates to 0, so the whole monomial evaluates to 0. This is a
//	deliberate contract shared with ProblemSize lookups: "absent means
//	empty", never an error. Polynomial::Var("missing") evaluated against
//	{"n": 10} is 0, not 1.
//
// Rounding policy:
//
//	Sizes are integral while polynomial evaluation is real-valued.
//	Overhead.EvaluateOutputSize rounds each evaluated polynomial half away
//	from zero (math.Round) and clamps negatives to 0. Overhead polynomials
//	are required to have non-negative coefficients (see the path-search
//	precondition in package reduction), so the clamp only guards misuse.
//
// Composition:
//
//	For hops A→B→C with overheads o1 (A→B) and o2 (B→C),
//	o1.Compose(o2) substitutes o1's output polynomials into o2's input
//	variables, yielding one polynomial per final output field expressed in
//	A's size dimensions. For any concrete ProblemSize the composed overhead
//	agrees with applying EvaluateOutputSize hop by hop.
package poly
