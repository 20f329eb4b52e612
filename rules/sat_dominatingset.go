// Satisfiability -> DominatingSet via variable gadgets: each variable
// owns a triangle of a positive-literal vertex, a negative-literal vertex
// and a dummy, and each clause owns one vertex wired to its literals'
// gadget vertices. A dominating set of size num_vars must pick exactly
// one triangle vertex per variable, and dominating every clause vertex
// forces the picks to satisfy the formula.
//
// Extraction reads true from a selected positive vertex, false from a
// selected negative one; a selected dummy leaves the variable at its
// false default. A set larger than num_vars cannot encode an assignment
// and extracts to all-false.

package rules

import (
	"fmt"

	"github.com/CodingThrust/problemreductions/poly"
	"github.com/CodingThrust/problemreductions/problems"
	"github.com/CodingThrust/problemreductions/registry"
	"github.com/CodingThrust/problemreductions/variant"
)

func init() {
	registry.Register(registry.Entry{
		SourceName:    "Satisfiability",
		TargetName:    "DominatingSet",
		SourceVariant: variant.Variant{},
		TargetVariant: graphVariant(problems.WeightOne),
		Overhead: func() poly.Overhead {
			// Three gadget vertices per variable plus one per clause;
			// three triangle edges per variable plus one per literal
			// occurrence.
			return poly.NewOverhead(
				poly.Term("num_vertices", poly.Var("num_vars").Scale(3).Add(poly.Var("num_clauses"))),
				poly.Term("num_edges", poly.Var("num_vars").Scale(3).Add(poly.Var("num_literals"))),
			)
		},
		Apply:            applySATToDominatingSet,
		SourceSizeFields: satSizeFields,
		TargetSizeFields: graphSizeFields,
		Origin:           "rules/sat_dominatingset",
	})
}

func applySATToDominatingSet(src any) (any, registry.Extractor, error) {
	sat, ok := src.(*problems.Satisfiability)
	if !ok {
		return nil, nil, fmt.Errorf("%w: want *problems.Satisfiability, have %T", registry.ErrTypeMismatch, src)
	}
	numVars := sat.NumVars()
	clauses := sat.Clauses()

	// Variable i owns vertices 3i (positive), 3i+1 (negative), 3i+2
	// (dummy); clause j owns vertex 3*numVars+j.
	var pairs [][2]int
	for i := 0; i < numVars; i++ {
		base := 3 * i
		pairs = append(pairs,
			[2]int{base, base + 1},
			[2]int{base, base + 2},
			[2]int{base + 1, base + 2})
	}
	for j, clause := range clauses {
		clauseVertex := 3*numVars + j
		for _, lit := range clause {
			bv := boolVarFromLiteral(lit)
			literalVertex := 3 * bv.index
			if bv.neg {
				literalVertex++
			}
			pairs = append(pairs, [2]int{literalVertex, clauseVertex})
		}
	}

	g, err := problems.NewUndirectedGraph(3*numVars+len(clauses), pairs)
	if err != nil {
		return nil, nil, err
	}
	ds, err := problems.NewDominatingSet(g)
	if err != nil {
		return nil, nil, err
	}

	extract := func(sol []int) []int {
		assignment := make([]int, numVars)
		selected := 0
		for _, v := range sol {
			selected += v
		}
		if selected > numVars {
			return assignment
		}
		for v, bit := range sol {
			if bit != 1 || v >= 3*numVars {
				continue
			}
			if v%3 == 0 {
				assignment[v/3] = 1
			}
		}
		return assignment
	}
	return ds, extract, nil
}
